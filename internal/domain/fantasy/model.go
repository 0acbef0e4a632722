package fantasy

import (
	"bytes"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// LooseString is an identifier that the provider may send as either a JSON
// string or a JSON number. Decoding never fails: null, objects, arrays and
// booleans decode to the empty string.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}

	switch trimmed[0] {
	case '"':
		var value string
		if err := sonic.Unmarshal(trimmed, &value); err != nil {
			*s = ""
			return nil
		}
		*s = LooseString(strings.TrimSpace(value))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if _, err := strconv.ParseFloat(string(trimmed), 64); err != nil {
			*s = ""
			return nil
		}
		*s = LooseString(trimmed)
	default:
		*s = ""
	}

	return nil
}

func (s LooseString) String() string {
	return string(s)
}

// LooseStrings converts a decoded id list into plain strings, keeping order
// and duplicates.
func LooseStrings(items []LooseString) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return out
}

// LooseStringList is an id list that decodes to nil unless the provider sends
// a JSON array. Elements follow LooseString rules.
type LooseStringList []LooseString

func (l *LooseStringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*l = nil
		return nil
	}

	var items []LooseString
	if err := sonic.Unmarshal(trimmed, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}
