package fantasy

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SafeInt converts a loosely-typed provider value to int, returning def when
// the value is nil, non-numeric or not representable.
func SafeInt(value any, def int) int {
	v, ok := ToInt(value)
	if !ok {
		return def
	}
	return v
}

// SafeFloat converts a loosely-typed provider value to float64, returning def
// when the value is nil, non-numeric, NaN or infinite.
func SafeFloat(value any, def float64) float64 {
	v, ok := ToFloat(value)
	if !ok {
		return def
	}
	return v
}

// ToInt truncates floats toward zero and parses integer strings. Strings with
// a fractional part are rejected.
func ToInt(value any) (int, bool) {
	switch typed := value.(type) {
	case nil:
		return 0, false
	case int:
		return typed, true
	case int32:
		return int(typed), true
	case int64:
		return int(typed), true
	case float32:
		return floatToInt(float64(typed))
	case float64:
		return floatToInt(typed)
	case json.Number:
		if v, err := typed.Int64(); err == nil {
			return int(v), true
		}
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return v, true
	case LooseString:
		return ToInt(string(typed))
	default:
		return 0, false
	}
}

func ToFloat(value any) (float64, bool) {
	var out float64
	switch typed := value.(type) {
	case nil:
		return 0, false
	case int:
		out = float64(typed)
	case int32:
		out = float64(typed)
	case int64:
		out = float64(typed)
	case float32:
		out = float64(typed)
	case float64:
		out = typed
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		out = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		out = f
	case LooseString:
		return ToFloat(string(typed))
	default:
		return 0, false
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

func floatToInt(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	// float64(MaxInt64) rounds up to 2^63, which does not fit.
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, false
	}
	return int(math.Trunc(v)), true
}
