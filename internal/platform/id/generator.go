package id

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque ids for request correlation.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sanitize accepts a caller-supplied id only when it is a well-formed UUID.
func Sanitize(raw string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
