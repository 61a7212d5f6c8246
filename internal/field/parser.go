package field

import (
	"errors"
	"strings"
)

// ErrEmptyString is returned when a required string holds only whitespace.
var ErrEmptyString = errors.New("string should not be empty")

// NotEmptyStr is a string known to contain at least one non-space character.
type NotEmptyStr string

// ParseNotEmptyStr validates s. The original value is kept untrimmed.
func ParseNotEmptyStr(s string) (NotEmptyStr, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyString
	}
	return NotEmptyStr(s), nil
}

func (s NotEmptyStr) String() string {
	return string(s)
}
