package pathutil

import (
	"errors"
)

// ErrInvalidID is returned for an empty, oversized or malformed id.
var ErrInvalidID = errors.New("invalid id")

const maxIDLength = 64

// ValidateID accepts the ids the content API hands out: letters, digits,
// '-' and '_'. Anything else is rejected before it reaches a URL.
func ValidateID(id string) error {
	if id == "" || len(id) > maxIDLength {
		return ErrInvalidID
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return ErrInvalidID
		}
	}
	return nil
}
