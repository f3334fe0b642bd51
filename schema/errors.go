package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is matched by every *UnknownKeyError via errors.Is.
var ErrUnknownKey = errors.New("unknown configuration key")

// UnknownKeyError reports a raw key that a provider's schema does not
// recognise.
type UnknownKeyError struct {
	Key      string
	Provider string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s option", ErrUnknownKey, e.Key, e.Provider)
}

// Is lets errors.Is(err, ErrUnknownKey) match.
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}
