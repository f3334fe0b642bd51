package storeopts

import (
	"errors"

	"github.com/sagarc03/storeopts/schema"
)

var (
	// ErrUnknownKey is matched by every validation failure caused by an
	// unrecognised key. Use errors.As with *UnknownKeyError for the details.
	ErrUnknownKey = schema.ErrUnknownKey
	// ErrCapabilityDisabled is returned when asking for options of a
	// backend that was not enabled.
	ErrCapabilityDisabled = errors.New("capability not enabled")
)

// UnknownKeyError carries the offending key and the provider it was
// validated against.
type UnknownKeyError = schema.UnknownKeyError
