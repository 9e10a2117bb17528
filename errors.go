package sortarr

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("sortarr: invalid configuration")

	ErrOutOfRange = errors.New("sortarr: index out of range")
)

// ConfigurationError reports a rejected growth policy or array option.
type ConfigurationError struct {
	Field string
	Value any
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s %v", ErrConfiguration, e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// OutOfRangeError reports an access outside the live region [0, Len).
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: index %d, len %d", ErrOutOfRange, e.Index, e.Len)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
