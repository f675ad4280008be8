package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey matches any *MissingKeyError.
	ErrMissingKey = errors.New("required setting missing")
	// ErrInvalidValue matches any *InvalidValueError.
	ErrInvalidValue = errors.New("invalid setting value")
)

// MissingKeyError reports the first required key absent from a settings
// file. Reconciliation stops at this key; later keys are not checked.
type MissingKeyError struct {
	Group string
	Key   string
	File  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("setting %s is required in group %s of config file %s", e.Key, e.Group, e.File)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// InvalidValueError reports a present key whose value has the wrong type.
type InvalidValueError struct {
	Group string
	Key   string
	File  string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("setting %s in group %s of config file %s: %v", e.Key, e.Group, e.File, e.Err)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
