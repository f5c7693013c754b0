package models

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a widget configuration value outside its
// permitted range. It is raised synchronously at configuration-resolution
// time, before any rendering attempt, and propagates to the caller.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

// IsInvalidParameter reports whether err is an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

// ErrAcquisitionFailed marks a failed review acquisition. It is recovered
// locally into the Error lifecycle state and surfaced as the error
// placeholder, never propagated as a panic.
var ErrAcquisitionFailed = errors.New("review acquisition failed")
