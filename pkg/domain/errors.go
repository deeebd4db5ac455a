package domain

import (
	"errors"
	"fmt"
)

// ErrExitRequested is returned when the user enters one of the exit words.
// It carries no payload. Every prompt loop returns it immediately after the
// farewell line; intermediate frames must pass it through, and the top-level
// caller checks it with errors.Is to end the session cleanly.
var ErrExitRequested = errors.New("exit requested")

// ConfigError indicates a programming mistake by the caller, such as an
// empty option set or a degenerate numeric range. It is raised before any
// input is read and never enters a retry loop.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
