package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors, rejected before pipeline entry
	ErrConfiguration = errors.New("invalid configuration")
	ErrTooFewGroups  = fmt.Errorf("%w: at least 2 groups required", ErrConfiguration)

	// Sample errors raised inside the pipeline and propagated unmodified
	ErrDegenerateSample   = errors.New("degenerate sample: zero variance")
	ErrInsufficientSample = errors.New("insufficient sample size")

	// Lookup errors
	ErrVariableNotFound = errors.New("outcome variable not found")
)

// Error constructors with context

func NewConfigurationError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrConfiguration, field, reason)
}

func NewDegenerateSampleError(group GroupLabel) error {
	return fmt.Errorf("%w in group %s", ErrDegenerateSample, group)
}

func NewInsufficientSampleError(group GroupLabel, n, required int) error {
	return fmt.Errorf("%w in group %s: have %d observations, need %d", ErrInsufficientSample, group, n, required)
}

// Error checking helpers

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsSampleError reports whether err is one of the sample-quality failures
// that abort an analysis run without producing a partial result.
func IsSampleError(err error) bool {
	return errors.Is(err, ErrDegenerateSample) || errors.Is(err, ErrInsufficientSample)
}
