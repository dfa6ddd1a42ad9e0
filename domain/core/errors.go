package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput is the root of the input-validation taxonomy.
	// Every validation failure wraps it, so callers can test with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	ErrNonPositiveSampleSize = fmt.Errorf("%w: n must be positive", ErrInvalidInput)
	ErrSuccessOutOfRange     = fmt.Errorf("%w: success count out of range", ErrInvalidInput)
	ErrInsufficientData      = fmt.Errorf("%w: insufficient data for analysis", ErrInvalidInput)
	ErrInvalidConfig         = fmt.Errorf("%w: invalid test configuration", ErrInvalidInput)
)

// Error constructors with context

func NewSampleSizeError(group string, n int) error {
	return fmt.Errorf("%w: %s n=%d", ErrNonPositiveSampleSize, group, n)
}

func NewSuccessRangeError(group string, success, n int) error {
	return fmt.Errorf("%w: %s success=%d with n=%d", ErrSuccessOutOfRange, group, success, n)
}

func NewObservationCountError(controlN, treatmentN int) error {
	return fmt.Errorf("%w: need >=2 observations per group, got control n=%d, treatment n=%d",
		ErrInsufficientData, controlN, treatmentN)
}

func NewConfigError(field string, value float64) error {
	return fmt.Errorf("%w: %s must be in (0, 1), got %g", ErrInvalidConfig, field, value)
}

// Error checking helpers

func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
