package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrFileNotFound   = fmt.Errorf("%w: input file", ErrNotFound)
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)

	// Analysis errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrIndeterminate    = errors.New("test result is indeterminate")
	ErrNonNumeric       = errors.New("column contains non-numeric values")
)

// Error constructors with context
func NewFileNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

func NewInsufficientDataError(group string, n int) error {
	return fmt.Errorf("%w: group %q has %d observations, need at least 2", ErrInsufficientData, group, n)
}

func NewColumnError(column string, err error) error {
	return fmt.Errorf("column %s: %w", column, err)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
