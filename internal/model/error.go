package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrPartNotFound   = errors.New("part not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrUnknownPart    = errors.New("unknown part")
	ErrPersistence    = errors.New("persistence error")
)

// ValidationError names the first field that failed a check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required.", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
