package catalog

import (
	"errors"
	"fmt"
)

// Errors for catalog loading.
var (
	ErrFileNotFound     = errors.New("catalog file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("catalog file is empty")
	ErrNoPatterns       = errors.New("catalog defines no patterns")
)

// Errors for catalog contents.
var (
	ErrMissingName      = errors.New("pattern name is required")
	ErrDuplicateName    = errors.New("duplicate pattern name")
	ErrMissingPattern   = errors.New("pattern body is required")
	ErrUnknownDirective = errors.New("unknown directive")
	ErrInvalidDirective = errors.New("invalid directive")
	ErrUnknownReference = errors.New("reference to unknown pattern")
	ErrCyclicReference  = errors.New("cyclic pattern reference")
	ErrPatternNotFound  = errors.New("pattern not found")
)

// PatternError locates a problem inside a catalog pattern definition.
type PatternError struct {
	Pattern string
	Line    int
	Column  int
	Err     error
}

func (e *PatternError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pattern %q (line %d, column %d): %v", e.Pattern, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
