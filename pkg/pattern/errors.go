package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPattern is matched by every UnknownPatternError.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrPatternTooLarge is matched by every PatternTooLargeError.
	ErrPatternTooLarge = errors.New("pattern too large")
)

// UnknownPatternError reports a library lookup miss.
type UnknownPatternError struct {
	Name string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown pattern %q", e.Name)
}

func (e *UnknownPatternError) Unwrap() error { return ErrUnknownPattern }

// PatternTooLargeError reports a pattern that does not fit the target grid in
// at least one dimension.
type PatternTooLargeError struct {
	PatternW, PatternH int
	GridW, GridH       int
}

func (e *PatternTooLargeError) Error() string {
	return fmt.Sprintf("pattern %dx%d does not fit grid %dx%d", e.PatternW, e.PatternH, e.GridW, e.GridH)
}

func (e *PatternTooLargeError) Unwrap() error { return ErrPatternTooLarge }
