// Package errors provides structured error handling for the Stage scene tree.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRange indicates an invalid begin/end range for a bulk operation.
	KindRange
	// KindBounds indicates an index outside the child sequence.
	KindBounds
	// KindNotChild indicates a node that is not a member of the sequence.
	KindNotChild
	// KindParse indicates a scene document parsing failure.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindBounds:
		return "bounds"
	case KindNotChild:
		return "not-child"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// TreeError represents a structured error raised by a scene-tree operation.
// It is always raised before any mutation takes place, so a failed operation
// never leaves a child sequence partially modified.
type TreeError struct {
	// Op is the operation that failed (e.g., "display.AddChildAt").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TreeError) Unwrap() error {
	return e.Err
}

// Range returns a KindRange error for the given operation.
func Range(op, format string, args ...any) error {
	return &TreeError{Op: op, Kind: KindRange, Err: fmt.Errorf(format, args...)}
}

// Bounds returns a KindBounds error for the given operation.
func Bounds(op, format string, args ...any) error {
	return &TreeError{Op: op, Kind: KindBounds, Err: fmt.Errorf(format, args...)}
}

// NotChild returns a KindNotChild error for the given operation.
func NotChild(op, format string, args ...any) error {
	return &TreeError{Op: op, Kind: KindNotChild, Err: fmt.Errorf(format, args...)}
}

// Parse returns a KindParse error for the given operation.
func Parse(op, format string, args ...any) error {
	return &TreeError{Op: op, Kind: KindParse, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether err or any error it wraps is a TreeError of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var te *TreeError
	if stderrors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}
