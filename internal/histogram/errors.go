package histogram

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidDimension = errors.New("number of dimensions must be at least 1")
	ErrInvalidRange     = errors.New("bin range must satisfy min < max")
	ErrInvalidBinCount  = errors.New("bin count must be at least 1")
	ErrNilBuffer        = errors.New("required buffer is nil")
	ErrSizeMismatch     = errors.New("buffer length does not match layout")
	ErrUnsupportedType  = errors.New("unsupported element type")
)

// DimensionError reports a failure tied to one dimension of the layout.
type DimensionError struct {
	Dim    int    // Dimension index
	Err    error  // One of the sentinel errors
	Detail string // Offending values
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension %d: %v: %s", e.Dim, e.Err, e.Detail)
}

// Unwrap returns the sentinel error so errors.Is works.
func (e *DimensionError) Unwrap() error {
	return e.Err
}

// Status is the status-code view of a kernel call result.
type Status int

// Status codes, one per failure kind.
const (
	StatusOK Status = iota
	StatusInvalidDimension
	StatusInvalidRange
	StatusInvalidBinCount
	StatusNilBuffer
	StatusSizeMismatch
	StatusUnsupportedType
	StatusUnknown
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidDimension:
		return "invalid dimension"
	case StatusInvalidRange:
		return "invalid range"
	case StatusInvalidBinCount:
		return "invalid bin count"
	case StatusNilBuffer:
		return "nil buffer"
	case StatusSizeMismatch:
		return "size mismatch"
	case StatusUnsupportedType:
		return "unsupported type"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by this package to its status code.
// When err aggregates several failures the first matching kind in the
// order below wins.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidDimension):
		return StatusInvalidDimension
	case errors.Is(err, ErrNilBuffer):
		return StatusNilBuffer
	case errors.Is(err, ErrInvalidBinCount):
		return StatusInvalidBinCount
	case errors.Is(err, ErrInvalidRange):
		return StatusInvalidRange
	case errors.Is(err, ErrSizeMismatch):
		return StatusSizeMismatch
	case errors.Is(err, ErrUnsupportedType):
		return StatusUnsupportedType
	default:
		return StatusUnknown
	}
}
