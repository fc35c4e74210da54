package tbox

import (
	"errors"
	"fmt"
)

type (
	// ParseError reports a malformed box, span, period, or set literal.
	// When the literal was well-formed but named an invalid interval, Err
	// carries the underlying cause for errors.Is matching
	ParseError struct {
		Err   error
		Input string
		Msg   string
	}
)

var (
	// ErrEmptyInterval indicates construction would yield an interval
	// containing no points
	ErrEmptyInterval = errors.New("interval is empty")

	// ErrDimensionAbsent indicates an accessor was called on a dimension
	// the box does not carry
	ErrDimensionAbsent = errors.New("dimension not present")

	// ErrIncomparable indicates a predicate was evaluated across boxes
	// sharing no dimension
	ErrIncomparable = errors.New("operands share no dimension")

	// ErrNonContiguous indicates a union would split into two disjoint
	// intervals on a shared dimension
	ErrNonContiguous = errors.New("union is not contiguous")

	// ErrInvalidArgument indicates an out-of-range argument, such as a
	// non-positive tile size or duration
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecode indicates a malformed binary encoding
	ErrDecode = errors.New("malformed binary encoding")

	// ErrBoxNotFound indicates the requested box is not in the Store
	ErrBoxNotFound = errors.New("box not found")
)

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(input, format string, args ...any) error {
	return &ParseError{Input: input, Msg: fmt.Sprintf(format, args...)}
}

func parseWrap(input string, err error) error {
	return &ParseError{Input: input, Err: err, Msg: err.Error()}
}
