package schematic

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid means a row holds a character outside the schematic
	// alphabet (whitespace, control or non-ASCII).
	ErrMalformedGrid  = errors.New("malformed grid")
	// ErrNumberParse means a digit run does not fit a part number.
	ErrNumberParse    = errors.New("number parse failure")
	// ErrAnswerOverflow means a sum does not fit the reported answer.
	ErrAnswerOverflow = errors.New("answer overflows int64")
)

// ParseError points at the place in the input that stopped Parse. Line and
// Col are 1-based.
type ParseError struct {
	Kind error
	Line int
	Col  int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d, col %d: %v %q", e.Line, e.Col, e.Kind, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
