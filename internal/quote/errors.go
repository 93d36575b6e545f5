package quote

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("invalid quote")
	// ErrFormat matches any *FormatError via errors.Is.
	ErrFormat = errors.New("malformed quotes payload")
)

// ValidationError reports user input that cannot become a quote.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FormatError reports an imported or fetched payload with the wrong shape.
// The whole batch it came from is rejected.
type FormatError struct {
	Index  int // element that failed, or -1 for the document itself
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Index >= 0 {
		msg = fmt.Sprintf("entry %d: %s", e.Index, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
