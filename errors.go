package angle

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned, wrapped in a *ParseError, for malformed input to Parse.
	ErrParse = errors.New("malformed angle")

	// ErrInvalidArgument is returned for parameters outside their domain,
	// like a negative number of decimals or a negative epsilon.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by Div for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// ParseError describes why a string could not be parsed into an Angle.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse angle %q: %s", e.Input, e.Err)
	}

	return fmt.Sprintf("parse angle %q: %s", e.Input, ErrParse)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
