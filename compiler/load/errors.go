package load

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ParseError.
var ErrInvalidConfig = errors.New("typeduuid: invalid kinds document")

// ParseError reports a document that does not have the expected shape. It is
// fatal: nothing is generated for a document that fails to parse.
type ParseError struct {
	Pos     Pos
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrInvalidConfig.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func newParseError(pos Pos, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
