package typeduuid

import (
	"errors"
	"fmt"
)

// Standard sentinel errors.
var (
	// ErrInvalidTag is matched by every TagError.
	ErrInvalidTag = errors.New("typeduuid: invalid tag")

	// ErrInvalidUUID is matched by every ParseError.
	ErrInvalidUUID = errors.New("typeduuid: invalid uuid")
)

// TagError is returned when a string is not a valid Tag.
type TagError struct {
	// Input is the rejected string.
	Input string
	// Message describes the violated rule.
	Message string
}

// Error implements the error interface.
func (e *TagError) Error() string {
	return fmt.Sprintf("typeduuid: error creating tag from %q: %s", e.Input, e.Message)
}

// Is reports whether the target matches ErrInvalidTag.
func (e *TagError) Is(target error) bool {
	return target == ErrInvalidTag
}

// ParseError is returned when a typed UUID cannot be decoded.
type ParseError struct {
	// Tag is the kind of the UUID that failed to parse.
	Tag Tag
	// Err is the error reported by the uuid package.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("typeduuid: error parsing UUID (%s): %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("typeduuid: error parsing UUID (%s)", e.Tag)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches ErrInvalidUUID.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidUUID
}

func newParseError[K Kind](err error) *ParseError {
	return &ParseError{Tag: KindTag[K](), Err: err}
}

// IsTagError reports whether the error is a TagError.
func IsTagError(err error) bool {
	var e *TagError
	return errors.As(err, &e)
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
