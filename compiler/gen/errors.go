package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/typeduuid/compiler/load"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("typeduuidgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("typeduuidgen: code generation failed")
	// ErrInvalidKind indicates that a kinds document contains invalid kinds.
	ErrInvalidKind = errors.New("typeduuidgen: invalid kind")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("typeduuidgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("typeduuidgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("typeduuidgen: generation error")
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(file, message string, cause error) *GenerationError {
	return &GenerationError{
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// Severity tells whether a diagnostic blocks generation of its kind.
type Severity int

// Severities.
const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a positioned problem found in a kinds document.
type Diagnostic struct {
	Pos      load.Pos `json:"pos"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Hint suggests a fix, if one is known.
	Hint string `json:"hint,omitempty"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	msg := fmt.Sprintf("%s: %s", d.Pos, d.Message)
	if d.Severity == SeverityWarning {
		msg = fmt.Sprintf("%s: warning: %s", d.Pos, d.Message)
	}
	if d.Hint != "" {
		msg += "\n\thint: " + d.Hint
	}
	return msg
}

// Is reports whether the target matches ErrInvalidKind. Warnings match nothing.
func (d *Diagnostic) Is(target error) bool {
	return d.Severity == SeverityError && target == ErrInvalidKind
}

// errorf returns an error-severity diagnostic.
func errorf(pos load.Pos, format string, args ...any) *Diagnostic {
	return &Diagnostic{Pos: pos, Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// warnf returns a warning-severity diagnostic.
func warnf(pos load.Pos, format string, args ...any) *Diagnostic {
	return &Diagnostic{Pos: pos, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsDiagnostic reports whether the error is, or wraps, a Diagnostic.
func IsDiagnostic(err error) bool {
	var d *Diagnostic
	return errors.As(err, &d)
}
