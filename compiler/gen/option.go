package gen

import (
	"errors"
	"go/token"
	"strings"
)

// DefaultHeader is the first line of every generated file.
const DefaultHeader = "Code generated by typeduuidgen. DO NOT EDIT."

// Config configures code generation.
type Config struct {
	// Package is the name of the generated Go package.
	Package string
	// Target is the path of the generated file. Schema methods guarded by a
	// build constraint go to a sibling file with a "_schema" suffix.
	Target string
	// Header is the header comment of generated files.
	Header string
}

// SchemaTarget returns the path of the build-constrained schema file.
func (c *Config) SchemaTarget() string {
	return strings.TrimSuffix(c.Target, ".go") + "_schema.go"
}

func (c *Config) validate() error {
	if c.Package == "" {
		return NewConfigError("Package", nil, "missing package name in config")
	}
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target file in config")
	}
	return nil
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the name of the generated package.
func WithPackage(name string) Option {
	return func(c *Config) error {
		switch {
		case name == "":
			return NewConfigError("Package", nil, "package cannot be empty")
		case !token.IsIdentifier(name), name == "_":
			return NewConfigError("Package", name, "package must be a Go identifier")
		}
		c.Package = name
		return nil
	}
}

// WithTarget sets the path of the generated file.
func WithTarget(path string) Option {
	return func(c *Config) error {
		switch {
		case path == "":
			return NewConfigError("Target", nil, "target cannot be empty")
		case !strings.HasSuffix(path, ".go"):
			return NewConfigError("Target", path, "target must be a .go file")
		case strings.HasSuffix(path, "_test.go"):
			return NewConfigError("Target", path, "target must not be a test file")
		}
		c.Target = path
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Header: DefaultHeader}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
