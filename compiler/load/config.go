package load

import (
	"fmt"
	"strings"
)

// DefaultPackage is the import path of the runtime package referenced by
// generated code when settings.typeduuid_package is not set.
const DefaultPackage = "github.com/syssam/typeduuid"

// Config is a parsed kinds document.
type Config struct {
	// File is the name the document was parsed from.
	File string
	// Settings holds the global settings, nil if the document has none.
	Settings *Settings
	// Kinds lists the kinds in document order. Duplicate names are kept.
	Kinds []*KindEntry
}

// Package returns the runtime import path, falling back to DefaultPackage.
func (c *Config) Package() string {
	if c.Settings != nil && c.Settings.Package != "" {
		return c.Settings.Package
	}
	return DefaultPackage
}

// Attrs returns the global marker attributes.
func (c *Config) Attrs() []Attr {
	if c.Settings == nil {
		return nil
	}
	return c.Settings.Attrs
}

// Schema returns the schema settings, nil if schema generation is off.
func (c *Config) Schema() *SchemaSettings {
	if c.Settings == nil {
		return nil
	}
	return c.Settings.Schema
}

// Settings are the global settings of a kinds document.
type Settings struct {
	// Package is the import path of the typeduuid runtime package.
	Package string `yaml:"typeduuid_package"`
	// Attrs are applied to every marker type unless a kind overrides them.
	Attrs []Attr `yaml:"attrs"`
	// Schema enables JSON schema generation.
	Schema *SchemaSettings `yaml:"schema"`
}

// SchemaSettings configure the generated JSONSchema methods.
type SchemaSettings struct {
	// Attrs are applied to every generated JSONSchema method.
	Attrs []Attr `yaml:"attrs"`
	// BuildConstraint, if set, moves the schema methods into a separate file
	// guarded by a //go:build line with this expression.
	BuildConstraint string `yaml:"build_constraint"`
	// RustType is the replacement metadata published in the x-rust-type
	// schema extension. Nil means the kinds describe themselves as schemas
	// that no value satisfies.
	RustType *RustType `yaml:"rust_type"`
}

// RustType identifies where the kinds live for downstream schema-to-code
// generators, which then reference the types instead of regenerating them.
type RustType struct {
	Crate   string
	Version string
	Path    string
}

// KindEntry is one entry of the kinds mapping.
type KindEntry struct {
	// Name is the mapping key.
	Name Value
	// Tag, TypeName and Alias are nil when the key is absent.
	Tag      *Value
	TypeName *Value
	Alias    *Value
	// Attrs replaces the global attributes when HasAttrs is set, even if it
	// is empty.
	Attrs    []Attr
	HasAttrs bool
	// Problems lists shape errors of this entry. A kind with problems is
	// not generated, but other kinds are unaffected.
	Problems []*Problem
}

func (k *KindEntry) problem(pos Pos, format string, args ...any) {
	k.Problems = append(k.Problems, &Problem{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// ValueKind classifies a raw document value.
type ValueKind int

// Value kinds.
const (
	ValueInvalid ValueKind = iota
	ValueString
	ValueScalar // a scalar that is not a string, e.g. 42 or true
	ValueNull
	ValueMap
	ValueList
)

var valueKindNames = [...]string{
	ValueInvalid: "invalid value",
	ValueString:  "string",
	ValueScalar:  "scalar",
	ValueNull:    "null",
	ValueMap:     "mapping",
	ValueList:    "list",
}

// String returns a readable name of the kind.
func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return valueKindNames[ValueInvalid]
	}
	return valueKindNames[k]
}

// Value is a raw, positioned document value.
type Value struct {
	Kind ValueKind
	// Text is the scalar text. Empty for mappings and lists.
	Text string
	Pos  Pos
}

// Attr is a comment line placed above a generated declaration, such as
// "//nolint:revive" or "// Deprecated: use AccountKind.".
type Attr struct {
	Text string
	Pos  Pos
}

// CheckAttr returns a description of what is wrong with an attribute text,
// or the empty string if it is valid.
func CheckAttr(text string) string {
	switch {
	case !strings.HasPrefix(text, "//"):
		return "attribute must be a line comment starting with //"
	case strings.ContainsAny(text, "\r\n"):
		return "attribute must be a single line"
	}
	return ""
}

// Pos is a position in a kinds document.
type Pos struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// String formats the position as file:line:column, leaving out unknown parts.
func (p Pos) String() string {
	var b strings.Builder
	b.WriteString(p.File)
	if p.Line > 0 {
		if b.Len() > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%d", p.Line)
		if p.Column > 0 {
			fmt.Fprintf(&b, ":%d", p.Column)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// Problem is a per-kind shape error found while parsing.
type Problem struct {
	Pos     Pos
	Message string
}
