package load

import (
	"bytes"
	"errors"
	"fmt"
	"go/build/constraint"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// document is the top level of a kinds file. Kinds stays a raw node so its
// order and positions survive decoding.
type document struct {
	Settings *Settings `yaml:"settings"`
	Kinds    yaml.Node `yaml:"kinds"`
}

// ParseFile reads and parses the kinds document at path.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kinds document: %w", err)
	}
	return Parse(path, data)
}

// Parse parses a kinds document. name is used in positions only.
//
// A document of the wrong shape yields a single *ParseError. Problems that
// concern one kind only are recorded on its KindEntry instead, so that the
// remaining kinds can still be generated.
func Parse(name string, data []byte) (*Config, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(Pos{File: name}, "missing field `kinds`")
		}
		return nil, wrapError(name, err)
	}
	if err := checkSettings(name, doc.Settings); err != nil {
		return nil, err
	}
	if doc.Kinds.Kind == 0 {
		return nil, newParseError(Pos{File: name}, "missing field `kinds`")
	}
	kinds := resolve(&doc.Kinds)
	if kinds.Kind != yaml.MappingNode {
		v := valueOf(name, kinds)
		return nil, newParseError(v.Pos, "`kinds` must be a mapping of kind names to settings, found %s", v.Kind)
	}
	cfg := &Config{File: name, Settings: doc.Settings}
	for i := 0; i+1 < len(kinds.Content); i += 2 {
		cfg.Kinds = append(cfg.Kinds, parseKind(name, kinds.Content[i], kinds.Content[i+1]))
	}
	return cfg, nil
}

func checkSettings(file string, s *Settings) error {
	if s == nil {
		return nil
	}
	if s.Package != "" {
		if err := module.CheckImportPath(s.Package); err != nil {
			return &ParseError{
				Pos:     Pos{File: file},
				Message: fmt.Sprintf("invalid typeduuid_package %q: %v", s.Package, err),
				Cause:   err,
			}
		}
	}
	if err := checkAttrs(file, s.Attrs); err != nil {
		return err
	}
	if s.Schema == nil {
		return nil
	}
	if err := checkAttrs(file, s.Schema.Attrs); err != nil {
		return err
	}
	if expr := s.Schema.BuildConstraint; expr != "" {
		if _, err := constraint.Parse("//go:build " + expr); err != nil {
			return &ParseError{
				Pos:     Pos{File: file},
				Message: fmt.Sprintf("invalid build_constraint %q: %v", expr, err),
				Cause:   err,
			}
		}
	}
	return nil
}

func checkAttrs(file string, attrs []Attr) error {
	for i := range attrs {
		attrs[i].Pos.File = file
		if msg := CheckAttr(attrs[i].Text); msg != "" {
			return newParseError(attrs[i].Pos, "%s (found %q)", msg, attrs[i].Text)
		}
	}
	return nil
}

// UnmarshalYAML records the attribute text and its position.
func (a *Attr) UnmarshalYAML(n *yaml.Node) error {
	v := valueOf("", n)
	if v.Kind != ValueString {
		return newParseError(v.Pos, "attribute must be a string, found %s", v.Kind)
	}
	a.Text, a.Pos = v.Text, v.Pos
	return nil
}

// UnmarshalYAML requires each of crate, version and path exactly once, and
// nothing else.
func (r *RustType) UnmarshalYAML(n *yaml.Node) error {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		v := valueOf("", n)
		return newParseError(v.Pos, "`rust_type` must be a mapping with `crate`, `version` and `path`, found %s", v.Kind)
	}
	seen := make(map[string]bool, 3)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], valueOf("", n.Content[i+1])
		var dst *string
		switch key.Value {
		case "crate":
			dst = &r.Crate
		case "version":
			dst = &r.Version
		case "path":
			dst = &r.Path
		default:
			return newParseError(posOf("", key), "unknown field `%s` in `rust_type`, expected one of `crate`, `version`, `path`", key.Value)
		}
		if seen[key.Value] {
			return newParseError(posOf("", key), "duplicate field `%s` in `rust_type`", key.Value)
		}
		if value.Kind != ValueString && value.Kind != ValueScalar {
			return newParseError(value.Pos, "`rust_type.%s` must be a string, found %s", key.Value, value.Kind)
		}
		*dst = value.Text
		seen[key.Value] = true
	}
	for _, field := range []string{"crate", "version", "path"} {
		if !seen[field] {
			return newParseError(posOf("", n), "missing field `%s` in `rust_type`", field)
		}
	}
	return nil
}

func parseKind(file string, key, value *yaml.Node) *KindEntry {
	k := &KindEntry{Name: valueOf(file, key)}
	v := valueOf(file, value)
	switch v.Kind {
	case ValueNull:
		return k
	case ValueMap:
	default:
		k.problem(v.Pos, "settings of kind %q must be a mapping, found %s", k.Name.Text, v.Kind)
		return k
	}
	value = resolve(value)
	for i := 0; i+1 < len(value.Content); i += 2 {
		field, fv := value.Content[i], value.Content[i+1]
		switch field.Value {
		case "tag":
			k.Tag = k.scalarField(file, fv, "`tag` must be a string")
		case "type_name":
			k.TypeName = k.scalarField(file, fv, "`type_name` must be an identifier")
		case "alias":
			k.Alias = k.scalarField(file, fv, "`alias` must be an identifier")
		case "attrs":
			k.HasAttrs = true
			k.Attrs = k.attrsField(file, fv)
		default:
			k.problem(posOf(file, field), "unknown field `%s`, expected one of `tag`, `type_name`, `alias`, `attrs`", field.Value)
		}
	}
	return k
}

func (k *KindEntry) scalarField(file string, n *yaml.Node, msg string) *Value {
	v := valueOf(file, n)
	if v.Kind != ValueString {
		k.problem(v.Pos, "%s, found %s", msg, v.Kind)
		return nil
	}
	return &v
}

func (k *KindEntry) attrsField(file string, n *yaml.Node) []Attr {
	v := valueOf(file, n)
	switch v.Kind {
	case ValueNull:
		return nil
	case ValueList:
	default:
		k.problem(v.Pos, "`attrs` must be a list of comment lines, found %s", v.Kind)
		return nil
	}
	items := resolve(n).Content
	attrs := make([]Attr, 0, len(items))
	for _, item := range items {
		iv := valueOf(file, item)
		if iv.Kind != ValueString {
			k.problem(iv.Pos, "attribute must be a string, found %s", iv.Kind)
			continue
		}
		if msg := CheckAttr(iv.Text); msg != "" {
			k.problem(iv.Pos, "%s (found %q)", msg, iv.Text)
			continue
		}
		attrs = append(attrs, Attr{Text: iv.Text, Pos: iv.Pos})
	}
	return attrs
}

// wrapError converts a yaml.v3 error into a ParseError.
func wrapError(file string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Pos.File = file
		return pe
	}
	perr := &ParseError{Pos: Pos{File: file}, Cause: err}
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		perr.Message = strings.Join(te.Errors, "; ")
	} else {
		perr.Message = strings.TrimPrefix(err.Error(), "yaml: ")
	}
	// yaml.v3 messages start with "line N: ".
	var line int
	if _, scanErr := fmt.Sscanf(perr.Message, "line %d:", &line); scanErr == nil {
		perr.Pos.Line = line
	}
	return perr
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func posOf(file string, n *yaml.Node) Pos {
	return Pos{File: file, Line: n.Line, Column: n.Column}
}

func valueOf(file string, n *yaml.Node) Value {
	n = resolve(n)
	v := Value{Pos: posOf(file, n)}
	switch n.Kind {
	case yaml.ScalarNode:
		v.Text = n.Value
		switch n.ShortTag() {
		case "!!str":
			v.Kind = ValueString
		case "!!null":
			v.Kind = ValueNull
		default:
			v.Kind = ValueScalar
		}
	case yaml.MappingNode:
		v.Kind = ValueMap
	case yaml.SequenceNode:
		v.Kind = ValueList
	}
	return v
}
