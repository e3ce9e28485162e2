package gen

import (
	"go/token"

	"github.com/syssam/typeduuid/compiler/load"
)

// Kind is a kind that passed validation, with every default resolved.
type Kind struct {
	// Name is the key of the kind in the document.
	Name string
	Pos  load.Pos
	// Tag is the runtime tag. TagDerived is set when it was computed from
	// Name rather than given explicitly.
	Tag        string
	TagDerived bool
	// TypeName is the marker type. Alias is the UUID type alias.
	TypeName string
	Alias    string
	// Attrs are the comment lines placed above the marker type.
	Attrs []load.Attr
	// Schema is nil unless schema generation is on.
	Schema *load.SchemaSettings
}

// resolveKind validates one entry and resolves its defaults. It returns nil
// if a critical diagnostic was pushed to s.
func resolveKind(doc *load.Config, e *load.KindEntry, s *sink) *Kind {
	validateIdent("kind name", e.Name, s.NewChild())
	for _, p := range e.Problems {
		s.PushCritical(errorf(p.Pos, "%s", p.Message))
	}
	// Defaults are derived from the name, so stop here.
	if s.HasCriticalErrors() {
		return nil
	}
	k := &Kind{
		Name:     e.Name.Text,
		Pos:      e.Name.Pos,
		Tag:      snake(e.Name.Text),
		TypeName: e.Name.Text + "Kind",
		Alias:    e.Name.Text + "Uuid",
		Attrs:    doc.Attrs(),
		Schema:   doc.Schema(),
	}
	tagPos := e.Name.Pos
	if e.Tag != nil {
		k.Tag, tagPos = e.Tag.Text, e.Tag.Pos
	} else {
		k.TagDerived = true
	}
	validateTag(k.Tag, tagPos, k.TagDerived, s.NewChild())

	typePos, aliasPos := e.Name.Pos, e.Name.Pos
	if e.TypeName != nil {
		validateGoName("type name", *e.TypeName, s.NewChild())
		k.TypeName, typePos = e.TypeName.Text, e.TypeName.Pos
	}
	if e.Alias != nil {
		validateGoName("alias", *e.Alias, s.NewChild())
		k.Alias, aliasPos = e.Alias.Text, e.Alias.Pos
	}
	if e.HasAttrs {
		k.Attrs = e.Attrs
	}
	if s.HasCriticalErrors() {
		return nil
	}
	if !token.IsExported(k.TypeName) {
		s.PushWarning(warnf(typePos, "type name %q is not exported", k.TypeName))
	}
	if !token.IsExported(k.Alias) {
		s.PushWarning(warnf(aliasPos, "alias %q is not exported", k.Alias))
	}
	return k
}
