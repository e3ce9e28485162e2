package gen

import (
	"fmt"
	"go/token"
	"unicode/utf8"

	"github.com/syssam/typeduuid/compiler/load"
	"github.com/syssam/typeduuid/internal/errstore"
)

type sink = errstore.Sink[*Diagnostic]

// validateIdent checks that v is an ASCII identifier: a letter or underscore
// followed by letters, digits and underscores. what names the value in
// messages, e.g. "kind name".
func validateIdent(what string, v load.Value, s *sink) {
	if v.Kind != load.ValueString {
		s.PushCritical(errorf(v.Pos, "%s must be an identifier, found %s", what, v.Kind))
		return
	}
	if v.Text == "" {
		s.PushCritical(errorf(v.Pos, "%s must not be empty", what))
		return
	}
	first, size := utf8.DecodeRuneInString(v.Text)
	if !isIdentStart(first) {
		s.PushCritical(errorf(v.Pos, "%s must start with an ASCII letter or underscore (found %q)", what, first))
	}
	for _, r := range v.Text[size:] {
		if !isIdentStart(r) && !isDigit(r) {
			s.PushCritical(errorf(v.Pos, "%s must consist of ASCII alphanumeric characters or underscores (found %q)", what, r))
			break
		}
	}
}

// validateGoName checks an identifier that is declared in generated code.
func validateGoName(what string, v load.Value, s *sink) {
	child := s.NewChild()
	validateIdent(what, v, child)
	if child.HasCriticalErrors() {
		return
	}
	switch {
	case v.Text == "_":
		s.PushCritical(errorf(v.Pos, "%s must not be the blank identifier", what))
	case token.IsKeyword(v.Text):
		s.PushCritical(errorf(v.Pos, "%s must not be a Go keyword (found %q)", what, v.Text))
	}
}

// validateTag checks a tag against the rules enforced by typeduuid.NewTag.
// A tag derived from the kind name gets a hint pointing at the tag setting.
func validateTag(tag string, pos load.Pos, derived bool, s *sink) {
	var d *Diagnostic
	if tag == "" {
		d = errorf(pos, "tag must not be empty")
	} else {
		first, size := utf8.DecodeRuneInString(tag)
		if !isIdentStart(first) {
			d = errorf(pos, "tag must start with an ASCII letter or underscore (found %q)", first)
		}
		for _, r := range tag[size:] {
			if d != nil {
				break
			}
			if !isIdentStart(r) && !isDigit(r) && r != '-' {
				d = errorf(pos, "tag must consist of ASCII alphanumeric characters, underscores or hyphens (found %q)", r)
			}
		}
	}
	if d == nil {
		return
	}
	if derived {
		d.Hint = fmt.Sprintf("the tag %q was derived from the kind name; set an explicit tag with `tag: \"...\"`", tag)
	}
	s.PushCritical(d)
}

func isIdentStart(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
