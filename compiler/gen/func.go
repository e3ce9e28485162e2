package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// snake converts the given kind name into a snake_case tag.
//
//	Username     => username
//	FullName     => full_name
//	HTTPCode     => http_code
//	User2Account => user2_account
//
// Words end where a lowercase letter or digit is followed by an uppercase
// letter, or before the last uppercase letter of an uppercase run followed
// by a lowercase letter. Digits belong to the word they follow.
// Underscores only separate words, so leading and repeated ones vanish.
func snake(s string) string {
	var words []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words = appendWords(words, part)
	}
	return strings.ToLower(strings.Join(words, "_"))
}

type wordMode int

const (
	boundaryMode wordMode = iota
	lowerMode
	upperMode
)

// appendWords splits an alphanumeric run at its case boundaries.
func appendWords(words []string, s string) []string {
	rs := []rune(s)
	init, mode := 0, boundaryMode
	for i := 0; i < len(rs)-1; i++ {
		c, next := rs[i], rs[i+1]
		nextMode := mode
		switch {
		case unicode.IsLower(c):
			nextMode = lowerMode
		case unicode.IsUpper(c):
			nextMode = upperMode
		}
		switch {
		case nextMode == lowerMode && unicode.IsUpper(next):
			words = append(words, string(rs[init:i+1]))
			init, mode = i+1, boundaryMode
		case mode == upperMode && unicode.IsUpper(c) && unicode.IsLower(next):
			words = append(words, string(rs[init:i]))
			init, mode = i, boundaryMode
		default:
			mode = nextMode
		}
	}
	return append(words, string(rs[init:]))
}

// plural turns a tag into the plural noun used in doc comments.
//
//	user_account => user accounts
//	api-key      => api keys
func plural(tag string) string {
	words := strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(tag))
	if words == "" {
		return tag
	}
	return inflect.Pluralize(words)
}
