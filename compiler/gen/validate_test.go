package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typeduuid/compiler/load"
	"github.com/syssam/typeduuid/internal/errstore"
)

var testPos = load.Pos{File: "kinds.yaml", Line: 2, Column: 3}

func str(s string) load.Value {
	return load.Value{Kind: load.ValueString, Text: s, Pos: testPos}
}

func messages(diags []*Diagnostic) []string {
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

func TestValidateIdent(t *testing.T) {
	tests := []struct {
		name  string
		value load.Value
		want  []string
	}{
		{"valid", str("User"), nil},
		{"underscore", str("_user_2"), nil},
		{"empty", str(""), []string{"kind name must not be empty"}},
		{"leading digit", str("123Invalid"), []string{
			"kind name must start with an ASCII letter or underscore (found '1')",
		}},
		{"non-ascii", str("NonÅscii"), []string{
			"kind name must consist of ASCII alphanumeric characters or underscores (found 'Å')",
		}},
		{"both", str("-a-b"), []string{
			"kind name must start with an ASCII letter or underscore (found '-')",
			"kind name must consist of ASCII alphanumeric characters or underscores (found '-')",
		}},
		{"hyphen", str("user-account"), []string{
			"kind name must consist of ASCII alphanumeric characters or underscores (found '-')",
		}},
		{"scalar", load.Value{Kind: load.ValueScalar, Text: "42", Pos: testPos}, []string{
			"kind name must be an identifier, found scalar",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := errstore.New[*Diagnostic]()
			s := store.Sink()
			validateIdent("kind name", tt.value, s)

			assert.Equal(t, len(tt.want) > 0, s.HasCriticalErrors())
			diags := store.Errors()
			if len(tt.want) == 0 {
				assert.Empty(t, diags)
				return
			}
			assert.Equal(t, tt.want, messages(diags))
			for _, d := range diags {
				assert.Equal(t, testPos, d.Pos)
				assert.Equal(t, SeverityError, d.Severity)
			}
		})
	}
}

func TestValidateGoName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"valid", "UserKind", nil},
		{"keyword", "type", []string{`alias must not be a Go keyword (found "type")`}},
		{"blank", "_", []string{"alias must not be the blank identifier"}},
		{"invalid", "9Lives", []string{"alias must start with an ASCII letter or underscore (found '9')"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := errstore.New[*Diagnostic]()
			s := store.Sink()
			validateGoName("alias", str(tt.text), s)

			assert.Equal(t, len(tt.want) > 0, s.HasCriticalErrors())
			diags := store.Errors()
			if len(tt.want) == 0 {
				assert.Empty(t, diags)
				return
			}
			assert.Equal(t, tt.want, messages(diags))
		})
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		derived bool
		want    string
		hint    string
	}{
		{name: "valid", tag: "user_account"},
		{name: "hyphen", tag: "user-account"},
		{name: "leading underscore", tag: "_user"},
		{name: "empty", tag: "", want: "tag must not be empty"},
		{
			name: "explicit non-ascii",
			tag:  "Hellö",
			want: "tag must consist of ASCII alphanumeric characters, underscores or hyphens (found 'ö')",
		},
		{
			name: "explicit leading hyphen",
			tag:  "-user",
			want: "tag must start with an ASCII letter or underscore (found '-')",
		},
		{
			name:    "derived",
			tag:     "user.account",
			derived: true,
			want:    "tag must consist of ASCII alphanumeric characters, underscores or hyphens (found '.')",
			hint:    "the tag \"user.account\" was derived from the kind name; set an explicit tag with `tag: \"...\"`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := errstore.New[*Diagnostic]()
			s := store.Sink()
			validateTag(tt.tag, testPos, tt.derived, s)

			diags := store.Errors()
			if tt.want == "" {
				assert.Empty(t, diags)
				assert.False(t, s.HasCriticalErrors())
				return
			}
			require.Len(t, diags, 1)
			assert.True(t, s.HasCriticalErrors())
			assert.Equal(t, tt.want, diags[0].Message)
			assert.Equal(t, tt.hint, diags[0].Hint)
			assert.Equal(t, testPos, diags[0].Pos)
		})
	}
}

func TestResolveKind(t *testing.T) {
	parse := func(t *testing.T, src string) *load.Config {
		t.Helper()
		doc, err := load.Parse("kinds.yaml", []byte(src))
		require.NoError(t, err)
		return doc
	}

	t.Run("defaults", func(t *testing.T) {
		doc := parse(t, "settings:\n  attrs: [\"//nolint:revive\"]\nkinds:\n  UserAccount: {}\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		require.NotNil(t, k)
		assert.Empty(t, store.Errors())
		assert.Equal(t, "user_account", k.Tag)
		assert.True(t, k.TagDerived)
		assert.Equal(t, "UserAccountKind", k.TypeName)
		assert.Equal(t, "UserAccountUuid", k.Alias)
		require.Len(t, k.Attrs, 1)
		assert.Equal(t, "//nolint:revive", k.Attrs[0].Text)
		assert.Nil(t, k.Schema)
	})

	t.Run("explicit", func(t *testing.T) {
		doc := parse(t, "settings:\n  attrs: [\"//nolint:revive\"]\n  schema: {}\nkinds:\n  Project:\n    tag: proj\n    type_name: PK\n    alias: PID\n    attrs: []\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		require.NotNil(t, k)
		assert.Equal(t, "proj", k.Tag)
		assert.False(t, k.TagDerived)
		assert.Equal(t, "PK", k.TypeName)
		assert.Equal(t, "PID", k.Alias)
		assert.Empty(t, k.Attrs)
		assert.NotNil(t, k.Schema)
	})

	t.Run("invalid name stops the kind", func(t *testing.T) {
		doc := parse(t, "kinds:\n  1User:\n    tag: \"bad tag\"\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		assert.Nil(t, k)
		diags := store.Errors()
		require.Len(t, diags, 1, "the tag is not looked at")
		assert.Equal(t, load.Pos{File: "kinds.yaml", Line: 2, Column: 3}, diags[0].Pos)
	})

	t.Run("every field is checked", func(t *testing.T) {
		doc := parse(t, "kinds:\n  User:\n    tag: \"bad tag\"\n    type_name: func\n    alias: _\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		assert.Nil(t, k)
		assert.Equal(t, []string{
			"tag must consist of ASCII alphanumeric characters, underscores or hyphens (found ' ')",
			`type name must not be a Go keyword (found "func")`,
			"alias must not be the blank identifier",
		}, messages(store.Errors()))
	})

	t.Run("digit word boundary", func(t *testing.T) {
		doc := parse(t, "kinds:\n  OAuth2Token: {}\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		require.NotNil(t, k)
		assert.Equal(t, "o_auth2_token", k.Tag)
	})

	t.Run("empty derived tag", func(t *testing.T) {
		doc := parse(t, "kinds:\n  _:\n    type_name: BlankKind\n    alias: BlankUuid\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		assert.Nil(t, k)
		diags := store.Errors()
		require.Len(t, diags, 1)
		assert.Equal(t, "tag must not be empty", diags[0].Message)
		assert.Equal(t, "the tag \"\" was derived from the kind name; set an explicit tag with `tag: \"...\"`", diags[0].Hint)
	})

	t.Run("unexported names warn", func(t *testing.T) {
		doc := parse(t, "kinds:\n  User:\n    type_name: userKind\n")
		store := errstore.New[*Diagnostic]()
		k := resolveKind(doc, doc.Kinds[0], store.Sink())

		require.NotNil(t, k)
		diags := store.Errors()
		require.Len(t, diags, 1)
		assert.Equal(t, SeverityWarning, diags[0].Severity)
		assert.Equal(t, `type name "userKind" is not exported`, diags[0].Message)
		assert.Equal(t, load.Pos{File: "kinds.yaml", Line: 3, Column: 16}, diags[0].Pos)
	})
}
