package typeduuid

// Tag is the runtime name of a Kind, shown in debug output and errors.
//
// A valid tag is non-empty, starts with an ASCII letter or an underscore, and
// otherwise consists of ASCII letters, digits, underscores and hyphens.
type Tag struct {
	s string
}

// NewTag validates s and returns it as a Tag.
func NewTag(s string) (Tag, error) {
	if msg := checkTag(s); msg != "" {
		return Tag{}, &TagError{Input: s, Message: msg}
	}
	return Tag{s: s}, nil
}

// MustTag is like NewTag but panics if s is not a valid tag. Generated code
// assigns its tags with MustTag to package-level variables, so an invalid tag
// fails as soon as the package is initialized.
func MustTag(s string) Tag {
	t, err := NewTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the tag text.
func (t Tag) String() string {
	return t.s
}

func checkTag(s string) string {
	if s == "" {
		return "tag must not be empty"
	}
	if c := s[0]; !isASCIILetter(c) && c != '_' {
		return "first character of tag must be an ASCII letter or underscore"
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '_' && c != '-' {
			return "tag must only contain ASCII letters, digits, underscores, or hyphens"
		}
	}
	return ""
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
