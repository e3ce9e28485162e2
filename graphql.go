package typeduuid

import (
	"fmt"
	"io"
	"strconv"
)

// MarshalGQL writes the UUID as a GraphQL string scalar, so typed UUIDs can be
// bound to a custom scalar in gqlgen.
func (id UUID[K]) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, strconv.Quote(id.uuid.String()))
}

// UnmarshalGQL decodes a GraphQL input value.
func (id *UUID[K]) UnmarshalGQL(v any) error {
	switch v := v.(type) {
	case string:
		parsed, err := Parse[K](v)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		return id.UnmarshalText(v)
	default:
		return &ParseError{Tag: KindTag[K](), Err: fmt.Errorf("unsupported GraphQL value of type %T", v)}
	}
}
