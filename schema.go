package typeduuid

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaKind is implemented by kinds that describe themselves as a JSON
// schema. typeduuidgen generates a JSONSchema method for every kind when the
// configuration has a settings.schema section.
type SchemaKind interface {
	Kind
	JSONSchema() *openapi3.Schema
}

// JSONSchema returns the schema of UUIDs of kind K. If K implements
// SchemaKind its own schema is returned; otherwise the schema of an untyped
// UUID (a string in "uuid" format).
func JSONSchema[K Kind]() *openapi3.Schema {
	var k K
	if sk, ok := any(k).(SchemaKind); ok {
		return sk.JSONSchema()
	}
	return openapi3.NewStringSchema().WithFormat("uuid")
}

// JSONSchema returns the schema of the UUID's kind. See the package-level
// JSONSchema function.
func (UUID[K]) JSONSchema() *openapi3.Schema {
	return JSONSchema[K]()
}
