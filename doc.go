// Package typeduuid provides UUIDs that carry the kind of entity they
// identify in their type.
//
// Many systems use UUIDs for users, organizations, projects and so on. A plain
// uuid.UUID does not say which of these it refers to, which makes it easy to
// pass an organization ID where a user ID was expected. UUID[K] fixes that at
// compile time: UUID[UserKind] and UUID[OrganizationKind] are different types.
//
// # Defining kinds
//
// A kind is a marker type implementing Kind:
//
//	type UserKind struct{}
//
//	var tagUserKind = typeduuid.MustTag("user")
//
//	func (UserKind) Tag() typeduuid.Tag { return tagUserKind }
//
//	type UserUuid = typeduuid.UUID[UserKind]
//
// Writing these by hand gets repetitive. The typeduuidgen command generates
// them from a YAML file:
//
//	//go:generate go run github.com/syssam/typeduuid/cmd/typeduuidgen kinds.yaml
//
// with kinds.yaml:
//
//	kinds:
//	  User: {}
//	  Organization: {}
//
// # Wire format
//
// UUID[K] uses the same representations as uuid.UUID. String, text, JSON,
// binary and database/sql values are forwarded to the underlying UUID, so
// persisted data does not change when a field switches from uuid.UUID to a
// typed UUID. Only GoString (%#v) adds the kind tag:
//
//	dffc3068-1cd6-47d5-b2f3-636b41b07084 (user)
//
// # Conversions
//
// FromUntyped and Untyped convert between typed and untyped UUIDs. They are
// deliberately explicit; there is no implicit conversion between kinds.
//
// # Schemas
//
// Kinds may implement SchemaKind to describe themselves as an OpenAPI/JSON
// schema (github.com/getkin/kin-openapi). JSONSchema[K] returns that schema,
// or a plain string/uuid schema for kinds without one.
package typeduuid
