package typeduuid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Kind is implemented by marker types that bind a UUID to the entity it
// identifies. A kind is usually an empty struct generated by typeduuidgen:
//
//	type UserKind struct{}
//
//	func (UserKind) Tag() typeduuid.Tag { return tagUserKind }
//
// Kinds are never instantiated for their value; only their type matters.
type Kind interface {
	// Tag returns the runtime name of the kind.
	Tag() Tag
}

// AliasedKind is implemented by generated kinds that know the name of the
// UUID alias declared for them.
type AliasedKind interface {
	Kind
	Alias() string
}

// UUID is a UUID with type-level information about what it identifies.
//
// UUID[UserKind] and UUID[OrganizationKind] are distinct types, but both have
// exactly the wire representation of uuid.UUID: Display, text, JSON, binary
// and SQL forms are forwarded to the underlying value.
type UUID[K Kind] struct {
	uuid uuid.UUID
}

// FromUntyped wraps an untyped UUID.
//
// Conversions from untyped UUIDs should be explicit; this is the only way to
// build a typed UUID from an arbitrary uuid.UUID value.
func FromUntyped[K Kind](u uuid.UUID) UUID[K] {
	return UUID[K]{uuid: u}
}

// Nil returns the nil UUID (all zeros).
func Nil[K Kind]() UUID[K] {
	return UUID[K]{uuid: uuid.Nil}
}

// Max returns the max UUID (all ones).
func Max[K Kind]() UUID[K] {
	return UUID[K]{uuid: uuid.Max}
}

// New returns a random (version 4) UUID. It panics if the random source
// fails, like uuid.New.
func New[K Kind]() UUID[K] {
	return UUID[K]{uuid: uuid.New()}
}

// NewV7 returns a time-ordered (version 7) UUID.
func NewV7[K Kind]() (UUID[K], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return UUID[K]{}, err
	}
	return UUID[K]{uuid: u}, nil
}

// FromBytes creates a UUID from a 16-byte slice.
func FromBytes[K Kind](b []byte) (UUID[K], error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return UUID[K]{}, newParseError[K](err)
	}
	return UUID[K]{uuid: u}, nil
}

// Parse parses s in any of the textual forms accepted by uuid.Parse.
func Parse[K Kind](s string) (UUID[K], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID[K]{}, newParseError[K](err)
	}
	return UUID[K]{uuid: u}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse[K Kind](s string) UUID[K] {
	id, err := Parse[K](s)
	if err != nil {
		panic(err)
	}
	return id
}

// KindTag returns the tag of kind K.
func KindTag[K Kind]() Tag {
	var k K
	return k.Tag()
}

// Untyped returns the underlying UUID.
func (id UUID[K]) Untyped() uuid.UUID {
	return id.uuid
}

// AsUntyped returns a pointer to the underlying UUID. Untyped should be
// preferred; this exists for APIs that need to write through a *uuid.UUID.
func (id *UUID[K]) AsUntyped() *uuid.UUID {
	return &id.uuid
}

// Tag returns the tag of the UUID's kind.
func (id UUID[K]) Tag() Tag {
	return KindTag[K]()
}

// IsNil reports whether id is the nil UUID.
func (id UUID[K]) IsNil() bool {
	return id.uuid == uuid.Nil
}

// Version returns the version of the underlying UUID.
func (id UUID[K]) Version() uuid.Version {
	return id.uuid.Version()
}

// Compare returns -1, 0 or +1 comparing the bytes of id and other.
func (id UUID[K]) Compare(other UUID[K]) int {
	return bytes.Compare(id.uuid[:], other.uuid[:])
}

// String returns the canonical textual form, identical to uuid.UUID.
func (id UUID[K]) String() string {
	return id.uuid.String()
}

// GoString shows the kind tag alongside the UUID, e.g.
// "dffc3068-1cd6-47d5-b2f3-636b41b07084 (user)".
func (id UUID[K]) GoString() string {
	return fmt.Sprintf("%s (%s)", id.uuid, id.Tag())
}

// MarshalText implements encoding.TextMarshaler.
func (id UUID[K]) MarshalText() ([]byte, error) {
	return id.uuid.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UUID[K]) UnmarshalText(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(data); err != nil {
		return newParseError[K](err)
	}
	id.uuid = u
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id UUID[K]) MarshalBinary() ([]byte, error) {
	return id.uuid.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *UUID[K]) UnmarshalBinary(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalBinary(data); err != nil {
		return newParseError[K](err)
	}
	id.uuid = u
	return nil
}
