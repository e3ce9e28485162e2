package typeduuid_test

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/syssam/typeduuid"
)

// Kinds as typeduuidgen would generate them.

type UserKind struct{}

var tagUserKind = typeduuid.MustTag("user")

func (UserKind) Tag() typeduuid.Tag {
	return tagUserKind
}

func (UserKind) Alias() string {
	return "UserUuid"
}

type UserUuid = typeduuid.UUID[UserKind]

type OrganizationKind struct{}

var tagOrganizationKind = typeduuid.MustTag("organization")

func (OrganizationKind) Tag() typeduuid.Tag {
	return tagOrganizationKind
}

func (OrganizationKind) JSONSchema() *openapi3.Schema {
	return &openapi3.Schema{Not: openapi3.NewSchemaRef("", openapi3.NewSchema().WithNullable())}
}

type OrganizationUuid = typeduuid.UUID[OrganizationKind]
