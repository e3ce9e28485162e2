package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// RustTypeExtension is the schema extension that tells schema-to-code
// generators which existing type a kind maps to.
const RustTypeExtension = "x-rust-type"

// schemaMethod returns the JSONSchema method of a kind, preceded by its doc
// comment and the schema attributes.
//
// With rust_type metadata the kind is a string in "uuid" format carrying the
// x-rust-type extension. Without it the kind is a schema no value satisfies.
func (g *generator) schemaMethod(k *Kind) []jen.Code {
	var (
		doc  string
		body []jen.Code
	)
	if rt := k.Schema.RustType; rt != nil {
		doc = fmt.Sprintf("JSONSchema describes %s UUIDs as strings in uuid format.", k.TypeName)
		body = []jen.Code{
			jen.Id("rustType").Op(":=").Map(jen.String()).Any().Values(jen.Dict{
				jen.Lit("crate"):   jen.Lit(rt.Crate),
				jen.Lit("version"): jen.Lit(rt.Version),
				jen.Lit("path"):    jen.Lit(rt.Path + "::" + k.TypeName),
			}),
			jen.Id("schema").Op(":=").Qual(openapiPkg, "NewStringSchema").Call().Dot("WithFormat").Call(jen.Lit("uuid")),
			jen.Id("schema").Dot("Extensions").Op("=").Map(jen.String()).Any().Values(jen.Dict{
				jen.Lit(RustTypeExtension): jen.Id("rustType"),
			}),
			jen.Return(jen.Id("schema")),
		}
	} else {
		doc = fmt.Sprintf("JSONSchema describes %s with a schema that no value satisfies.", k.TypeName)
		// kin-openapi treats {not: {}} as the empty schema, which accepts
		// everything. {nullable: true} accepts every value but is not empty.
		body = []jen.Code{
			jen.Return(jen.Op("&").Qual(openapiPkg, "Schema").Values(jen.Dict{
				jen.Id("Not"): jen.Qual(openapiPkg, "NewSchemaRef").Call(
					jen.Lit(""),
					jen.Qual(openapiPkg, "NewSchema").Call().Dot("WithNullable").Call(),
				),
			})),
		}
	}
	codes := []jen.Code{jen.Comment(doc)}
	codes = append(codes, attrs(k.Schema.Attrs)...)
	return append(codes,
		jen.Func().Params(jen.Id(k.TypeName)).Id("JSONSchema").Params().Op("*").Qual(openapiPkg, "Schema").Block(body...),
	)
}
