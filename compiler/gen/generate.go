package gen

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/typeduuid/compiler/load"
	"github.com/syssam/typeduuid/internal/errstore"
)

// openapiPkg is the import path of the schema model used by JSONSchema methods.
const openapiPkg = "github.com/getkin/kin-openapi/openapi3"

// Output is the result of one generation run.
type Output struct {
	// Files are the generated files, the main file first.
	Files []*File
	// Kinds are the kinds that were generated, in document order.
	Kinds []*Kind
	// Diagnostics lists every problem found, errors and warnings alike, in
	// the order they were found.
	Diagnostics []*Diagnostic
	// Stale lists files an earlier run may have produced that this run does
	// not. Write removes them.
	Stale []string
}

// File is a generated source file.
type File struct {
	Path   string
	Source []byte
}

// Err joins the error-severity diagnostics. It is nil if every kind was
// generated.
func (o *Output) Err() error {
	var errs []error
	for _, d := range o.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errors.Join(errs...)
}

// Warnings returns the warning-severity diagnostics.
func (o *Output) Warnings() []*Diagnostic {
	var warnings []*Diagnostic
	for _, d := range o.Diagnostics {
		if d.Severity == SeverityWarning {
			warnings = append(warnings, d)
		}
	}
	return warnings
}

// GenerateFile parses the kinds document at path and generates code for it.
// A document that does not have the expected shape fails with a
// *load.ParseError and no output.
func GenerateFile(c *Config, path string) (*Output, error) {
	doc, err := load.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Generate(c, doc)
}

// Generate validates the kinds of doc and renders the declarations of every
// valid kind. Invalid kinds are left out and reported in Output.Diagnostics;
// they do not make Generate fail. The returned error is reserved for
// configuration and rendering failures.
func Generate(c *Config, doc *load.Config) (*Output, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if doc == nil {
		return nil, NewConfigError("Document", nil, "kinds document cannot be nil")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	store := errstore.New[*Diagnostic]()
	root := store.Sink()
	var kinds []*Kind
	for _, e := range doc.Kinds {
		if k := resolveKind(doc, e, root.NewChild()); k != nil {
			kinds = append(kinds, k)
		}
	}
	out := &Output{Kinds: kinds, Diagnostics: store.Errors()}

	g := &generator{config: c, pkg: doc.Package()}
	schema := doc.Schema()
	separate := schema != nil && schema.BuildConstraint != ""

	mainFile := g.newFile(headerComment(c.Header))
	var schemaFile *jen.File
	if separate {
		header := "//go:build " + schema.BuildConstraint
		if c.Header != "" {
			header = headerComment(c.Header) + "\n\n" + header
		}
		schemaFile = g.newFile(header)
	}
	if len(kinds) > 0 {
		g.importRuntime(mainFile)
		if schema != nil {
			if separate {
				schemaFile.ImportName(openapiPkg, "openapi3")
			} else {
				mainFile.ImportName(openapiPkg, "openapi3")
			}
		}
	}
	for _, k := range kinds {
		decls, schemaDecls := g.declare(k, separate)
		addAll(mainFile, decls)
		if separate {
			addAll(schemaFile, schemaDecls)
		}
	}
	if len(out.Diagnostics) > 0 {
		mainFile.Line()
		for _, d := range out.Diagnostics {
			mainFile.Comment(marker(d))
		}
	}

	src, err := render(c.Target, mainFile)
	if err != nil {
		return nil, err
	}
	out.Files = append(out.Files, &File{Path: c.Target, Source: src})
	if separate {
		src, err := render(c.SchemaTarget(), schemaFile)
		if err != nil {
			return nil, err
		}
		out.Files = append(out.Files, &File{Path: c.SchemaTarget(), Source: src})
	} else {
		out.Stale = append(out.Stale, c.SchemaTarget())
	}
	return out, nil
}

// generator synthesizes declarations with jennifer.
type generator struct {
	config *Config
	// pkg is the import path of the typeduuid runtime.
	pkg string
}

func (g *generator) newFile(header string) *jen.File {
	f := jen.NewFile(g.config.Package)
	if header != "" {
		f.HeaderComment(header)
	}
	return f
}

// importRuntime names the runtime import "typeduuid" whatever the last
// element of its path is.
func (g *generator) importRuntime(f *jen.File) {
	if path.Base(g.pkg) == "typeduuid" {
		f.ImportName(g.pkg, "typeduuid")
	} else {
		f.ImportAlias(g.pkg, "typeduuid")
	}
}

// declare returns the declarations of one kind: the marker type, its
// binding to the tag, the optional JSONSchema method and the UUID alias.
// Statements are separated by blank lines. With separate set, the schema
// method is returned on its own instead.
func (g *generator) declare(k *Kind, separate bool) (decls, schema []jen.Code) {
	decls = append(decls, jen.Comment(fmt.Sprintf("%s marks UUIDs that identify %s.", k.TypeName, plural(k.Tag))))
	decls = append(decls, attrs(k.Attrs)...)
	decls = append(decls, jen.Type().Id(k.TypeName).Struct())

	tagVar := "tag" + k.TypeName
	decls = append(decls,
		jen.Line(),
		jen.Var().Id(tagVar).Op("=").Qual(g.pkg, "MustTag").Call(jen.Lit(k.Tag)),
		jen.Line(),
		jen.Comment("Tag implements typeduuid.Kind."),
		jen.Func().Params(jen.Id(k.TypeName)).Id("Tag").Params().Qual(g.pkg, "Tag").Block(
			jen.Return(jen.Id(tagVar)),
		),
		jen.Line(),
		jen.Comment(fmt.Sprintf("Alias returns the name of the UUID type alias of %s.", k.TypeName)),
		jen.Func().Params(jen.Id(k.TypeName)).Id("Alias").Params().String().Block(
			jen.Return(jen.Lit(k.Alias)),
		),
		jen.Line(),
	)

	if k.Schema != nil {
		method := g.schemaMethod(k)
		if separate {
			schema = append(method, jen.Line())
		} else {
			decls = append(decls, method...)
			decls = append(decls, jen.Line())
		}
	}

	decls = append(decls,
		jen.Comment(fmt.Sprintf("%s is a UUID of kind %s.", k.Alias, k.TypeName)),
		jen.Type().Id(k.Alias).Op("=").Qual(g.pkg, "UUID").Types(jen.Id(k.TypeName)),
		jen.Line(),
	)
	return decls, schema
}

// attrs returns the comment lines of list, separated from the doc comment
// above them by an empty comment line the way gofmt lays out directives.
func attrs(list []load.Attr) []jen.Code {
	if len(list) == 0 {
		return nil
	}
	codes := []jen.Code{jen.Comment("//")}
	for _, a := range list {
		codes = append(codes, jen.Comment(a.Text))
	}
	return codes
}

func addAll(f *jen.File, codes []jen.Code) {
	for _, c := range codes {
		f.Add(c)
	}
}

// headerComment turns a header into a line comment, which jennifer then
// writes verbatim.
func headerComment(header string) string {
	if header == "" || strings.HasPrefix(header, "//") {
		return header
	}
	return "// " + header
}

// marker formats a diagnostic as a comment line of the generated file.
func marker(d *Diagnostic) string {
	msg := fmt.Sprintf("//typeduuidgen:%s %s: %s", d.Severity, d.Pos, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(msg)
}

func render(path string, f *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError(path, "render generated source", err)
	}
	return buf.Bytes(), nil
}
