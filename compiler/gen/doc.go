// Package gen generates Go declarations for typed UUID kinds.
//
// A kinds document (see package load) names the kinds of identifiers a
// program deals with. For every kind, gen emits a marker type bound to a
// runtime tag and an alias of typeduuid.UUID instantiated with that marker:
//
//	kinds:
//	  User: {}
//
// becomes
//
//	// UserKind marks UUIDs that identify users.
//	type UserKind struct{}
//
//	var tagUserKind = typeduuid.MustTag("user")
//
//	// Tag implements typeduuid.Kind.
//	func (UserKind) Tag() typeduuid.Tag {
//		return tagUserKind
//	}
//
//	// Alias returns the name of the UUID type alias of UserKind.
//	func (UserKind) Alias() string {
//		return "UserUuid"
//	}
//
//	// UserUuid is a UUID of kind UserKind.
//	type UserUuid = typeduuid.UUID[UserKind]
//
// # Pipeline
//
//	kinds.yaml
//	    ↓ load.Parse (structural errors stop here)
//	load.Config
//	    ↓ resolveKind (per-kind diagnostics, through an errstore.Sink per kind)
//	[]*Kind
//	    ↓ generator.declare (jennifer)
//	Output{Files, Diagnostics}
//
// # Error Handling
//
// A kind with a critical diagnostic is left out; every other kind is still
// generated. Diagnostics are returned in Output.Diagnostics and appended to
// the main file as //typeduuidgen:error and //typeduuidgen:warning comment
// lines, so that a partial run still shows every problem it found.
// Output.Err joins the critical ones.
//
// Configuration errors are *ConfigError values matching ErrMissingConfig,
// and rendering failures are *GenerationError values matching
// ErrGenerationFailed:
//
//	out, err := gen.GenerateFile(cfg, "kinds.yaml")
//	if err != nil {
//		return err
//	}
//	if err := out.Write(); err != nil {
//		return err
//	}
//	return out.Err()
//
// # Schemas
//
// When the document has a settings.schema section, every marker also gets a
// JSONSchema method returning a kin-openapi schema. If settings.schema.rust_type
// is set, the schema is a uuid-formatted string with the x-rust-type extension;
// otherwise it is a schema no value satisfies. A build_constraint moves these
// methods to a separate file guarded by a //go:build line.
package gen
