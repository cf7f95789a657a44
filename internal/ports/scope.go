package ports

import "rust-protogen/internal/types"

// Entity is a message or enum declaration as indexed by the scope
// registry: where it was declared and how its generated Rust name is
// spelled inside and outside its declaring file.
type Entity interface {
	// Kind distinguishes messages from enums.
	Kind() types.EntityKind

	// FileName is the declaring .proto file name as written in the
	// descriptor, including any directory prefix.
	FileName() string

	// FilePackage is the declaring file's protobuf package.
	FilePackage() string

	// FullName is the fully-qualified protobuf name without a leading
	// dot, e.g. "google.protobuf.Timestamp".
	FullName() string

	// RustNameToFile is the generated name relative to the declaring
	// file's crate module, including enclosing-message modules.
	RustNameToFile() types.IdentPath

	// RustNameWithFile prefixes RustNameToFile with the declaring
	// file's own module segment.
	RustNameWithFile() types.IdentPath

	// DefaultVariant is the first declared variant of an enum. Empty
	// for messages.
	DefaultVariant() types.Ident
}

// Scope indexes every message and enum of the compilation set and its
// dependencies. Implemented by the descriptor loader; an in-memory
// adapter backs the CLI and tests.
type Scope interface {
	// FindMessageOrEnum resolves an absolute protobuf type name to its
	// declaring entity.
	FindMessageOrEnum(absoluteName string) (Entity, error)
}
