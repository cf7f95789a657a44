package policies

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rust-protogen/internal/core"
	"rust-protogen/internal/ports"
	"rust-protogen/internal/types"
)

// ReferencePolicy decides how a message or enum is named from code
// generated for a given file and module position. The decision order
// is fixed: same-file relative reference, well-known runtime symbol,
// bootstrap descriptor symbol, then a cross-unit relative path.
type ReferencePolicy struct {
	scope ports.Scope
}

func NewReferencePolicy(scope ports.Scope) ReferencePolicy {
	return ReferencePolicy{scope: scope}
}

// TypeReference computes the qualified Rust name for the entity as
// seen from the current compilation context.
func (p ReferencePolicy) TypeReference(entity ports.Entity, current types.FileContext) types.IdentPath {
	if entity.FileName() == current.File {
		// Declared in the file being compiled: rewrite its in-file
		// path relative to the current module position.
		return core.MakePath(current.RelativeMod, entity.RustNameToFile())
	}
	if name, ok := WellKnownRustName(entity.FullName()); ok {
		// Well-known types ship with the runtime library.
		return types.AbsolutePath("protobuf", "well_known_types").WithIdent(name)
	}
	if IsBootstrapFile(entity.FileName(), entity.FilePackage()) {
		return entity.RustNameToFile().PrependPath(types.AbsolutePath("protobuf", "descriptor"))
	}
	// A sibling generated unit. Every unit nests its types one module
	// below a shared ancestor, so the reference climbs out of the
	// current module position, escapes one extra scope, and descends
	// through the sibling's file module.
	escape := current.RelativeMod.ToReverse().AppendIdent(types.SuperIdent)
	reference := entity.RustNameWithFile().PrependPath(escape)
	log.Debug().
		Str("type", entity.FullName()).
		Str("from", current.File).
		Str("path", reference.String()).
		Msg("cross-unit type reference")
	return reference
}

// TypeNameReference resolves an absolute protobuf type name through
// the scope registry and names it from the current context.
func (p ReferencePolicy) TypeNameReference(absoluteName string, current types.FileContext) (types.IdentPath, error) {
	if absoluteName == "" {
		return types.IdentPath{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("type name must not be empty")
	}
	entity, err := p.scope.FindMessageOrEnum(absoluteName)
	if err != nil {
		return types.IdentPath{}, err
	}
	return p.TypeReference(entity, current), nil
}
