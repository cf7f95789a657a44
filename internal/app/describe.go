package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"rust-protogen/internal/core"
	"rust-protogen/internal/types"
)

// DescribeField maps a primitive field kind plus the caller-selected
// wrapper to its generated type, default value, clear statement (for a
// variable named v) and codec type.
func (s Service) DescribeField(ctx context.Context, req DescribeFieldRequest) (DescribeFieldResult, error) {
	assert.NotEmpty(ctx, string(req.Kind), "field kind must be set")
	wrapper := req.Wrapper
	if wrapper == "" {
		wrapper = types.WrapperKindPlain
	}
	mode := req.Bytes
	if mode == "" {
		mode = types.BytesModeDefault
	}

	base, err := core.PrimitiveRustType(req.Kind)
	if err != nil {
		return DescribeFieldResult{}, err
	}
	wrapped, err := core.WrapType(base, wrapper)
	if err != nil {
		return DescribeFieldResult{}, err
	}
	defaultValue, err := core.DefaultValue(wrapped)
	if err != nil {
		return DescribeFieldResult{}, err
	}
	clearExpr, err := core.Clear(wrapped, "v")
	if err != nil {
		return DescribeFieldResult{}, err
	}
	codecType, err := core.TypeGenPrimitive(req.Kind, mode).RustTypeName()
	if err != nil {
		return DescribeFieldResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("kind", string(req.Kind)).
		Str("wrapper", string(wrapper)).
		Str("rust_type", wrapped.String()).
		Msg("field described")
	return DescribeFieldResult{
		RustType:     wrapped.String(),
		DefaultValue: defaultValue,
		ClearExpr:    clearExpr,
		CodecType:    codecType,
	}, nil
}

// ConvertValue runs the conversion engine for one expression.
func (s Service) ConvertValue(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	assert.NotEmpty(ctx, req.Expr, "conversion expression must be set")
	expr, err := core.Convert(req.Source, req.Target, req.Expr)
	if err != nil {
		return ConvertResult{}, err
	}
	return ConvertResult{Expr: expr}, nil
}

// ResolvePath computes the shortest module path between two positions
// in the generated module tree.
func (s Service) ResolvePath(ctx context.Context, req ResolvePathRequest) (ResolvePathResult, error) {
	from := pathFromSegments(req.From, false)
	to := pathFromSegments(req.To, req.ToAbsolute)
	resolved := core.MakePathTo(from, to)
	segments := make([]string, 0, len(resolved.Segments))
	for _, segment := range resolved.Segments {
		segments = append(segments, string(segment))
	}
	return ResolvePathResult{
		Segments: segments,
		Rendered: resolved.String(),
	}, nil
}

// ReferenceType resolves an absolute protobuf type name to the
// qualified Rust name emitted from the given compilation context.
func (s Service) ReferenceType(ctx context.Context, req ReferenceRequest) (ReferenceResult, error) {
	assert.NotEmpty(ctx, req.TypeName, "type name must be set")
	assert.NotEmpty(ctx, req.File, "compiling file must be set")
	current := types.FileContext{
		File:        req.File,
		RelativeMod: pathFromSegments(req.Module, false),
	}
	reference, err := s.referencePolicy().TypeNameReference(req.TypeName, current)
	if err != nil {
		return ReferenceResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("type", req.TypeName).
		Str("reference", reference.String()).
		Msg("type referenced")
	return ReferenceResult{Reference: reference.String()}, nil
}

func pathFromSegments(segments []string, absolute bool) types.Path {
	idents := make([]types.Ident, 0, len(segments))
	for _, segment := range segments {
		idents = append(idents, types.Ident(segment))
	}
	return types.Path{Absolute: absolute, Segments: idents}
}
