package app

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rust-protogen/internal/adapters"
	"rust-protogen/internal/core"
	"rust-protogen/internal/types"
)

func TestDescribeFieldOptionalInt32(t *testing.T) {
	service := NewService()
	result, err := service.DescribeField(context.Background(), DescribeFieldRequest{
		Kind:    types.FieldKindInt32,
		Wrapper: types.WrapperKindOption,
	})
	require.NoError(t, err)

	expected := DescribeFieldResult{
		RustType:     "::std::option::Option<i32>",
		DefaultValue: "::std::option::Option::None",
		ClearExpr:    "v = ::std::option::Option::None",
		CodecType:    "::protobuf::types::ProtobufTypeInt32",
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

// The element type of the optional wrapper converts to the bare
// scalar by the identity rule.
func TestOptionalElementIdentityConversion(t *testing.T) {
	wrapped := types.Option(types.Int(true, 32))
	elem, err := core.ElemType(wrapped)
	require.NoError(t, err)
	require.True(t, elem.Equal(types.Int(true, 32)))

	service := NewService()
	converted, err := service.ConvertValue(context.Background(), ConvertRequest{
		Source: elem,
		Target: types.Int(true, 32),
		Expr:   "v",
	})
	require.NoError(t, err)
	assert.Equal(t, "v", converted.Expr)
}

func TestDescribeFieldSharedBytes(t *testing.T) {
	service := NewService()
	result, err := service.DescribeField(context.Background(), DescribeFieldRequest{
		Kind:  types.FieldKindBytes,
		Bytes: types.BytesModeShared,
	})
	require.NoError(t, err)
	assert.Equal(t, "::std::vec::Vec<u8>", result.RustType)
	assert.Equal(t, "::protobuf::types::ProtobufTypeCarllercheBytes", result.CodecType)
}

func TestDescribeFieldNonPrimitive(t *testing.T) {
	service := NewService()
	_, err := service.DescribeField(context.Background(), DescribeFieldRequest{
		Kind: types.FieldKindMessage,
	})
	require.Error(t, err)
}

func TestConvertValueNoPath(t *testing.T) {
	service := NewService()
	_, err := service.ConvertValue(context.Background(), ConvertRequest{
		Source: types.Bool(),
		Target: types.String(),
		Expr:   "v",
	})
	require.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	service := NewService()
	result, err := service.ResolvePath(context.Background(), ResolvePathRequest{
		From: []string{"a", "b", "c"},
		To:   []string{"a", "x"},
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"super", "super", "x"}, result.Segments); diff != "" {
		t.Fatalf("unexpected segments (-want +got):\n%s", diff)
	}
	assert.Equal(t, "super::super::x", result.Rendered)
}

func TestResolvePathSameModule(t *testing.T) {
	service := NewService()
	result, err := service.ResolvePath(context.Background(), ResolvePathRequest{
		From: []string{"a", "b"},
		To:   []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
}

func TestReferenceType(t *testing.T) {
	scope := adapters.NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummaryData([]byte(`
files:
  - name: other.proto
    package: my.pkg
    messages:
      - name: Other
`)))
	service := NewService()
	service.Scope = scope

	result, err := service.ReferenceType(context.Background(), ReferenceRequest{
		TypeName: "my.pkg.Other",
		File:     "geo.proto",
		Module:   []string{"point"},
	})
	require.NoError(t, err)
	assert.Equal(t, "super::super::other::Other", result.Reference)
}

func TestReferenceTypeUnknown(t *testing.T) {
	service := NewService()
	_, err := service.ReferenceType(context.Background(), ReferenceRequest{
		TypeName: "my.pkg.Missing",
		File:     "geo.proto",
	})
	require.Error(t, err)
}
