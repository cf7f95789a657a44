package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"rust-protogen/internal/types"
)

func TestMakePathToAbsolutePassthrough(t *testing.T) {
	dest := types.AbsolutePath("protobuf", "descriptor")
	resolved := MakePathTo(types.RelativePath("a", "b"), dest)
	assert.True(t, resolved.Absolute)
	assert.Equal(t, "::protobuf::descriptor", resolved.String())
}

func TestMakePathToSameModule(t *testing.T) {
	path := types.RelativePath("a", "b")
	resolved := MakePathTo(path, path)
	assert.True(t, resolved.IsEmpty())
}

func TestMakePathToSibling(t *testing.T) {
	resolved := MakePathTo(types.RelativePath("a", "b", "c"), types.RelativePath("a", "x"))
	if diff := cmp.Diff([]types.Ident{"super", "super", "x"}, resolved.Segments); diff != "" {
		t.Fatalf("unexpected segments (-want +got):\n%s", diff)
	}
}

func TestMakePathToFromRoot(t *testing.T) {
	resolved := MakePathTo(types.RelativePath(), types.RelativePath("x", "y"))
	assert.Equal(t, "x::y", resolved.String())
}

func TestMakePathToDisjoint(t *testing.T) {
	resolved := MakePathTo(types.RelativePath("a", "b"), types.RelativePath("x"))
	assert.Equal(t, "super::super::x", resolved.String())
}

func TestMakePathToDescend(t *testing.T) {
	resolved := MakePathTo(types.RelativePath("a"), types.RelativePath("a", "b", "c"))
	assert.Equal(t, "b::c", resolved.String())
}

func TestMakePath(t *testing.T) {
	dest := types.RelativeIdentPath("Point", "a", "geo")
	resolved := MakePath(types.RelativePath("a", "other"), dest)
	assert.Equal(t, "super::geo::Point", resolved.String())
}
