package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rust-protogen/internal/types"
)

const geoSummary = `
files:
  - name: geo/geo.proto
    package: my.pkg
    messages:
      - name: Point
      - name: Point.Altitude
    enums:
      - name: Color
        default_variant: RED
`

func TestScopeIndexLoadSummaryData(t *testing.T) {
	scope := NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummaryData([]byte(geoSummary)))

	entity, err := scope.FindMessageOrEnum("my.pkg.Point")
	require.NoError(t, err)
	assert.Equal(t, types.EntityKindMessage, entity.Kind())
	assert.Equal(t, "geo/geo.proto", entity.FileName())
	assert.Equal(t, "my.pkg", entity.FilePackage())
	assert.Equal(t, "Point", entity.RustNameToFile().String())
	assert.Equal(t, "geo::Point", entity.RustNameWithFile().String())
}

func TestScopeIndexNestedMessage(t *testing.T) {
	scope := NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummaryData([]byte(geoSummary)))

	entity, err := scope.FindMessageOrEnum("my.pkg.Point.Altitude")
	require.NoError(t, err)
	assert.Equal(t, "Point_Altitude", entity.RustNameToFile().String())
	assert.Equal(t, "geo::Point_Altitude", entity.RustNameWithFile().String())
}

func TestScopeIndexEnum(t *testing.T) {
	scope := NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummaryData([]byte(geoSummary)))

	entity, err := scope.FindMessageOrEnum("my.pkg.Color")
	require.NoError(t, err)
	assert.Equal(t, types.EntityKindEnum, entity.Kind())
	assert.Equal(t, types.Ident("RED"), entity.DefaultVariant())
}

func TestScopeIndexNotFound(t *testing.T) {
	scope := NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummaryData([]byte(geoSummary)))

	_, err := scope.FindMessageOrEnum("my.pkg.Missing")
	require.Error(t, err)
}

// Later summary layers override earlier ones per name.
func TestScopeIndexLayering(t *testing.T) {
	scope := NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummaryData([]byte(geoSummary)))
	require.NoError(t, scope.LoadSummaryData([]byte(`
files:
  - name: geo/v2/geo.proto
    package: my.pkg
    messages:
      - name: Point
`)))

	entity, err := scope.FindMessageOrEnum("my.pkg.Point")
	require.NoError(t, err)
	assert.Equal(t, "geo/v2/geo.proto", entity.FileName())
}

func TestScopeIndexLoadSummaryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(geoSummary), 0o644))

	scope := NewScopeIndexAdapter()
	require.NoError(t, scope.LoadSummary(path))

	_, err := scope.FindMessageOrEnum("my.pkg.Color")
	require.NoError(t, err)
}

func TestScopeIndexLoadErrors(t *testing.T) {
	scope := NewScopeIndexAdapter()

	require.Error(t, scope.LoadSummary(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, scope.LoadSummaryData([]byte("files: [")))
	require.Error(t, scope.LoadSummaryData([]byte(`
files:
  - name: geo.proto
    enums:
      - name: Color
`)))
	require.Error(t, scope.LoadSummaryData([]byte(`
files:
  - package: my.pkg
`)))
}

func TestFileModuleName(t *testing.T) {
	assert.Equal(t, types.Ident("geo"), fileModuleName("geo.proto"))
	assert.Equal(t, types.Ident("geo"), fileModuleName("a/b/geo.proto"))
	assert.Equal(t, types.Ident("geo"), fileModuleName(`a\b\geo.proto`))
	assert.Equal(t, types.Ident("geo_v2"), fileModuleName("geo-v2.proto"))
	assert.Equal(t, types.Ident("geo_data"), fileModuleName("geo.data.proto"))
}
