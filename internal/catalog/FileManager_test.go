package catalog

import (
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalpass/internal/models"
	"globalpass/internal/testutil"
)

func snapshotCatalog() *models.Catalog {
	c := &models.Catalog{
		Timestamp: "2026-08-30T12:00:00Z",
		Packages: map[string][]models.ESIMPackage{
			"Japan": {
				{ID: 1, Country: "Japan", Provider: "Ubigi", PlanName: "Japan 3GB", Price: 7.50, DataType: models.DataTypeData},
			},
		},
	}
	c.Normalize()
	return c
}

func TestFileManager_SaveAndLoadRoundtrip(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	source := &testutil.MockCatalogProvider{Current: snapshotCatalog()}
	fm := NewFileManager(compressor, source, &testutil.MockLogger{})

	file := filepath.Join(t.TempDir(), "catalog.bin")
	require.NoError(t, fm.SaveToFile(file))

	target := &testutil.MockCatalogProvider{}
	fm2 := NewFileManager(compressor, target, &testutil.MockLogger{})
	require.NoError(t, fm2.LoadFromFile(file))

	require.Len(t, target.SeedCalls, 1)
	restored := target.SeedCalls[0]
	assert.Equal(t, "2026-08-30T12:00:00Z", restored.Timestamp)
	assert.Equal(t, 1, restored.TotalPackages)
	assert.Equal(t, "Ubigi", restored.Packages["Japan"][0].Provider)
}

func TestFileManager_NilSnapshotKeepsFile(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	fm := NewFileManager(compressor, &testutil.MockCatalogProvider{}, &testutil.MockLogger{})

	file := filepath.Join(t.TempDir(), "catalog.bin")
	require.NoError(t, fm.SaveToFile(file))

	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr), "no snapshot should be written when nothing is loaded")
}

func TestFileManager_MissingFileIsNotAnError(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	target := &testutil.MockCatalogProvider{}
	fm := NewFileManager(compressor, target, &testutil.MockLogger{})

	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "absent.bin")))
	assert.Empty(t, target.SeedCalls)
}

func TestFileManager_CorruptFileErrors(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "catalog.bin")
	require.NoError(t, os.WriteFile(file, []byte("not zstd at all"), 0644))

	fm := NewFileManager(compressor, &testutil.MockCatalogProvider{}, &testutil.MockLogger{})
	assert.Error(t, fm.LoadFromFile(file))
}

func TestFileManager_MigratesOldFormat(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	// Old exports stored the bare country map without the envelope.
	byCountry := map[string][]models.ESIMPackage{
		"Thailand": {
			{ID: 3, Country: "Thailand", Provider: "Dtac", Price: 9.90, DataType: models.DataTypeUnlimited},
		},
	}
	raw, err := json.Marshal(byCountry)
	require.NoError(t, err)
	compressed, err := compressor.Compress(raw)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "catalog.bin")
	require.NoError(t, os.WriteFile(file, compressed, 0644))

	target := &testutil.MockCatalogProvider{}
	fm := NewFileManager(compressor, target, &testutil.MockLogger{})
	require.NoError(t, fm.LoadFromFile(file))

	require.Len(t, target.SeedCalls, 1)
	migrated := target.SeedCalls[0]
	assert.Equal(t, []string{"Thailand"}, migrated.Countries)
	assert.Equal(t, 1, migrated.TotalPackages)
}
