package stages

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	catalog, err := NewSQLiteCatalog(filepath.Join(t.TempDir(), "stages.db"))
	require.NoError(t, err)
	require.NoError(t, catalog.Migrate())
	t.Cleanup(func() { catalog.Close() })
	return catalog
}

func TestSQLiteCatalogRoundTrip(t *testing.T) {
	catalog := openTestCatalog(t)

	stage := &Stage{
		ID:    "caves",
		Width: 2400,
		Elements: []Element{
			{Type: "platform", X: 0, Y: 520, Width: 600, Height: 40},
			{Type: "enemy", Subtype: "walker", X: 300, Y: 480, Width: 32, Height: 32},
		},
	}
	require.NoError(t, catalog.Save(stage))

	loaded, err := catalog.Load("caves")
	require.NoError(t, err)
	assert.Equal(t, stage.ID, loaded.ID)
	assert.Equal(t, stage.Width, loaded.Width)
	require.Len(t, loaded.Elements, 2)
	assert.Equal(t, "walker", loaded.Elements[1].Subtype)
}

func TestSQLiteCatalogList(t *testing.T) {
	catalog := openTestCatalog(t)

	ids, err := catalog.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, catalog.Save(&Stage{ID: "flat", Width: 800}))
	require.NoError(t, catalog.Save(&Stage{ID: "gaps", Width: 1200}))

	ids, err = catalog.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"flat", "gaps"}, ids)
}

func TestSQLiteCatalogSaveReplaces(t *testing.T) {
	catalog := openTestCatalog(t)

	require.NoError(t, catalog.Save(&Stage{ID: "flat", Width: 800}))
	require.NoError(t, catalog.Save(&Stage{ID: "flat", Width: 1000}))

	loaded, err := catalog.Load("flat")
	require.NoError(t, err)
	assert.Equal(t, 1000, loaded.Width)

	ids, err := catalog.List()
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestSQLiteCatalogLoadMissing(t *testing.T) {
	catalog := openTestCatalog(t)
	_, err := catalog.Load("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
