package stages

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirCatalogRoundTrip(t *testing.T) {
	dir := t.TempDir()
	catalog := NewDirCatalog(dir)

	stage := &Stage{
		ID:    "hills",
		Width: 1600,
		Elements: []Element{
			{Type: "platform", X: 0, Y: 500, Width: 400, Height: 50},
			{Type: "block", BlockType: "brick", X: 420, Y: 380, Width: 40, Height: 40,
				Properties: map[string]any{"breakable": true}},
		},
	}
	require.NoError(t, catalog.Save(stage))

	loaded, err := catalog.Load("hills")
	require.NoError(t, err)
	assert.Equal(t, stage.ID, loaded.ID)
	assert.Equal(t, stage.Width, loaded.Width)
	require.Len(t, loaded.Elements, 2)
	assert.Equal(t, "brick", loaded.Elements[1].BlockType)
	assert.Equal(t, true, loaded.Elements[1].Properties["breakable"])
}

func TestDirCatalogList(t *testing.T) {
	dir := t.TempDir()
	catalog := NewDirCatalog(dir)

	require.NoError(t, catalog.Save(&Stage{ID: "flat", Width: 800}))
	require.NoError(t, catalog.Save(&Stage{ID: "gaps", Width: 1200}))
	// Non-stage files in the directory are not part of the catalog.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	ids, err := catalog.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"flat", "gaps"}, ids)
}

func TestDirCatalogListMissingDir(t *testing.T) {
	catalog := NewDirCatalog(filepath.Join(t.TempDir(), "nope"))
	_, err := catalog.List()
	require.ErrorIs(t, err, ErrNoCatalog)
}

func TestDirCatalogLoadMissing(t *testing.T) {
	catalog := NewDirCatalog(t.TempDir())
	_, err := catalog.Load("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDirCatalogSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stages")
	catalog := NewDirCatalog(dir)

	require.NoError(t, catalog.Save(&Stage{ID: "flat", Width: 800}))
	_, err := os.Stat(filepath.Join(dir, "flat.json"))
	require.NoError(t, err)
}

func TestGenerateIDAvoidsCollisions(t *testing.T) {
	existing := []string{"flat", "custom_1234"}
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := GenerateID(existing)
		assert.NotEqual(t, "custom_1234", id)
		assert.Regexp(t, `^custom_`, id)
		seen[id] = struct{}{}
	}
	// Distinct draws should be the overwhelming majority.
	assert.Greater(t, len(seen), 50)
}

func TestGenerateIDSaturatedRange(t *testing.T) {
	// Every numeric id is taken, so the uuid fallback has to kick in.
	existing := make([]string, 0, 9000)
	for n := 1000; n <= 9999; n++ {
		existing = append(existing, fmt.Sprintf("custom_%04d", n))
	}

	id := GenerateID(existing)
	assert.Regexp(t, `^custom_`, id)
	assert.NotContains(t, existing, id)
}
