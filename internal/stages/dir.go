package stages

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirCatalog stores one JSON file per stage in a flat directory. The
// identifier is the filename stem: flat.json holds stage "flat".
type DirCatalog struct {
	dir string
}

// NewDirCatalog creates a catalog over dir. The directory is not created
// until the first Save.
func NewDirCatalog(dir string) *DirCatalog {
	return &DirCatalog{dir: dir}
}

// List scans the directory for .json files and returns their stems.
func (c *DirCatalog) List() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCatalog
		}
		return nil, fmt.Errorf("scanning stage directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Load reads and decodes <id>.json.
func (c *DirCatalog) Load(id string) (*Stage, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading stage %q: %w", id, err)
	}

	var stage Stage
	if err := json.Unmarshal(data, &stage); err != nil {
		return nil, fmt.Errorf("parsing stage %q: %w", id, err)
	}
	return &stage, nil
}

// Save writes the stage as <id>.json, creating the directory if absent.
// An existing file with the same identifier is overwritten.
func (c *DirCatalog) Save(stage *Stage) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating stage directory: %w", err)
	}

	data, err := json.MarshalIndent(stage, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stage %q: %w", stage.ID, err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, stage.ID+".json"), data, 0o644); err != nil {
		return fmt.Errorf("writing stage %q: %w", stage.ID, err)
	}
	return nil
}

// Close is a no-op; the directory handle is not held open.
func (c *DirCatalog) Close() error { return nil }
