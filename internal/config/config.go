package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Addr           string `yaml:"addr"`
	StagesDir      string `yaml:"stages_dir"`
	CatalogBackend string `yaml:"catalog_backend"` // dir|sqlite
	SQLitePath     string `yaml:"sqlite_path"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Addr:           ":8000",
		StagesDir:      "stages",
		CatalogBackend: "dir",
		SQLitePath:     "stages.db",
	}
}

// Load reads the YAML configuration at path. A missing file is not an
// error: the server runs on pure defaults. RUNMEME_ADDR and
// RUNMEME_STAGES_DIR environment variables override both file and defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RUNMEME_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("RUNMEME_STAGES_DIR"); v != "" {
		c.StagesDir = v
	}
}

func (c *Config) validate() error {
	switch c.CatalogBackend {
	case "dir", "sqlite":
		return nil
	default:
		return fmt.Errorf("unknown catalog_backend %q (want dir or sqlite)", c.CatalogBackend)
	}
}
