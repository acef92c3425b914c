package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is tried when --config is not given. A missing default
// config is not an error.
const DefaultConfigPath = "alembic.yaml"

// Config mirrors the YAML config file. Explicit flags always win over
// config values, which win over built-in defaults.
type Config struct {
	Catalog string `yaml:"catalog"`
	History string `yaml:"history"`
	Format  string `yaml:"format"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig merges config file values into opts for every flag the user
// did not set explicitly.
func applyConfig(opts *RootOptions, cmd *cobra.Command) error {
	path := opts.Config
	required := path != ""
	if path == "" {
		path = DefaultConfigPath
	}

	cfg, err := loadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := cmd.Root().PersistentFlags()
	if cfg.Catalog != "" && !flags.Changed("catalog") {
		opts.Catalog = cfg.Catalog
	}
	if cfg.History != "" && !flags.Changed("history") {
		opts.History = cfg.History
	}
	if cfg.Format != "" && !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	return nil
}
