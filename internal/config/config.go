// Package config loads the dashboard configuration file: where the exported
// datasets live and which player accounts to merge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// DefaultPath is tried when no --config flag is given.
const DefaultPath = "loldash.yaml"

// Config is the parsed configuration file.
type Config struct {
	// DataDir is the root holding one dataset directory per player ID.
	DataDir string `yaml:"data_dir"`

	Players []model.Player `yaml:"players"`

	// Defaults pre-populate the filter flags so frequent filters don't have
	// to be retyped on every invocation.
	Defaults Defaults `yaml:"defaults"`
}

// Defaults holds optional baseline filter settings.
type Defaults struct {
	QueueKey int    `yaml:"queue_key"`
	Last     int    `yaml:"last"`
	Player   string `yaml:"player"`
}

// Load reads and validates the configuration at path. When path is empty the
// default location is tried, and if that file does not exist a minimal
// configuration pointing at ./data is synthesized so the tool works without
// any setup in an exported-dataset directory.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return fallback()
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must be set")
	}
	if len(c.Players) == 0 {
		return errors.New("at least one player must be configured")
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.ID == "" {
			return errors.New("every player needs an id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate player id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Player resolves a configured player by ID.
func (c *Config) Player(id string) (model.Player, bool) {
	for _, p := range c.Players {
		if p.ID == id {
			return p, true
		}
	}
	return model.Player{}, false
}

// fallback scans ./data for dataset directories and treats each one as a
// player, so a bare checkout with exported data needs no config file.
func fallback() (*Config, error) {
	cfg := &Config{DataDir: "data"}
	entries, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		return nil, errors.New("no config file found and no ./data directory to scan")
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(cfg.DataDir, e.Name(), "fact_matches.csv")); err != nil {
			continue
		}
		cfg.Players = append(cfg.Players, model.Player{ID: e.Name(), DisplayName: e.Name()})
	}
	if len(cfg.Players) == 0 {
		return nil, errors.New("no config file found and ./data holds no datasets")
	}
	return cfg, nil
}
