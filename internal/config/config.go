// internal/config/config.go
//
// This package handles configuration and the .warehouse directory
// structure. Every project directory the tool runs in gets a .warehouse/
// folder holding the config file and diagnostic logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WarehouseDir is the name of the directory we create in the project root.
const WarehouseDir = ".warehouse"

const defaultConfigYAML = `# warehouse configuration
version: 1

# Datasets loaded once at startup. Relative paths resolve against the
# project directory.
data:
  stock: data/stock.json
  personnel: data/personnel.json
`

// DataConfig names the two datasets loaded at startup.
type DataConfig struct {
	Stock     string `yaml:"stock"`
	Personnel string `yaml:"personnel"`
}

// ProjectConfig models .warehouse/config.yaml.
type ProjectConfig struct {
	Version int        `yaml:"version"`
	Data    DataConfig `yaml:"data"`
}

// Config is the resolved runtime configuration.
type Config struct {
	ProjectDir   string
	WarehouseDir string
	Project      ProjectConfig
}

// InitWarehouseDir creates .warehouse/ and writes the default config file
// if one does not exist yet.
func InitWarehouseDir(projectDir string) error {
	dir := filepath.Join(projectDir, WarehouseDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", WarehouseDir, err)
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default config: %w", err)
	}
	return nil
}

// NewConfig loads .warehouse/config.yaml from the given project directory,
// falling back to defaults for any unset field.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:   projectDir,
		WarehouseDir: filepath.Join(projectDir, WarehouseDir),
		Project: ProjectConfig{
			Version: 1,
			Data: DataConfig{
				Stock:     filepath.Join("data", "stock.json"),
				Personnel: filepath.Join("data", "personnel.json"),
			},
		},
	}
	path := filepath.Join(cfg.WarehouseDir, "config.yaml")
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read config file: %w", err)
	}
	var project ProjectConfig
	if err := yaml.Unmarshal(raw, &project); err != nil {
		return nil, fmt.Errorf("config: parse config file: %w", err)
	}
	if project.Version != 0 {
		cfg.Project.Version = project.Version
	}
	if project.Data.Stock != "" {
		cfg.Project.Data.Stock = project.Data.Stock
	}
	if project.Data.Personnel != "" {
		cfg.Project.Data.Personnel = project.Data.Personnel
	}
	return cfg, nil
}

// StockPath resolves the stock dataset path against the project directory.
func (c *Config) StockPath() string {
	return c.resolve(c.Project.Data.Stock)
}

// PersonnelPath resolves the personnel dataset path against the project
// directory.
func (c *Config) PersonnelPath() string {
	return c.resolve(c.Project.Data.Personnel)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectDir, path)
}
