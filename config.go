package cargostage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "cargostage.yaml"

// Config is the optional cargostage.yaml. Zero values fall back to the
// fixed behavior of the plain tool: build all targets with cargo from the
// working directory and stage into /tmp/workspace.
type Config struct {
	Root     string   `yaml:"root"`
	Cargo    string   `yaml:"cargo"`
	Args     []string `yaml:"args"`
	Manifest bool     `yaml:"manifest"`
}

func DefaultConfig() Config {
	return Config{Root: "/tmp/workspace"}
}

// LoadConfig reads file over the defaults. A missing file is no error, it
// simply leaves the defaults untouched.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return cfg, fmt.Errorf("config %s: %w", file, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", file, err)
	}
	if cfg.Root == "" {
		cfg.Root = DefaultConfig().Root
	}
	return cfg, nil
}

// Collector wires the configuration into a ready-to-run [Collector].
func (cfg Config) Collector() *Collector {
	c := NewCollector(cfg.Root)
	if cfg.Cargo != "" {
		c.Build.Exe = cfg.Cargo
	}
	if len(cfg.Args) > 0 {
		c.Build.Args = cfg.Args
	}
	c.WriteManifest = cfg.Manifest
	return c
}
