// Package config holds the engine configuration, decodable from JSON or
// YAML.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes where prefab sources live and how the engine reports.
type Config struct {
	// Root is the directory prefab paths are resolved under.
	Root string `json:"root" yaml:"root"`
	// LogLevel is one of debug, info, warn, error, silent.
	LogLevel string `json:"log_level" yaml:"log_level"`
	// Preload lists prefab paths parsed eagerly at startup.
	Preload []string `json:"preload,omitempty" yaml:"preload,omitempty"`
}

// Default returns the conventional configuration.
func Default() Config {
	return Config{
		Root:     "assets/prefabs",
		LogLevel: "info",
	}
}

// LoadJSON loads config from a JSON reader.
func LoadJSON(r io.Reader) (Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadYAML loads config from a YAML reader.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile loads config from path, picking the decoder by extension.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer func() { _ = f.Close() }()

	switch filepath.Ext(path) {
	case ".json":
		return LoadJSON(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	}
	return Config{}, fmt.Errorf("unsupported config format: %s", path)
}
