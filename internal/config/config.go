// Package config loads optional YAML configuration. Precedence is
// CLI flags > local file > global file; fields are pointers so an unset
// value is distinguishable from a zero.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type FileConfig struct {
	Threads     *int    `yaml:"threads"`
	MaxBytes    *int64  `yaml:"max_bytes"`
	ExcludeFile *string `yaml:"exclude_file"`
	ListFile    *string `yaml:"list_file"`
	CSVFile     *string `yaml:"csv_file"`
	LogFile     *string `yaml:"log_file"`
	NoColor     *bool   `yaml:"no_color"`
	NoBaseline  *bool   `yaml:"no_baseline"`
}

// LoadFile parses one YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// localNames in search order; the dotfile wins.
var localNames = []string{".lockhound.yaml", "lockhound.yaml"}

// LoadLocal finds a config file in dir.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range localNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, fmt.Errorf("no local config in %s", dir)
}

// LoadGlobal reads the per-user config from XDG_CONFIG_HOME (falling back
// to ~/.config) at lockhound/config.yml.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return FileConfig{}, fmt.Errorf("no config directory")
		}
		base = filepath.Join(home, ".config")
	}
	p := filepath.Join(base, "lockhound", "config.yml")
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, fmt.Errorf("no global config: %w", err)
	}
	return LoadFile(p)
}
