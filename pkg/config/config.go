// Package config reads the configuration file.
//
// The file is YAML and all keys are optional:
//
//	size: 10
//	source: man        # man, help or file
//	line-numbers: false
//	history: ~/.man-with.history
//	db: ""
//	bindings:
//	  Ctrl-G: quit
//
// Values given on the command line take precedence over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"src.manwith.dev/pkg/fsutil"
	"src.manwith.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[config] ")

// DefaultHistory is the default path of the history file.
const DefaultHistory = "~/.man-with.history"

// Config keeps all configuration values.
type Config struct {
	// Number of reference lines shown.
	Size int `yaml:"size"`
	// Initial reference source: "man", "help" or "file".
	Source string `yaml:"source"`
	// Whether reference lines are numbered initially.
	LineNumbers bool `yaml:"line-numbers"`
	// Path of the JSON-lines history file. An empty value disables history.
	History string `yaml:"history"`
	// Path of a bbolt history database. Takes precedence over History.
	DB string `yaml:"db"`
	// Additional key bindings, from key names to action names.
	Bindings map[string]string `yaml:"bindings"`
}

// Default returns the configuration used when there is no configuration file.
func Default() *Config {
	return &Config{Size: 10, Source: "man", History: DefaultHistory}
}

// DefaultPath returns the default path of the configuration file, under
// $XDG_CONFIG_HOME or ~/.config.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "manwith", "config.yaml"), nil
}

// Load reads the configuration file at path on top of Default. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Println("no config file at", path)
		cfg := Default()
		return cfg, cfg.expand()
	} else if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses the content of a configuration file on top of Default. Unknown
// keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, cfg.expand()
}

func (cfg *Config) validate() error {
	if cfg.Size < 1 {
		return fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	switch cfg.Source {
	case "man", "help", "file":
	default:
		return fmt.Errorf("source must be man, help or file, got %q", cfg.Source)
	}
	return nil
}

func (cfg *Config) expand() error {
	var err error
	if cfg.History, err = fsutil.ExpandTilde(cfg.History); err != nil {
		return err
	}
	if cfg.DB, err = fsutil.ExpandTilde(cfg.DB); err != nil {
		return err
	}
	return nil
}
