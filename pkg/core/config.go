// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no --config is given
const DefaultConfigFile = "kvstools.yaml"

// Config holds kvstools configuration
type Config struct {
	SourceDir  string `yaml:"source_dir" toml:"source_dir"`
	ConfFile   string `yaml:"conf_file" toml:"conf_file"`
	ExampleDir string `yaml:"example_dir" toml:"example_dir"`
	SourceExt  string `yaml:"source_ext" toml:"source_ext"`
	OS         string `yaml:"os,omitempty" toml:"os,omitempty"` // overrides runtime.GOOS
	Debug      bool   `yaml:"debug" toml:"debug"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`
	Tools      Tools  `yaml:"tools" toml:"tools"`
}

// Tools names the external executables invoked by the example builder
type Tools struct {
	KVSMake string `yaml:"kvsmake" toml:"kvsmake"`
	QMake   string `yaml:"qmake" toml:"qmake"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SourceDir:  getDefaultSourceDir(),
		ConfFile:   filepath.Join("..", "kvs.conf"),
		ExampleDir: ".",
		SourceExt:  ".cpp",
		Debug:      false,
		LogLevel:   "info",
		Tools: Tools{
			KVSMake: "kvsmake",
			QMake:   "qmake",
		},
	}
}

// LoadConfig loads configuration from file. Values missing from the file
// keep their defaults. A missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if dir := os.Getenv("KVS_SOURCE_DIR"); dir != "" {
		cfg.SourceDir = dir
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func getDefaultSourceDir() string {
	if dir := os.Getenv("KVS_SOURCE_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("..", "Source")
}
