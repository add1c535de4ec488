// Package config holds the optional run configuration for the curate
// command. Flags override file values; file values override defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for a run without a config file. The output directory
// matches the consuming project's test-fixture layout.
const (
	DefaultOutputDir    = "web/lib/testing/fixtures"
	DefaultPreviewLines = 40
	DefaultLoaderImport = "@/lib/strava"
)

// Config controls where artifacts go and how the loader stub and the
// console preview are rendered.
type Config struct {
	OutputDir    string `json:"output_dir" yaml:"output_dir"`
	PreviewLines int    `json:"preview_lines" yaml:"preview_lines"`
	LoaderImport string `json:"loader_import" yaml:"loader_import"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:    DefaultOutputDir,
		PreviewLines: DefaultPreviewLines,
		LoaderImport: DefaultLoaderImport,
	}
}

// LoadFromPath reads a config file (YAML or JSON, detected by
// extension) and overlays it on the defaults. Empty fields keep their
// default values.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config bytes. ext is the file extension for a format
// hint; anything other than ".json" parses as YAML.
func Load(data []byte, ext string) (Config, error) {
	var file Config
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("config: parse json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	cfg := Default()
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.PreviewLines > 0 {
		cfg.PreviewLines = file.PreviewLines
	}
	if file.LoaderImport != "" {
		cfg.LoaderImport = file.LoaderImport
	}
	return cfg, nil
}
