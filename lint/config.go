package lint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the CLI looks for a configuration file.
const DefaultConfigPath = ".bython.yaml"

// output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of a bython run. The rule set itself is fixed.
type Config struct {
	Name   string `yaml:"name" toml:"name"`
	Format string `yaml:"format" toml:"format"`
	Color  string `yaml:"color" toml:"color"`
	// OpenResultPage defaults to true when unset.
	OpenResultPage *bool `yaml:"open_result_page,omitempty" toml:"open_result_page,omitempty"`
	// ResultPage replaces the bundled result page with a local HTML file.
	ResultPage string `yaml:"result_page,omitempty" toml:"result_page,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name:   "bython",
		Format: FormatText,
		Color:  ColorAuto,
	}
}

// ShouldOpenResultPage reports whether the result page is opened at the
// end of a run.
func (c Config) ShouldOpenResultPage() bool {
	return c.OpenResultPage == nil || *c.OpenResultPage
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q: expected one of text, json, yaml", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: expected one of auto, always, never", c.Color)
	}
	return nil
}

// LoadConfig reads a YAML or TOML configuration file, chosen by
// extension. A missing file yields the default configuration. Settings
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	if isTOML(path) {
		if _, err := toml.NewDecoder(f).Decode(&config); err != nil {
			return config, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	} else {
		err := yaml.NewDecoder(f).Decode(&config)
		// an empty file decodes to io.EOF
		if err != nil && !errors.Is(err, io.EOF) {
			return config, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// WriteConfig writes config to path as YAML, or as TOML when the path
// ends in .toml.
func WriteConfig(path string, config Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if isTOML(path) {
		return toml.NewEncoder(f).Encode(config)
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	_, err = f.Write(d)
	return err
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
