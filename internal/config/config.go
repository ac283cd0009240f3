// Package config loads editor settings from TOML or YAML files and
// supports live reload through a file watcher.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files whose extension is
// neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Settings holds the editor configuration.
type Settings struct {
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// TrimTrailingWhitespace removes trailing whitespace on save.
	TrimTrailingWhitespace bool `toml:"trim_trailing_whitespace" yaml:"trim_trailing_whitespace"`

	// Formatters maps a file extension (without dot) to the argv of
	// an external formatter that reads stdin and writes stdout.
	Formatters map[string][]string `toml:"formatters" yaml:"formatters"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		TabWidth:   4,
		Formatters: map[string][]string{},
	}
}

// Load reads settings from path, chosen by extension (.toml, .yaml,
// .yml). A missing file is not an error; defaults are returned.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return s, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if s.TabWidth <= 0 {
		s.TabWidth = Default().TabWidth
	}
	if s.Formatters == nil {
		s.Formatters = map[string][]string{}
	}
	return s, nil
}
