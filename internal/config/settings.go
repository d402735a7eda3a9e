package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rpgo/tco-parity/internal/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. TCO_LOGGING_LEVEL=debug
const EnvPrefix = "TCO_"

// Settings holds application settings (not scenario parameters)
type Settings struct {
	Logging logging.Config `koanf:"logging"`
	Output  OutputSettings `koanf:"output"`
}

// OutputSettings controls report generation
type OutputSettings struct {
	// Format is the default report format (console, csv, json, html)
	Format string `koanf:"format"`
	// Directory receives generated report files
	Directory string `koanf:"directory"`
	// Currency labels amounts entered on the command line
	Currency string `koanf:"currency"`
}

// SetDefaults applies defaults to empty fields.
func (o *OutputSettings) SetDefaults() {
	if o.Format == "" {
		o.Format = "console"
	}
	if o.Directory == "" {
		o.Directory = "."
	}
	if o.Currency == "" {
		o.Currency = "CAD"
	}
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	s := Settings{Logging: logging.DefaultConfig()}
	s.Output.SetDefaults()
	return s
}

// LoadSettings reads the optional settings file at path (YAML) and then
// applies TCO_* environment overrides. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load settings %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat settings %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// TCO_LOGGING_MAX_SIZE_MB -> logging.max_size_mb
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(s, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	s := DefaultSettings()
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.Logging.SetDefaults()
	s.Output.SetDefaults()
	if err := s.Logging.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
