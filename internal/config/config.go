package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/helpnav/internal/pages"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HELPNAV_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()
	// List values are decoded into fresh slices and defaulted afterwards.
	cfg.Include = nil
	cfg.Exclude = nil
	cfg.Pages = nil
	cfg.StripScripts = nil

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// HELPNAV_OUTPUT_DIR -> output_dir, HELPNAV_SERVER__PORT -> server.port.
	if err := k.Load(env.Provider("HELPNAV_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "HELPNAV_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	applySliceDefaults(cfg)

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.HelpDir == "" {
		return fmt.Errorf("help_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.HelpDir == c.OutputDir {
		return fmt.Errorf("output_dir must differ from help_dir (%s)", c.HelpDir)
	}
	if len(c.Pages) == 0 {
		return fmt.Errorf("at least one page is required")
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	if err := c.Selectors.Validate(); err != nil {
		return fmt.Errorf("selectors: %w", err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	return nil
}

// Registry builds the page registry from the configured pages.
func (c *Config) Registry() (*pages.Registry, error) {
	reg, err := pages.NewRegistry(c.Pages...)
	if err != nil {
		return nil, fmt.Errorf("invalid pages: %w", err)
	}
	return reg, nil
}
