package config

import (
	"github.com/ziadkadry99/helpnav/internal/nav"
	"github.com/ziadkadry99/helpnav/internal/pages"
)

// Config is the top-level helpnav configuration, corresponding to .helpnav.yml.
type Config struct {
	ProjectName  string                 `yaml:"project_name" koanf:"project_name"`
	HelpDir      string                 `yaml:"help_dir" koanf:"help_dir"`
	OutputDir    string                 `yaml:"output_dir" koanf:"output_dir"`
	Include      []string               `yaml:"include" koanf:"include"`
	Exclude      []string               `yaml:"exclude" koanf:"exclude"`
	Pages        []pages.PageDescriptor `yaml:"pages" koanf:"pages"`
	Selectors    nav.Selectors          `yaml:"selectors" koanf:"selectors"`
	ActiveClass  string                 `yaml:"active_class" koanf:"active_class"`
	StripScripts []string               `yaml:"strip_scripts" koanf:"strip_scripts"`
	Strict       bool                   `yaml:"strict" koanf:"strict"`
	Server       ServerConfig           `yaml:"server" koanf:"server"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
