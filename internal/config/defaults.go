package config

import (
	"github.com/ziadkadry99/helpnav/internal/nav"
	"github.com/ziadkadry99/helpnav/internal/pages"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".helpnav.yml"

// DefaultExcludes are glob patterns excluded from the help directory by default.
var DefaultExcludes = []string{
	"*.psd",
	"*.tmp",
	"*.bak",
	"*~",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProjectName:  "OpenVDB for Cinema 4D",
		HelpDir:      "help",
		OutputDir:    "site",
		Include:      []string{"**"},
		Exclude:      append([]string(nil), DefaultExcludes...),
		Pages:        append([]pages.PageDescriptor(nil), pages.DefaultPages...),
		Selectors:    nav.DefaultSelectors(),
		ActiveClass:  nav.DefaultActiveClass,
		StripScripts: append([]string(nil), nav.DefaultStripScripts...),
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

// applySliceDefaults restores list settings the config left unset. An
// explicitly empty exclude or strip_scripts list is kept.
func applySliceDefaults(cfg *Config) {
	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**"}
	}
	if cfg.Exclude == nil {
		cfg.Exclude = append([]string(nil), DefaultExcludes...)
	}
	if cfg.StripScripts == nil {
		cfg.StripScripts = append([]string(nil), nav.DefaultStripScripts...)
	}
	if len(cfg.Pages) == 0 {
		cfg.Pages = append([]pages.PageDescriptor(nil), pages.DefaultPages...)
	}
}
