package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ziadkadry99/helpnav/internal/config"
	"github.com/ziadkadry99/helpnav/internal/nav"
	"github.com/ziadkadry99/helpnav/internal/pages"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `helpnav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRendererFromConfig creates the navigation renderer described by cfg.
func newRendererFromConfig(cfg *config.Config) (*nav.Renderer, *pages.Registry, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, nil, err
	}
	r := nav.NewRenderer(reg,
		nav.WithSelectors(cfg.Selectors),
		nav.WithActiveClass(cfg.ActiveClass),
	)
	return r, reg, nil
}

// interruptContext returns a context cancelled on SIGINT or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// debugf prints to stderr when --verbose is set.
func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
