package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/helpnav/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "helpnav",
	Short: "Pre-render navigation for static help sites",
	Long: `helpnav bakes the navigation of a static help site into its pages:
the sidebar menu built from the page list, the current page highlight,
the document title, a breadcrumb link and an in-page table of contents
built from the page's sections.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
