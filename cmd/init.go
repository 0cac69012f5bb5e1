package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/helpnav/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize helpnav configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure helpnav for your help site and generates a .helpnav.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
