package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/helpnav/internal/site"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Inspect the help page list",
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered pages in menu order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		fmt.Printf("%-3s %-28s %-28s %s\n", "#", "MENU", "TITLE", "FILE")
		for i, p := range reg.All() {
			fmt.Printf("%-3d %-28s %-28s %s\n", i+1, p.ShortTitle, p.LongTitle, p.FileName)
		}
		return nil
	},
}

var pagesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the page list against the help directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		check, err := site.CheckRegistry(cfg.HelpDir, cfg.Include, cfg.Exclude, reg)
		if err != nil {
			return err
		}

		for _, p := range check.Missing {
			fmt.Printf("missing:      %s (%s)\n", p.FileName, p.ShortTitle)
		}
		for _, name := range check.Unregistered {
			fmt.Printf("unregistered: %s\n", name)
		}
		for _, c := range check.Collisions {
			fmt.Printf("collision:    %s (%s)\n", c.Page, strings.Join(c.Sources, ", "))
		}
		if len(check.Collisions) > 0 {
			return fmt.Errorf("%d page(s) published by more than one source", len(check.Collisions))
		}
		if !check.OK() {
			return fmt.Errorf("%d registered page(s) not found in %s", len(check.Missing), cfg.HelpDir)
		}
		fmt.Printf("All %d registered pages found in %s\n", reg.Len(), cfg.HelpDir)
		return nil
	},
}

func init() {
	pagesCmd.AddCommand(pagesListCmd)
	pagesCmd.AddCommand(pagesCheckCmd)
	rootCmd.AddCommand(pagesCmd)
}
