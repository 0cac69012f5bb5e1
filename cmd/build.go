package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/helpnav/internal/progress"
	"github.com/ziadkadry99/helpnav/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the help site with navigation baked in",
	Long: `Renders every page of the help directory into the output directory: the
sidebar menu, title, breadcrumb and in-page index are written into each
page, markdown pages are converted to HTML, and all other files are copied.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("help-dir", "", "override the help directory")
	buildCmd.Flags().String("output", "", "override the output directory")
	buildCmd.Flags().Bool("strict", false, "fail when a page is missing from the page list")
	buildCmd.Flags().Bool("serve", false, "start a local preview server after building")
	buildCmd.Flags().Int("port", 0, "port for the preview server (defaults to server.port)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if dir, _ := cmd.Flags().GetString("help-dir"); dir != "" {
		cfg.HelpDir = dir
	}
	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		cfg.OutputDir = dir
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.Strict = true
	}

	renderer, reg, err := newRendererFromConfig(cfg)
	if err != nil {
		return err
	}
	debugf("Rendering %s into %s with %d registered pages\n", cfg.HelpDir, cfg.OutputDir, reg.Len())

	generator := site.NewSiteGenerator(cfg.HelpDir, cfg.OutputDir, cfg.ProjectName, renderer)
	generator.Include = cfg.Include
	generator.Exclude = cfg.Exclude
	generator.StripScripts = cfg.StripScripts
	generator.Strict = cfg.Strict
	generator.Reporter = progress.NewReporter()

	report, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Help site built: %s (%d pages, %d sections, %d other files)\n",
		cfg.OutputDir, report.Pages, report.Sections, report.Assets)
	if len(report.Unregistered) > 0 {
		fmt.Printf("%d page(s) are not in the page list:\n", len(report.Unregistered))
		for _, p := range report.Unregistered {
			fmt.Printf("  %s\n", p)
		}
	}

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		return serveSite(cmd, cfg.OutputDir, cfg.Server.Port, cfg.Server.AllowAll, reg)
	}
	return nil
}
