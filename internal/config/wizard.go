package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// helpDirCandidates are directories checked, in order, for existing help pages.
var helpDirCandidates = []string{"help", "docs/help", "res/help", "docs"}

// detectHelpDir returns the first candidate directory containing an index.html.
func detectHelpDir() string {
	for _, dir := range helpDirCandidates {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			return dir
		}
	}
	return "help"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to helpnav! Let's configure your help site.")
	fmt.Println()

	defaults := DefaultConfig()

	helpDir := detectHelpDir()
	if _, err := os.Stat(helpDir); err == nil {
		fmt.Printf("Detected help directory: %s\n\n", helpDir)
	}

	// 1. Project name.
	namePrompt := promptui.Prompt{
		Label:   "Project name",
		Default: defaults.ProjectName,
	}
	projectName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("project name: %w", err)
	}

	// 2. Help directory.
	helpPrompt := promptui.Prompt{
		Label:   "Help pages directory",
		Default: helpDir,
	}
	helpDir, err = helpPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("help dir: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the rendered site",
		Default: defaults.OutputDir,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("output directory is required")
			}
			return nil
		},
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	// 5. Unregistered pages.
	strictPrompt := promptui.Select{
		Label: "Pages missing from the page list should",
		Items: []string{
			"warn  — render them without a title or breadcrumb",
			"fail  — stop the build",
		},
	}
	strictIdx, _, err := strictPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("strict selection: %w", err)
	}

	cfg := defaults
	cfg.ProjectName = projectName
	cfg.HelpDir = helpDir
	cfg.OutputDir = outputDir
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	cfg.Strict = strictIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Edit the pages list there to change the sidebar menu.")
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
