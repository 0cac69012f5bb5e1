package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildCommand(t *testing.T) {
	t.Setenv("CI", "true")

	outputDir := filepath.Join(t.TempDir(), "site")
	cfgPath := filepath.Join(t.TempDir(), "missing.yml")

	rootCmd.SetArgs([]string{
		"--config", cfgPath,
		"build",
		"--help-dir", filepath.Join("..", "testdata", "help"),
		"--output", outputDir,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	if !strings.Contains(string(data), `<li class="uk-active"><a href="index.html">Home</a></li>`) {
		t.Errorf("index.html should mark Home active:\n%s", data)
	}
	if !strings.Contains(string(data), "<title>OpenVDB for Cinema 4D</title>") {
		t.Error("index.html should carry the long title")
	}
}
