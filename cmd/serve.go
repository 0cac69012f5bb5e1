package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/helpnav/internal/pages"
	"github.com/ziadkadry99/helpnav/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the built help site",
	Long:  `Serves the output directory over HTTP for local preview. Run ` + "`helpnav build`" + ` first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.OutputDir
		if d, _ := cmd.Flags().GetString("dir"); d != "" {
			dir = d
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("site not found at %s\nRun `helpnav build` first", dir)
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		return serveSite(cmd, dir, cfg.Server.Port, cfg.Server.AllowAll, reg)
	},
}

func init() {
	serveCmd.Flags().String("dir", "", "directory to serve (defaults to output_dir)")
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

// serveSite runs the preview server until interrupted. The --port and
// --open flags of cmd override the configured values.
func serveSite(cmd *cobra.Command, dir string, port int, allowAll bool, reg *pages.Registry) error {
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}
	open, _ := cmd.Flags().GetBool("open")

	ctx, stop := interruptContext()
	defer stop()

	fmt.Printf("Serving at http://localhost:%d — press Ctrl+C to stop\n", port)
	err := site.Serve(ctx, site.ServerConfig{Port: port, Dir: dir, AllowAll: allowAll}, reg, open)
	if err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
