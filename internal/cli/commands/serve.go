package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cityindex-labs/costmap/internal/cli/config"
	"github.com/cityindex-labs/costmap/internal/dataset"
	"github.com/cityindex-labs/costmap/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the cost-of-living dashboard",
		Long: `Start a local web server with the interactive dashboard.

The dashboard provides:
- A map of cities sized and colored by cost-of-living index
- Rent comparison and salary-vs-cost charts
- A purchasing-power ranking
- A sortable data table
- Filters by state and cost-of-living index range`,
		Example: `  # Start on default port
  costmap serve

  # Start on custom port without opening a browser
  costmap serve --port 3000 --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Reload when the dataset file changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	uiCfg := cfg.GetUIConfig()

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	store := dataset.NewStore(cfg.DataPath)

	// Load up front: a bad dataset must stop the server, not surface as a
	// broken page later.
	records, err := store.Snapshot()
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", cfg.DataPath, "cities", len(records), "states", len(dataset.States(records)))

	serverCfg := ui.Config{
		Store:         store,
		Port:          port,
		Watch:         watch,
		SessionSecret: sessionSecret(uiCfg),
		Logger:        logger,
	}
	server := ui.NewServer(serverCfg)

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting dashboard on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// sessionSecret resolves the cookie secret: config, then environment, then
// a random per-process value (fine for a local dashboard; selections just
// reset on restart).
func sessionSecret(uiCfg *config.UIConfig) string {
	if uiCfg.SessionSecret != "" {
		return uiCfg.SessionSecret
	}
	if secret := os.Getenv("COSTMAP_SESSION_SECRET"); secret != "" {
		return secret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "costmap-dev-secret"
	}
	return hex.EncodeToString(buf)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
