package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/games/runner"
	"github.com/vovakirdan/cinnarun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game; players never see
or affect each other.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cinnarun/host_key

Examples:
  cinnarun serve                           # Listen on :23234 with auto-generated key
  cinnarun serve --ssh :2222               # Listen on port 2222
  cinnarun serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config (YAML or TOML)")
}

func runServe(_ *cobra.Command, _ []string) {
	runnerCfg, err := config.Resolve(flagServeConfig, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	runner.SetConfig(runnerCfg)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.GameID = runner.GameID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting cinnarun SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: %s\n", connectHint(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// connectHint returns the ssh command line for reaching addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
