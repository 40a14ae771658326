package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flappy SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game; sessions share nothing.
Server logs go to stderr.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy/host_key

Examples:
  flappy serve                           # Listen on server.address with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, overrides server.idle_timeout")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, cfg.Log, "flappy-ssh")

	server, err := tui.NewSSHServer(cfg, flagSeed, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	logger.Info("press Ctrl+C to stop", "connect", connectHint(server.Addr()))
	return server.ListenAndServe()
}

// connectHint returns the ssh command a player runs to reach addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
