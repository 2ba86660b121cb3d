package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockflight/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rockflight SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own game; high scores last for the session.
With --watch, a changed config is picked up by the next session that
returns to the start screen.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rockflight/host_key

Examples:
  rockflight serve                           # Listen on :23234 with auto-generated key
  rockflight serve --ssh :2222               # Listen on port 2222
  rockflight serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	e, err := setup(os.Stderr, "rockflight-ssh")
	exitOnError(err)
	defer e.close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:       flagSSHAddr,
		HostKeyPath:   flagHostKey,
		IdleTimeout:   time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:      e.runtime.TickRate,
		Flight:        e.flight,
		AssetDir:      e.flight.Assets.Path,
		ConfigUpdates: e.updates(),
		Logger:        e.logger,
	})
	exitOnError(err)

	fmt.Printf("Starting rockflight SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	exitOnError(server.ListenAndServe())
}
