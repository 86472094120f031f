package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcadelab/ballpit/internal/config"
	"github.com/arcadelab/ballpit/internal/platform/tui"
	"github.com/arcadelab/ballpit/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
	flagServeConfig string
	flagServeRule   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ballpit SSH server",
	Long: `Start an SSH server that lets users connect and watch a simulation.

Each SSH connection gets its own simulation with an independent seed.
Run results are stored per-server (all users share the same database).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ballpit/host_key

Examples:
  ballpit serve                           # Listen on :23234 with auto-generated key
  ballpit serve --ssh :2222               # Listen on port 2222
  ballpit serve --rule splitter           # Install a rule set per session
  ballpit serve --host-key ./my_host_key  # Use specific host key
  ballpit serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.ballpit/runs.db", "Path to runs database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom simulation config YAML")
	serveCmd.Flags().StringVar(&flagServeRule, "rule", "none", "Rule set installed for each session")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagServeRule != "" && flagServeRule != "none" && !registry.Exists(flagServeRule) {
		fmt.Fprintf(os.Stderr, "Error: unknown rule %q\n", flagServeRule)
		fmt.Fprintln(os.Stderr, "Run 'ballpit rules' to see available rule sets.")
		os.Exit(1)
	}

	simCfg, err := config.LoadSim(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		SimConfig:   simCfg,
		RuleID:      flagServeRule,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting ballpit SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
