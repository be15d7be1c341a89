package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// CLI flags; config-file values are overridden by explicitly set flags
	configPath string // Path to a YAML config file (optional)
	envName    string // Environment variant (apb, ts, obss)
	agentName  string // Agent (random, thompson)
	address    string // Gateway address (host:port)
	clientID   int    // Client identity sent in the hello handshake
	steps      int    // Number of control steps to run
	seed       int64  // Seed for agent action sampling
	logLevel   string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "netgym",
	Short: "RL client for NetworkGym network simulators",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	runCmd.Flags().StringVar(&envName, "env", "", "Environment variant (apb, ts, obss)")
	runCmd.Flags().StringVar(&agentName, "agent", "random", "Agent (random, thompson)")
	runCmd.Flags().StringVar(&address, "address", "localhost:8088", "Gateway address (host:port)")
	runCmd.Flags().IntVar(&clientID, "client-id", 0, "Client identity sent to the gateway")
	runCmd.Flags().IntVar(&steps, "steps", 100, "Number of control steps")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for agent action sampling")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}
