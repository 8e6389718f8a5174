// flappy is a side-scrolling avoidance game for the terminal.
//
// Usage:
//
//	flappy play      - Play in the current terminal
//	flappy serve     - Start SSH server for remote play
//	flappy sim       - Run headless rounds with the autopilot
//	flappy config    - Validate and print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--config <path>      - Load configuration from a YAML file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagSeed     uint64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the bird through the pipes in your terminal",
	Long: `Flappy is a side-scrolling avoidance game. Press the action key to
start, flap, and retry; every pipe you clear scores a point.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  sim      - Run headless rounds with the autopilot
  config   - Validate and print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy sim --runs 10
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration named by --config and validates it.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}
