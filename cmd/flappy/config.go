package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and print the effective configuration",
	Long: `Load the configuration the game would run with and print it as YAML.

Search order:
  --config <path>          (errors are fatal)
  ~/.flappy/config.yaml
  ./configs/flappy.yaml
  built-in defaults

Exits non-zero if the configuration cannot drive a game.

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml > effective.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := printConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printConfig writes the validated effective configuration to w.
func printConfig(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s (code %s)", verr.Message, verr.Code)
		}
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
