package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration flappy would run with, after the config file
search and command-line overrides, as YAML.

Redirect the output to ~/.flappy/config.yaml to start a custom config.

Examples:
  flappy config
  flappy config --config ./flappy.yaml --fps 30`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
