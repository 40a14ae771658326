// flappy is a terminal Flappy Bird: flap a square bird through an endless
// stream of blocks.
//
// Usage:
//
//	flappy                   - Play in the current terminal
//	flappy play              - Same as above
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.flappy/config.yaml)
//	--fps <rate>        - Override display.fps
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--log-level <lvl>   - Override log.level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the blocks in your terminal",
	Long: `Flappy is a terminal take on Flappy Bird. Keep the bird in the air and
steer it past the blocks. Every block you clear scores a point, and the
blocks speed up the further you fly.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy
  flappy --seed 7
  flappy serve --ssh :2222
  flappy config --config ./flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
