// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy               - Play (same as flappy play)
//	flappy play          - Play in the terminal
//	flappy sim           - Run a headless session and print the result
//	flappy config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--config <path>      - Use a custom configuration file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
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
	Short: "Flappy - guide a bird through scrolling pipes in your terminal",
	Long: `Flappy is a terminal take on the side-scrolling pipe game.
The bird falls under gravity; each flap gives it an upward kick.
Pass through the gaps to score. Touching a pipe or the ground ends the game.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run a headless session
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy sim --autopilot --ticks 5000
  flappy config > my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
