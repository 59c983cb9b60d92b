package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way play does and print it as YAML.
The output is a complete config file that can be edited and passed back
with --config.

Search order:
  --config <path>
  ~/.arcade/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
