package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icefall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the game would use, as YAML.

The file search order is --config, ~/.arcade/configs/icefall.yaml,
./configs/icefall.yaml, then the built-in defaults. The --difficulty
preset is applied to the printed ramp.

Examples:
  icefall config > ~/.arcade/configs/icefall.yaml
  icefall config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
