package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-chase/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the Square Chase configuration as YAML, after the config search
and the difficulty preset are applied. The output is a valid config file.

Search order:
  --config path -> ~/.arcade/configs/chase.yaml -> ./configs/chase.yaml -> built-in

Examples:
  chase config
  chase config --difficulty hard > ~/.arcade/configs/chase.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := effectiveConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

// effectiveConfig loads the config the game would play with and encodes it.
func effectiveConfig(path, difficulty string) ([]byte, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadChase(path)
	if err != nil {
		return nil, err
	}
	config.ApplyChasePreset(&cfg, preset)
	return config.MarshalChase(cfg)
}
