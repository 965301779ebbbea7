package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the config
file search and the difficulty preset are applied. The output is valid YAML
and can be saved as ~/.arcade/configs/t2048.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefault bool

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
