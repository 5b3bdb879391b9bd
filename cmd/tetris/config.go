package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as YAML.

Search order: --config path, ~/.arcade/configs/tetris.yaml,
./configs/tetris.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
