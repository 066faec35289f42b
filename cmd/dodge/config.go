package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it to ~/.dodge/configs/dodge.yaml or ./configs/dodge.yaml and edit it
to change sizes, speeds or the Time Trial length, or pass it with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
