package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the CA configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configOutput string

func init() {
	configCmd.Flags().StringVarP(&configOutput, "output", "o", formatYAML, "Output format: json, yaml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := newCAService().GetConfig()
	if err != nil {
		return err
	}
	return render(newConsole(cmd).out, configOutput, cfg)
}
