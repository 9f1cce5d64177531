package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-runner/internal/config"
)

var flagEdition string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner config",
	Long: `Print the runner config as YAML.

Without --config this is the built-in default, ready to be copied into
~/.neonrunner/configs/runner.yaml and edited. With --edition the edition
feature flags are applied before printing.

Examples:
  neonrunner config > runner.yaml
  neonrunner config --config ./runner.yaml --edition cosmos`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagEdition, "edition", "", "Apply an edition's feature flags")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfig == "" && flagEdition == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	if flagEdition != "" {
		ed, err := config.ParseEdition(flagEdition)
		if err != nil {
			return err
		}
		config.ApplyEdition(&cfg, ed)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
