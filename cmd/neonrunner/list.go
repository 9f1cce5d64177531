package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all editions",
	Long:  `Shows every edition of Neon Runner with its reward rule and effects.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	editions := registry.List()
	if len(editions) == 0 {
		fmt.Fprintln(out, "No editions registered.")
		return
	}

	idWidth, titleWidth := 0, 0
	for _, e := range editions {
		idWidth = max(idWidth, len(e.ID))
		titleWidth = max(titleWidth, len([]rune(e.Title)))
	}

	fmt.Fprintln(out, "Editions:")
	for _, e := range editions {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, e.ID, titleWidth, e.Title, editionFeatures(e.ID))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Play one with 'neonrunner play <id>'.")
}

// editionFeatures describes what an edition switches on over the defaults.
func editionFeatures(id string) string {
	ed, err := config.ParseEdition(id)
	if err != nil {
		return ""
	}
	cfg := config.DefaultRunnerConfig()
	config.ApplyEdition(&cfg, ed)

	feats := []string{string(cfg.Scoring.Mode) + " orbs"}
	if cfg.Effects.Glow {
		feats = append(feats, "glow")
	}
	if cfg.Platforms.Oscillate {
		feats = append(feats, "drifting platforms")
	}
	if cfg.Backdrop.Enabled {
		feats = append(feats, "starfield")
	}
	return strings.Join(feats, ", ")
}
