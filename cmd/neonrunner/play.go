package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <edition>",
	Short: "Play an edition",
	Long: `Start playing the specified edition.

Controls:
  Space/Up/W - Start, jump, restart
  P          - Pause
  R          - Restart (after game over)
  M          - Mute
  Esc/B      - Leave
  Q/Ctrl+C   - Quit

Examples:
  neonrunner play classic
  neonrunner play glow --fps 30
  neonrunner play cosmos --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	edition := args[0]

	if !registry.Exists(edition) {
		return fmt.Errorf("unknown edition %q, run 'neonrunner list' to see editions", edition)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	game, err := registry.Create(edition)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if _, err := tui.Run(game, s.opts, s.runtime); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}

	printSummary(s.opts.Store)
	return nil
}
