// neonrunner is a neon endless runner for the terminal.
//
// Usage:
//
//	neonrunner list              - List editions
//	neonrunner play <edition>    - Play an edition
//	neonrunner menu              - Pick editions interactively
//	neonrunner config            - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Load a custom runner config YAML
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--mute               - Start with sound muted
//	--volume <level>     - Master volume, 0..1 (default: 0.8)
//	--no-air-jump        - Only allow jumping while riding a platform
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagLogFile   string
	flagMute      bool
	flagVolume    float64
	flagNoAirJump bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrunner",
	Short: "Neon Runner - an endless runner in your terminal",
	Long: `Neon Runner is a one-button endless runner. Ride the platforms,
collect orbs and dodge the red blocks while the world speeds up.

Available commands:
  list     - Show all editions
  play     - Play a specific edition directly
  menu     - Interactive edition picker
  config   - Print the default runner config

Examples:
  neonrunner list
  neonrunner play classic
  neonrunner play cosmos --seed 42
  neonrunner menu --log-file /tmp/neonrunner.log`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.8, "Master volume from 0 to 1")
	rootCmd.PersistentFlags().BoolVar(&flagNoAirJump, "no-air-jump", false, "Only allow jumping while on a platform")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
