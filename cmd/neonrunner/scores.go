package main

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// printSummary prints the session's runs per edition once the terminal is
// back in normal mode. The ledger dies with the process, so this is the last
// chance to see it.
func printSummary(store *storage.Store) {
	if store == nil {
		return
	}

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading run ledger: %v\n", err)
		return
	}
	if len(all) == 0 {
		return
	}

	p := message.NewPrinter(language.English)
	top, err := store.TopRuns("", 1)
	if err == nil && len(top) > 0 {
		p.Printf("Best run this session: %d (%s, x%d)\n", top[0].FinalScore, top[0].Edition, top[0].Multiplier)
	}

	for _, ed := range sortedEditions(all) {
		st := all[ed]
		p.Printf("  %-8s %3d runs  best %7d  avg %7.0f\n", ed, st.Runs, st.Best, st.AvgScore)
	}
}

// sortedEditions returns the map keys in registry order.
func sortedEditions(all map[string]storage.Stats) []string {
	var out []string
	for _, ed := range config.Editions() {
		if _, ok := all[string(ed)]; ok {
			out = append(out, string(ed))
		}
	}
	return out
}
