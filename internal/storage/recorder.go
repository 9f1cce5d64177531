package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Recorder writes every finished run of one edition to the ledger.
// It implements core.Listener. Write failures are logged and dropped.
type Recorder struct {
	store   *Store
	edition string
	logger  *log.Logger
	last    Run
}

// NewRecorder creates a recorder for the given edition.
func NewRecorder(store *Store, edition string, logger *log.Logger) *Recorder {
	return &Recorder{store: store, edition: edition, logger: logger}
}

// Notify records EventGameOver and ignores everything else.
func (r *Recorder) Notify(ev core.Event) {
	if ev.Kind != core.EventGameOver {
		return
	}

	run, err := r.store.RecordRun(Run{
		Edition:    r.edition,
		FinalScore: ev.Score,
		Multiplier: ev.Multiplier,
		Cause:      ev.Cause.String(),
		Frames:     ev.Frame,
	})
	if err != nil {
		r.logger.Error("cannot record run", "edition", r.edition, "err", err)
		return
	}
	r.last = run
	r.logger.Debug("run recorded", "id", run.ID, "score", run.FinalScore)
}

// Last returns the most recently recorded run.
func (r *Recorder) Last() Run {
	return r.last
}
