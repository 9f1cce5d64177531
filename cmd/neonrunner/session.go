package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/audio"
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/runner"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// session holds the process-wide collaborators shared by every run.
type session struct {
	opts    tui.Options
	runtime core.RuntimeConfig
	logFile *os.File
}

// openSession builds the logger, ledger and sound manager and applies the
// global flags to the runner package.
func openSession() (*session, error) {
	s := &session{}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		s.logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "neonrunner",
			Level:           log.DebugLevel,
		})
	}

	// Fail early on a broken explicit config instead of silently falling back
	if flagConfig != "" {
		if _, err := config.LoadRunner(flagConfig); err != nil {
			s.close()
			return nil, err
		}
	}

	runner.SetLogger(logger)
	runner.SetConfigPath(flagConfig)
	runner.SetAirJump(!flagNoAirJump)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run ledger unavailable", "err", err)
		store = nil
	}

	sound := audio.NewSoundManager(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
	}
	sound.SetVolume(flagVolume)
	sound.SetMuted(flagMute)

	s.opts = tui.Options{Logger: logger, Store: store, Sound: sound}
	s.runtime = runtimeConfig()
	return s, nil
}

// close releases the ledger, audio and log file.
func (s *session) close() {
	if s.opts.Sound != nil {
		s.opts.Sound.Cleanup()
	}
	if s.opts.Store != nil {
		s.opts.Store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
