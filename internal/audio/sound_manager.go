// Package audio plays the runner's sound cues. SoundManager listens to
// gameplay events and never reports back: when the speaker cannot be opened
// the game simply runs silent.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-runner/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio. It implements core.Listener.
type SoundManager struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  *effects.Volume
	slide   *beep.Ctrl // Looping hiss while riding a platform
	ambient *beep.Ctrl // Looping synthwave track while a run is active
	logger  *log.Logger

	active   bool // Mixer accepts sounds
	live     bool // Speaker is open and pulling the mixer
	lastLand int  // Frame of the previous landing event
	landSeen bool
}

// NewSoundManager creates a silent sound manager. Call Initialize to open the
// speaker.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
		logger: logger,
	}
}

// Initialize opens the speaker and starts pulling the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.active {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.active = true
	sm.live = true
	sm.logger.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active {
		return
	}

	sm.locked(func() {
		sm.mixer.Clear()
	})
	sm.slide = nil
	sm.ambient = nil
	sm.active = false
	sm.live = false
}

// SetVolume sets the master volume in [0, 1]. Zero silences all output.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	v = core.ClampF(v, 0, 1)
	sm.locked(func() {
		if v == 0 {
			sm.volume.Silent = true
			return
		}
		sm.volume.Silent = false
		sm.volume.Volume = math.Log2(v)
	})
}

// SetMuted silences or restores the output without touching the volume.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.locked(func() {
		sm.volume.Silent = muted
	})
}

// Muted reports whether output is silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume.Silent
}

// Notify maps a gameplay event to its sound cue.
func (sm *SoundManager) Notify(ev core.Event) {
	switch ev.Kind {
	case core.EventRunStarted:
		sm.landSeen = false
		sm.PlayAmbient()
	case core.EventJump:
		sm.PlayJump()
	case core.EventLand:
		// Land fires every tick while riding; only the first of a streak sounds.
		first := !sm.landSeen || ev.Frame > sm.lastLand+1 || ev.Frame < sm.lastLand
		sm.lastLand, sm.landSeen = ev.Frame, true
		if first {
			sm.PlayLand()
		}
	case core.EventPickup:
		sm.PlayPickup()
	case core.EventSlideStart:
		sm.PlaySlide()
	case core.EventSlideStop:
		sm.StopSlide()
	case core.EventGameOver:
		sm.StopSlide()
		sm.StopAmbient()
		sm.PlayGameOver()
	}
}

// PlayJump plays the rising jump chirp.
func (sm *SoundManager) PlayJump() {
	sm.oneShot(NewSweepGenerator(sampleRate, 320, 880, 120*time.Millisecond, 0.25))
}

// PlayLand plays a short thud.
func (sm *SoundManager) PlayLand() {
	sm.oneShot(NewSweepGenerator(sampleRate, 180, 90, 60*time.Millisecond, 0.3))
}

// PlayPickup plays the orb chime.
func (sm *SoundManager) PlayPickup() {
	sm.oneShot(NewChimeGenerator(sampleRate, 60*time.Millisecond, 880, 1108.73, 1318.51))
}

// PlayGameOver plays the falling game over buzz.
func (sm *SoundManager) PlayGameOver() {
	sm.oneShot(NewBuzzGenerator(sampleRate, 440, 110, 600*time.Millisecond, 0.3))
}

// PlaySlide starts the slide loop. Already playing is a no-op.
func (sm *SoundManager) PlaySlide() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.slide = sm.resume(sm.slide, func() beep.Streamer { return NewSlideGenerator(sampleRate) })
}

// StopSlide pauses the slide loop.
func (sm *SoundManager) StopSlide() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.pause(sm.slide)
}

// PlayAmbient starts the ambient track. Already playing is a no-op.
func (sm *SoundManager) PlayAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.ambient = sm.resume(sm.ambient, func() beep.Streamer { return NewSynthwaveGenerator(sampleRate) })
}

// StopAmbient pauses the ambient track.
func (sm *SoundManager) StopAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.pause(sm.ambient)
}

// oneShot adds a finite streamer to the mixer.
func (sm *SoundManager) oneShot(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.active {
		return
	}
	sm.locked(func() {
		sm.mixer.Add(s)
	})
}

// resume unpauses ctrl, creating and mixing it on first use.
// Must be called with sm.mu held.
func (sm *SoundManager) resume(ctrl *beep.Ctrl, gen func() beep.Streamer) *beep.Ctrl {
	if !sm.active {
		return ctrl
	}
	sm.locked(func() {
		if ctrl == nil {
			ctrl = &beep.Ctrl{Streamer: gen()}
			sm.mixer.Add(ctrl)
		}
		ctrl.Paused = false
	})
	return ctrl
}

// pause pauses ctrl if it exists. Must be called with sm.mu held.
func (sm *SoundManager) pause(ctrl *beep.Ctrl) {
	if ctrl == nil {
		return
	}
	sm.locked(func() {
		ctrl.Paused = true
	})
}

// locked runs f while holding the speaker lock, if the speaker is running.
// Must be called with sm.mu held.
func (sm *SoundManager) locked(f func()) {
	if !sm.live {
		f()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	f()
}
