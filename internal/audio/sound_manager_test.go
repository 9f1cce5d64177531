package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// newLiveManager returns a manager that accepts sounds without a speaker.
func newLiveManager() *SoundManager {
	sm := NewSoundManager(nil)
	sm.active = true
	return sm
}

// drain pulls n samples through the mixer, as the speaker would.
func drain(sm *SoundManager, n int) {
	buf := make([][2]float64, 512)
	for n > 0 {
		sm.mixer.Stream(buf)
		n -= len(buf)
	}
}

// TestSoundManagerGracefulDegradation verifies nothing is mixed or panics without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for _, k := range []core.EventKind{
		core.EventRunStarted, core.EventJump, core.EventLand, core.EventPickup,
		core.EventSlideStart, core.EventSlideStop, core.EventGameOver,
	} {
		sm.Notify(core.Event{Kind: k})
	}
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer.Len() = %d, expected 0 without initialization", sm.mixer.Len())
	}
}

func TestOneShotFinishes(t *testing.T) {
	sm := newLiveManager()

	sm.Notify(core.Event{Kind: core.EventJump})
	if sm.mixer.Len() != 1 {
		t.Fatalf("mixer.Len() after jump = %d, expected 1", sm.mixer.Len())
	}

	drain(sm, sampleRate.N(time.Second))
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer.Len() after drain = %d, expected 0", sm.mixer.Len())
	}
}

func TestSlideLoop(t *testing.T) {
	sm := newLiveManager()

	sm.Notify(core.Event{Kind: core.EventSlideStart})
	if sm.slide == nil || sm.slide.Paused {
		t.Fatal("slide loop not playing after SlideStart")
	}

	sm.Notify(core.Event{Kind: core.EventSlideStop})
	if !sm.slide.Paused {
		t.Error("slide loop still playing after SlideStop")
	}

	first := sm.slide
	sm.Notify(core.Event{Kind: core.EventSlideStart})
	if sm.slide != first || sm.slide.Paused {
		t.Error("slide loop not resumed in place")
	}
	if sm.mixer.Len() != 1 {
		t.Errorf("mixer.Len() = %d, expected 1", sm.mixer.Len())
	}

	drain(sm, sampleRate.N(time.Second))
	if sm.mixer.Len() != 1 {
		t.Errorf("loop dropped from mixer after drain, Len() = %d", sm.mixer.Len())
	}
}

func TestLandStreakPlaysOnce(t *testing.T) {
	sm := newLiveManager()

	for _, frame := range []int{5, 6, 6, 7, 8} {
		sm.Notify(core.Event{Kind: core.EventLand, Frame: frame})
	}
	if sm.mixer.Len() != 1 {
		t.Errorf("mixer.Len() after one streak = %d, expected 1", sm.mixer.Len())
	}

	sm.Notify(core.Event{Kind: core.EventLand, Frame: 20})
	if sm.mixer.Len() != 2 {
		t.Errorf("mixer.Len() after new streak = %d, expected 2", sm.mixer.Len())
	}
}

func TestGameOverStopsLoops(t *testing.T) {
	sm := newLiveManager()

	sm.Notify(core.Event{Kind: core.EventRunStarted})
	sm.Notify(core.Event{Kind: core.EventSlideStart})
	sm.Notify(core.Event{Kind: core.EventGameOver})

	if !sm.ambient.Paused || !sm.slide.Paused {
		t.Errorf("loops paused = (%v, %v), expected both true", sm.ambient.Paused, sm.slide.Paused)
	}
	// ambient, slide and the game over buzz
	if sm.mixer.Len() != 3 {
		t.Errorf("mixer.Len() = %d, expected 3", sm.mixer.Len())
	}
}

func TestVolume(t *testing.T) {
	sm := NewSoundManager(nil)

	sm.SetVolume(0.5)
	if sm.Muted() || sm.volume.Volume != -1 {
		t.Errorf("SetVolume(0.5): muted %v volume %v, expected false and -1", sm.Muted(), sm.volume.Volume)
	}

	sm.SetVolume(0)
	if !sm.Muted() {
		t.Error("SetVolume(0) did not mute")
	}

	sm.SetMuted(false)
	if sm.Muted() {
		t.Error("SetMuted(false) left output muted")
	}
}

func TestSweepGeneratorLength(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 200, 400, 10*time.Millisecond, 0.5)
	expected := sampleRate.N(10 * time.Millisecond)

	total := 0
	buf := make([][2]float64, 100)
	for {
		n, ok := g.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != expected {
		t.Errorf("streamed %d samples, expected %d", total, expected)
	}
}

func TestGeneratorsBounded(t *testing.T) {
	gens := map[string]beep.Streamer{
		"sweep":     NewSweepGenerator(sampleRate, 300, 900, 100*time.Millisecond, 0.25),
		"buzz":      NewBuzzGenerator(sampleRate, 440, 110, 100*time.Millisecond, 0.3),
		"chime":     NewChimeGenerator(sampleRate, 30*time.Millisecond, 880, 1100),
		"slide":     NewSlideGenerator(sampleRate),
		"synthwave": NewSynthwaveGenerator(sampleRate),
	}

	buf := make([][2]float64, 2048)
	for name, g := range gens {
		for i := 0; i < 10; i++ {
			n, _ := g.Stream(buf)
			for _, s := range buf[:n] {
				if math.Abs(s[0]) > 1 || s[0] != s[1] {
					t.Errorf("%s: sample %v out of range or not mono", name, s)
					break
				}
			}
		}
	}
}
