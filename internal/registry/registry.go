// Package registry lets runner editions announce themselves from init() so
// the terminal platform and the CLI can find and build them by id.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Game is the frame driver an edition exposes to the platform. It holds no
// terminal code: the platform maps keys to actions, paces the ticks and
// paints the screen buffer.
type Game interface {
	// ID is the edition id used on the command line and in the run ledger.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh idle game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick and reports the events it produced.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current frame into a pre-cleared buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Observable is implemented by games that publish gameplay events to
// listeners such as the audio collaborator or the run ledger.
type Observable interface {
	Subscribe(l core.Listener)
}

// HighScoreKeeper is implemented by games whose high score can be seeded
// from runs played earlier in the process.
type HighScoreKeeper interface {
	SetHighScore(v int)
}

// GameInfo describes a registered edition.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // Registration order
)

func lookup(id string) (entry, bool) {
	i := slices.IndexFunc(entries, func(e entry) bool { return e.info.ID == id })
	if i < 0 {
		return entry{}, false
	}
	return entries[i], true
}

// Register adds an edition. It panics when the id is taken, which can only
// happen through a programming error at init time.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := lookup(id); taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	})
}

// List returns the registered editions in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Create builds a new instance of the edition with the given id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := lookup(id)
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := lookup(id)
	return ok
}
