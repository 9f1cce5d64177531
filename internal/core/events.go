package core

// EventKind identifies a discrete gameplay notification.
type EventKind int

const (
	EventRunStarted EventKind = iota // Idle->Running or GameOver->Running
	EventJump                        // Jump impulse applied
	EventLand                        // Player landed on (or is riding) a platform
	EventPickup                      // Orb collected
	EventSlideStart                  // Rising edge of platform contact
	EventSlideStop                   // Falling edge of platform contact
	EventGameOver                    // Run ended
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "RunStarted"
	case EventJump:
		return "Jump"
	case EventLand:
		return "Land"
	case EventPickup:
		return "Pickup"
	case EventSlideStart:
		return "SlideStart"
	case EventSlideStop:
		return "SlideStop"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EndCause describes why a run ended.
type EndCause int

const (
	CauseNone      EndCause = iota
	CauseFloor              // Player fell below the canvas
	CauseCollision          // Player touched an obstacle
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case CauseFloor:
		return "floor"
	case CauseCollision:
		return "collision"
	default:
		return "none"
	}
}

// Event is a fire-and-forget notification emitted by a game during a tick.
// Score, Multiplier and HighScore carry the session counters at emission time;
// for EventGameOver, Score is the final (multiplied) score and Frame the
// length of the run in ticks.
type Event struct {
	Kind       EventKind
	Frame      int
	Score      int
	Multiplier int
	HighScore  int
	NewBest    bool     // EventGameOver only: high score was beaten
	Cause      EndCause // EventGameOver only
}

// Listener receives game events. Implementations must not block and must not
// call back into the game.
type Listener interface {
	Notify(ev Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev Event)

// Notify calls f(ev).
func (f ListenerFunc) Notify(ev Event) {
	f(ev)
}
