package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // The single action key: start, jump and restart
	ActionBack           // Leave to the menu
	ActionRestart        // Restart after game over
	ActionQuit           // Exit the program
	ActionPause          // Toggle pause
)

var actionNames = [...]string{"none", "jump", "back", "restart", "quit", "pause"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// InputFrame is the set of actions seen during one tick. Repeated presses of
// the same key within a tick collapse into one.
type InputFrame uint16

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return 0
}

// Set marks a as pressed this tick.
func (f *InputFrame) Set(a Action) {
	*f |= 1 << a
}

// Has reports whether a was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = 0
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool {
	return f == 0
}

// Actions lists the pressed actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionJump; int(a) < len(actionNames); a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
