package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W - jump, air-jump while airborne
	ActionShield         // S - raise shield
	ActionDash           // D - air-dash
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionShield:
		return "Shield"
	case ActionDash:
		return "Dash"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held down during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are down this frame.
	Actions map[Action]bool

	// Pressed, when non-nil, holds the actions that went down this tick as
	// reported by the input source. A nil map means edges are derived by
	// comparing consecutive frames.
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// NewEdgeFrame creates an empty frame whose rising edges come from Press
// calls rather than from the previous frame. Terminal input uses it, since
// a terminal never reports key releases.
func NewEdgeFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as down for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press marks a as down and as newly pressed this frame.
func (f *InputFrame) Press(a Action) {
	f.Set(a)
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the given action is down this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pressed != nil {
		clone.Pressed = make(map[Action]bool, len(f.Pressed))
		for k, v := range f.Pressed {
			clone.Pressed[k] = v
		}
	}
	return clone
}

// EdgeTracker turns held input into rising edges.
// Pressed reports true only on the tick an action goes from up to down, so
// holding a key does not retrigger it every tick.
type EdgeTracker struct {
	prev map[Action]bool
}

// NewEdgeTracker creates a tracker with every action released.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{prev: make(map[Action]bool)}
}

// Pressed reports whether a went down this frame. Edges reported by the
// frame itself win over the comparison with the previous frame. Call
// Advance once per tick after all Pressed queries.
func (e *EdgeTracker) Pressed(f InputFrame, a Action) bool {
	if f.Pressed != nil {
		return f.Pressed[a]
	}
	return f.Has(a) && !e.prev[a]
}

// Advance records f as the previous frame.
func (e *EdgeTracker) Advance(f InputFrame) {
	for k := range e.prev {
		delete(e.prev, k)
	}
	for k, v := range f.Actions {
		if v {
			e.prev[k] = true
		}
	}
}

// Reset forgets all previous state.
func (e *EdgeTracker) Reset() {
	for k := range e.prev {
		delete(e.prev, k)
	}
}
