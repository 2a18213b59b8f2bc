package core

// Action represents a semantic game action, abstracted from physical key
// presses. Levels work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space - jump, flap, fire
	ActionConfirm        // Enter - confirm choice on menu screens
	ActionBack           // Esc - decline / go back
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick: the actions
// triggered since the previous tick plus the current mouse state.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// MouseX, MouseY is the last known mouse cell position.
	MouseX, MouseY int

	// MouseClicked is true if the left button was pressed this frame.
	MouseClicked bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetMouse records the mouse position, and optionally a click, for this
// frame.
func (f *InputFrame) SetMouse(x, y int, clicked bool) {
	f.MouseX = x
	f.MouseY = y
	if clicked {
		f.MouseClicked = true
	}
}

// ClickedIn reports whether a click happened inside the given world rect.
func (f InputFrame) ClickedIn(r Rect) bool {
	return f.MouseClicked && r.Contains(float64(f.MouseX), float64(f.MouseY))
}

// Clear resets all actions and the click flag for the next frame.
// The mouse position persists between frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MouseClicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MouseX = f.MouseX
	clone.MouseY = f.MouseY
	clone.MouseClicked = f.MouseClicked
	return clone
}
