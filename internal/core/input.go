package core

// Action represents a semantic game action, abstracted from physical
// key presses. The platform maps raw keys and mouse motion to actions
// so the simulation never sees terminal events.
type Action int

const (
	ActionNone Action = iota
	ActionUp          // W, Up arrow - move paddle up
	ActionDown        // S, Down arrow - move paddle down
	ActionQuit        // Q, Ctrl+C - exit the match
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the buffered input state drained once per simulation
// tick. Directional actions are edge-triggered per frame; the pointer
// position is last-writer-wins for the frame.
type InputFrame struct {
	// Actions maps action types to whether they were seen this frame.
	Actions map[Action]bool

	pointerY   int
	pointerSet bool
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

// Has returns true if the given action was seen this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the pointer's vertical position in arena units.
// Later calls within the same frame overwrite earlier ones.
func (f *InputFrame) SetPointer(y int) {
	f.pointerY = y
	f.pointerSet = true
}

// Pointer returns the pointer position recorded this frame and whether
// one was recorded at all.
func (f InputFrame) Pointer() (y int, ok bool) {
	return f.pointerY, f.pointerSet
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointerSet = false
	f.pointerY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.pointerY = f.pointerY
	clone.pointerSet = f.pointerSet
	return clone
}
