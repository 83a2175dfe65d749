package core

// Action is a semantic input, independent of the physical key that produced it.
type Action uint8

const (
	ActionNone      Action = iota
	ActionTurnLeft         // Rotate counter-clockwise
	ActionTurnRight        // Rotate clockwise
	ActionThrust           // Accelerate along the heading
	ActionFire             // Launch a projectile
	ActionPause            // Toggle pause
	ActionRestart          // Start over after game over
	ActionQuit             // Leave the session; handled by the host

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "None",
	ActionTurnLeft:  "TurnLeft",
	ActionTurnRight: "TurnRight",
	ActionThrust:    "Thrust",
	ActionFire:      "Fire",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions asserted during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as asserted. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was asserted this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is asserted.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
