package core

import "strings"

// Action is a semantic input, independent of the key or device behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow; previous color in the menu
	ActionRight          // D, Right arrow; next color in the menu
	ActionJump           // Space; starts a round from the menu
	ActionConfirm        // Enter
	ActionBack           // B, Escape; closes overlays
	ActionRestart        // R after game over
	ActionMenu           // M after game over
	ActionQuit           // Q, Ctrl+C
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Jump",
	"Confirm", "Back", "Restart", "Menu", "Quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf returns a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set adds a to the frame. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear empties the frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String joins the triggered actions with '+', or returns "None".
func (f InputFrame) String() string {
	actions := f.Actions()
	if len(actions) == 0 {
		return ActionNone.String()
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
