package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-chase/internal/core"
)

// keyBindings maps Bubble Tea key names to actions. Terminals report no
// key releases, so a direction key steers until another one replaces it.
var keyBindings = map[string]core.Action{
	"w":      core.ActionUp,
	"up":     core.ActionUp,
	"s":      core.ActionDown,
	"down":   core.ActionDown,
	"a":      core.ActionLeft,
	"left":   core.ActionLeft,
	"d":      core.ActionRight,
	"right":  core.ActionRight,
	" ":      core.ActionJump,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"esc":    core.ActionBack,
	"r":      core.ActionRestart,
	"m":      core.ActionMenu,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: keyBindings}
}

// MapKey returns the action bound to msg, or ActionNone, and whether it
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.bindings[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame adds the action bound to msg to frame. Quit is reported
// instead of added.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}
