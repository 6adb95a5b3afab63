package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/square-chase/internal/core"
)

// Keys reports keyboard state.
type Keys interface {
	Pressed(k ebiten.Key) bool     // Held this frame
	JustPressed(k ebiten.Key) bool // Went down this frame
}

// binding maps an action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var (
	moveBindings = []binding{
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
		{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	}
	commandBindings = []binding{
		{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
		{core.ActionJump, []ebiten.Key{ebiten.KeySpace}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
		{core.ActionMenu, []ebiten.Key{ebiten.KeyM}},
	}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Frame samples keys into an input frame. While playing, movement is
// level-triggered so a held key keeps steering; everywhere else every
// action fires once per key press.
func Frame(keys Keys, playing bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range moveBindings {
		for _, k := range b.keys {
			if (playing && keys.Pressed(k)) || (!playing && keys.JustPressed(k)) {
				in.Set(b.action)
			}
		}
	}
	for _, b := range commandBindings {
		for _, k := range b.keys {
			if keys.JustPressed(k) {
				in.Set(b.action)
			}
		}
	}
	return in
}

// QuitRequested reports whether a quit key went down this frame.
func QuitRequested(keys Keys) bool {
	for _, k := range quitKeys {
		if keys.JustPressed(k) {
			return true
		}
	}
	return false
}

// ebitenKeys reads the live Ebiten keyboard state.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
