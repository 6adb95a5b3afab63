package chase

import (
	"fmt"

	"github.com/vovakirdan/square-chase/internal/core"
)

// Menu layout in field units.
const (
	menuTitleY   = 100
	swatchX      = 200
	swatchY      = 300
	swatchSize   = 50
	swatchStride = 100
	menuInfoY    = 500
)

// Draw renders the current phase onto s.
func (m *Machine) Draw(s Surface) {
	switch m.phase {
	case PhaseMenu:
		m.drawMenu(s)
	case PhasePlaying:
		m.drawPlaying(s)
	case PhaseGameOver:
		m.drawGameOver(s)
	}
}

func (m *Machine) drawMenu(s Surface) {
	s.TextCentered(menuTitleY, "Choose Your Color", core.ColorWhite)

	for i, c := range Palette {
		r := core.Square(swatchX+i*swatchStride, swatchY, swatchSize)
		s.FillBox(r, c)
		if i == m.colorIndex {
			s.OutlineBox(r, core.ColorWhite)
		}
	}

	s.TextCentered(menuInfoY, "← → to choose, ENTER to start", core.ColorGray)
}

func (m *Machine) drawPlaying(s Surface) {
	p := m.session.Player
	s.FillBox(p.Box, p.Color)
	for _, e := range m.session.Enemies {
		s.FillBox(e.Box, e.Color)
	}

	s.Text(10, 10, fmt.Sprintf("Score: %d", m.session.Score), core.ColorWhite)
	s.Text(10, 50, fmt.Sprintf("High Score: %d", m.highScore), core.ColorBrightYellow)
}

func (m *Machine) drawGameOver(s Surface) {
	mid := m.cfg.Field.Height / 2
	s.TextCentered(mid, "GAME OVER!", core.ColorBrightRed)
	s.TextCentered(mid+50, fmt.Sprintf("Final Score: %d", m.session.Score), core.ColorWhite)
	s.TextCentered(mid+100, fmt.Sprintf("High Score: %d", m.highScore), core.ColorBrightYellow)
	s.TextCentered(mid+160, "Press R to Restart", core.ColorGray)
	s.TextCentered(mid+210, "Press M for Menu", core.ColorGray)
}
