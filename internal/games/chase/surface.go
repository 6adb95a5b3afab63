package chase

import "github.com/vovakirdan/square-chase/internal/core"

// Surface is a render target addressed in field units.
type Surface interface {
	FillBox(r core.Rect, c core.Color)
	OutlineBox(r core.Rect, c core.Color)
	Text(x, y int, s string, c core.Color)
	TextCentered(y int, s string, c core.Color)
}

// ScreenSurface draws onto a terminal screen, scaling field coordinates
// down to cells.
type ScreenSurface struct {
	scr    *core.Screen
	fieldW int
	fieldH int
}

// NewScreenSurface wraps scr for a field of the given size.
func NewScreenSurface(scr *core.Screen, fieldW, fieldH int) *ScreenSurface {
	return &ScreenSurface{scr: scr, fieldW: fieldW, fieldH: fieldH}
}

func (s *ScreenSurface) cellX(x int) int {
	return floorDiv(x*s.scr.Width(), s.fieldW)
}

func (s *ScreenSurface) cellY(y int) int {
	return floorDiv(y*s.scr.Height(), s.fieldH)
}

// cells converts a field rect to the cell rect covering it, at least one
// cell in each direction so small entities stay visible.
func (s *ScreenSurface) cells(r core.Rect) core.Rect {
	x0, y0 := s.cellX(r.X), s.cellY(r.Y)
	x1, y1 := s.cellX(r.Right()), s.cellY(r.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// FillBox fills the cells covered by r.
func (s *ScreenSurface) FillBox(r core.Rect, c core.Color) {
	s.scr.DrawRect(s.cells(r), '█', c)
}

// OutlineBox frames the cells covered by r one cell outside them.
func (s *ScreenSurface) OutlineBox(r core.Rect, c core.Color) {
	cr := s.cells(r)
	s.scr.DrawBox(core.NewRect(cr.X-1, cr.Y-1, cr.W+2, cr.H+2), c)
}

// Text draws s starting at the cell containing (x, y).
func (s *ScreenSurface) Text(x, y int, text string, c core.Color) {
	s.scr.DrawTextColor(s.cellX(x), s.cellY(y), text, c)
}

// TextCentered draws s horizontally centered on the row containing y.
func (s *ScreenSurface) TextCentered(y int, text string, c core.Color) {
	s.scr.DrawTextCentered(s.cellY(y), text, c)
}

// floorDiv divides rounding toward negative infinity, so boxes partly
// off the left or top edge map to negative cells.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
