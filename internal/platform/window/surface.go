// Package window runs a game in a desktop window with Ebiten.
package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/square-chase/internal/core"
)

const (
	cornerRadius = 5
	outlineWidth = 3
	textScale    = 2.5 // basicfont glyphs are 7x13 pixels
)

// face is the bitmap font used for all window text.
var face = text.NewGoXFace(basicfont.Face7x13)

// asciiArrows replaces glyphs basicfont does not have.
var asciiArrows = strings.NewReplacer("←", "<-", "→", "->")

// ImageSurface draws onto an Ebiten image whose pixels are field units.
type ImageSurface struct {
	dst *ebiten.Image
}

// NewImageSurface wraps dst.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// FillBox draws r as a filled rounded square.
func (s *ImageSurface) FillBox(r core.Rect, c core.Color) {
	col := c.RGB()
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	rad := min(float32(cornerRadius), w/2, h/2)

	vector.DrawFilledRect(s.dst, x+rad, y, w-2*rad, h, col, false)
	vector.DrawFilledRect(s.dst, x, y+rad, w, h-2*rad, col, false)
	for _, p := range [][2]float32{
		{x + rad, y + rad},
		{x + w - rad, y + rad},
		{x + rad, y + h - rad},
		{x + w - rad, y + h - rad},
	} {
		vector.DrawFilledCircle(s.dst, p[0], p[1], rad, col, true)
	}
}

// OutlineBox strokes the border of r.
func (s *ImageSurface) OutlineBox(r core.Rect, c core.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), outlineWidth, c.RGB(), false)
}

// Text draws str with its top-left corner at (x, y).
func (s *ImageSurface) Text(x, y int, str string, c core.Color) {
	s.draw(float64(x), float64(y), str, c)
}

// TextCentered draws str horizontally centered with its top at y.
func (s *ImageSurface) TextCentered(y int, str string, c core.Color) {
	w := TextWidth(str)
	x := (float64(s.dst.Bounds().Dx()) - w) / 2
	s.draw(x, float64(y), str, c)
}

func (s *ImageSurface) draw(x, y float64, str string, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGB())
	text.Draw(s.dst, asciiArrows.Replace(str), face, op)
}

// TextWidth returns the drawn width of str in field units.
func TextWidth(str string) float64 {
	w, _ := text.Measure(asciiArrows.Replace(str), face, 0)
	return w * textScale
}
