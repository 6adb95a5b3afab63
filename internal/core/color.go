package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// rgb holds the true-color value of each Color for surfaces that draw pixels.
var rgb = map[Color]color.RGBA{
	ColorDefault:       {R: 255, G: 255, B: 255, A: 255},
	ColorRed:           {R: 200, G: 0, B: 0, A: 255},
	ColorGreen:         {R: 0, G: 100, B: 0, A: 255},
	ColorYellow:        {R: 255, G: 255, B: 0, A: 255},
	ColorBlue:          {R: 0, G: 0, B: 200, A: 255},
	ColorMagenta:       {R: 200, G: 0, B: 200, A: 255},
	ColorCyan:          {R: 0, G: 200, B: 200, A: 255},
	ColorWhite:         {R: 255, G: 255, B: 255, A: 255},
	ColorBrightRed:     {R: 255, G: 50, B: 50, A: 255},
	ColorBrightGreen:   {R: 50, G: 255, B: 50, A: 255},
	ColorBrightYellow:  {R: 255, G: 255, B: 0, A: 255},
	ColorBrightBlue:    {R: 80, G: 80, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 80, B: 255, A: 255},
	ColorBrightCyan:    {R: 0, G: 200, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 100, B: 0, A: 255},
	ColorGray:          {R: 200, G: 200, B: 200, A: 255},
}

// RGB returns the true-color value of c. Unknown colors map to white.
func (c Color) RGB() color.RGBA {
	if v, ok := rgb[c]; ok {
		return v
	}
	return rgb[ColorDefault]
}
