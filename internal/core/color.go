package core

import "image/color"

// Color represents a foreground color for a screen cell or a filled shape.
// Terminal frontends map it to ANSI codes, the window frontend to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorBlue
	ColorYellow
	ColorGray
	ColorBlack
)

// palette holds the RGBA value for each color.
var palette = map[Color]color.RGBA{
	ColorDefault: {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	ColorWhite:   {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	ColorRed:     {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	ColorBlue:    {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	ColorYellow:  {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	ColorGray:    {R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	ColorBlack:   {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// RGBA returns the color as an image/color value.
// Unknown colors fall back to white.
func (c Color) RGBA() color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}
