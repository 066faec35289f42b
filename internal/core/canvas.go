package core

import (
	"math"
	"unicode/utf8"
)

// Align is the horizontal anchoring of a text label.
type Align int

const (
	AlignLeft   Align = iota // X is the left edge
	AlignRight               // X is the right edge
	AlignCenter              // X is the horizontal center
)

// TextSize is a coarse font size hint. Terminals ignore it.
type TextSize int

const (
	TextNormal TextSize = iota
	TextSmall
	TextLarge
)

// Label is a text draw request in world units. Y is the top edge of the text.
type Label struct {
	Text  string
	X, Y  float64
	Align Align
	Size  TextSize
	Color Color
}

// Canvas is the drawing capability a game renders into.
// Coordinates are world units; each frontend maps them to its device.
type Canvas interface {
	Clear()
	FillRect(r RectF, c Color)
	DrawText(l Label)
}

// BlockRune is the rune used to fill rectangles on cell canvases.
const BlockRune = '█'

// CellCanvas scales a world of worldW x worldH units onto a character Screen.
type CellCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCellCanvas creates a canvas drawing into screen.
func NewCellCanvas(screen *Screen, worldW, worldH int) *CellCanvas {
	return &CellCanvas{
		screen: screen,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

func (c *CellCanvas) scaleX() float64 {
	return float64(c.screen.Width()) / c.worldW
}

func (c *CellCanvas) scaleY() float64 {
	return float64(c.screen.Height()) / c.worldH
}

// Clear blanks the screen.
func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

// CellRect converts a world rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (c *CellCanvas) CellRect(r RectF) Rect {
	sx, sy := c.scaleX(), c.scaleY()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect paints the covered cells with block characters.
func (c *CellCanvas) FillRect(r RectF, col Color) {
	c.screen.DrawRect(c.CellRect(r), BlockRune, col)
}

// DrawText places the label on the row its top edge falls in.
// Labels are kept on screen horizontally so right-aligned HUD text stays visible.
func (c *CellCanvas) DrawText(l Label) {
	n := utf8.RuneCountInString(l.Text)
	row := Clamp(int(l.Y*c.scaleY()), 0, Max(c.screen.Height()-1, 0))
	anchor := int(math.Round(l.X * c.scaleX()))

	var col int
	switch l.Align {
	case AlignRight:
		col = anchor - n
	case AlignCenter:
		col = anchor - n/2
	default:
		col = anchor
	}
	col = Clamp(col, 0, Max(c.screen.Width()-n, 0))

	c.screen.DrawText(col, row, l.Text, l.Color)
}
