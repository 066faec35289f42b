package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// Font sizes in pixels.
const (
	largeFontSize  = 36
	normalFontSize = 18
)

// Faces holds one font face per text size.
type Faces map[core.TextSize]text.Face

// LoadFaces builds the arcade faces for normal and large text and the
// 7x13 bitmap face for small text.
func LoadFaces() (Faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return Faces{
		core.TextLarge:  &text.GoTextFace{Source: src, Size: largeFontSize},
		core.TextNormal: &text.GoTextFace{Source: src, Size: normalFontSize},
		core.TextSmall:  text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// face returns the face for a size, falling back to normal.
func (f Faces) face(size core.TextSize) text.Face {
	if face, ok := f[size]; ok {
		return face
	}
	return f[core.TextNormal]
}

// primaryAlign maps label alignment to text/v2 alignment.
func primaryAlign(a core.Align) text.Align {
	switch a {
	case core.AlignRight:
		return text.AlignEnd
	case core.AlignCenter:
		return text.AlignCenter
	default:
		return text.AlignStart
	}
}

// Canvas draws world coordinates 1:1 onto an ebiten image.
type Canvas struct {
	dst   *ebiten.Image
	faces Faces
}

// NewCanvas creates a canvas with the given faces. Call SetTarget before drawing.
func NewCanvas(faces Faces) *Canvas {
	return &Canvas{faces: faces}
}

// SetTarget sets the image the next frame is drawn onto.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the frame with black.
func (c *Canvas) Clear() {
	c.dst.Fill(color.Black)
}

// FillRect draws a solid rectangle.
func (c *Canvas) FillRect(r core.RectF, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

// DrawText draws a label with its top edge at l.Y.
func (c *Canvas) DrawText(l core.Label) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color.RGBA())
	op.PrimaryAlign = primaryAlign(l.Align)
	text.Draw(c.dst, l.Text, c.faces.face(l.Size), op)
}
