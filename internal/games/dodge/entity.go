package dodge

import (
	"math/rand"

	"github.com/vovakirdan/dodge-blocks/internal/config"
	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// Player is the rectangle steered by the user.
type Player struct {
	X, Y   int
	W, H   int
	VX, VY int // Each one of -speed, 0, +speed
}

// newPlayer places the player horizontally centered, just above the floor.
func newPlayer(cfg config.DodgeConfig) Player {
	return Player{
		X: (cfg.World.Width - cfg.Player.Width) / 2,
		Y: cfg.World.Height - cfg.Player.Height - cfg.Player.BottomMargin,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
}

// Clamp applies the velocity and keeps the player fully inside the world.
func (p *Player) Clamp(worldW, worldH int) {
	p.X = core.Clamp(p.X+p.VX, 0, worldW-p.W)
	p.Y = core.Clamp(p.Y+p.VY, 0, worldH-p.H)
}

// Rect returns the player's collision box.
func (p Player) Rect() core.RectF {
	return core.NewRect(p.X, p.Y, p.W, p.H).F()
}

// Faller is a rectangle dropping from the top edge at a constant speed.
// Blocks and obstacles share this shape and differ only in speed and color.
type Faller struct {
	X     int
	Y     float64
	W, H  int
	Speed float64
	Color core.Color
}

// newFaller creates a faller at a random column on the top edge.
func newFaller(fc config.FallerConfig, c core.Color, rng *rand.Rand, worldW int) Faller {
	f := Faller{W: fc.Width, H: fc.Height, Speed: fc.Speed, Color: c}
	f.Respawn(rng, worldW)
	return f
}

// Move advances the faller by its speed. Crossing the bottom edge is the caller's concern.
func (f *Faller) Move() {
	f.Y += f.Speed
}

// Respawn moves the faller back to the top edge at a column drawn uniformly
// from [0, worldW-W].
func (f *Faller) Respawn(rng *rand.Rand, worldW int) {
	f.X = rng.Intn(worldW - f.W + 1)
	f.Y = 0
}

// Below reports whether the faller has left the world through the bottom edge.
func (f Faller) Below(worldH int) bool {
	return f.Y > float64(worldH)
}

// Rect returns the faller's collision box.
func (f Faller) Rect() core.RectF {
	return core.NewRectF(float64(f.X), f.Y, float64(f.W), float64(f.H))
}
