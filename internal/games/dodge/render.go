package dodge

import (
	"fmt"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// HUD layout in world units.
const (
	hudMargin   = 10 // Distance of HUD text from the window edges
	hudLineStep = 30 // Vertical distance between HUD lines
	overlayStep = 50 // Vertical distance between overlay lines
)

// Render draws the current phase onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	switch g.phase {
	case PhaseMenu:
		g.drawMenu(dst)
	case PhaseGameplay:
		g.drawPlayfield(dst)
		g.drawHUD(dst)
	case PhaseGameOver:
		g.drawGameOver(dst)
	}
}

// drawPlayfield draws the player and every faller.
func (g *Game) drawPlayfield(dst core.Canvas) {
	dst.FillRect(g.session.Player.Rect(), core.ColorWhite)
	for _, f := range g.session.fallers() {
		dst.FillRect(f.Rect(), f.Color)
	}
}

// drawHUD draws score and highscore on the left, level and countdown on the right.
func (g *Game) drawHUD(dst core.Canvas) {
	w := float64(g.cfg.World.Width)
	d := g.session.Difficulty

	dst.DrawText(core.Label{
		Text: fmt.Sprintf("Score: %d", d.Score), X: hudMargin, Y: hudMargin, Color: core.ColorWhite,
	})
	dst.DrawText(core.Label{
		Text: fmt.Sprintf("Highscore: %d", g.highscore.Value()), X: hudMargin, Y: hudMargin + hudLineStep,
		Size: core.TextSmall, Color: core.ColorWhite,
	})
	dst.DrawText(core.Label{
		Text: fmt.Sprintf("Level: %d", d.Level), X: w - hudMargin, Y: hudMargin,
		Align: core.AlignRight, Color: core.ColorWhite,
	})

	if g.mode == ModeTimeTrial {
		dst.DrawText(core.Label{
			Text: fmt.Sprintf("Time: %d", g.Remaining()), X: w - hudMargin, Y: hudMargin + hudLineStep,
			Align: core.AlignRight, Color: core.ColorWhite,
		})
	}
}

// drawMenu draws the title and the mode choices.
func (g *Game) drawMenu(dst core.Canvas) {
	g.drawOverlay(dst, "Dodge the Blocks", []string{
		"1 - Time Trial Mode",
		"2 - Endless Mode",
	})
}

// drawGameOver draws the result screen.
func (g *Game) drawGameOver(dst core.Canvas) {
	g.drawOverlay(dst, "Game Over", []string{
		"Press 'R' to Restart",
		"Press 'M' for Menu",
		fmt.Sprintf("Score: %d", g.session.Difficulty.Score),
		fmt.Sprintf("Highscore: %d", g.highscore.Value()),
	})
}

// drawOverlay draws a large centered title above centered lines.
func (g *Game) drawOverlay(dst core.Canvas, title string, lines []string) {
	cx := float64(g.cfg.World.Width) / 2
	cy := float64(g.cfg.World.Height) / 2

	dst.DrawText(core.Label{
		Text: title, X: cx, Y: cy - 2*overlayStep,
		Align: core.AlignCenter, Size: core.TextLarge, Color: core.ColorWhite,
	})
	for i, line := range lines {
		dst.DrawText(core.Label{
			Text: line, X: cx, Y: cy + 20 + float64(i*overlayStep),
			Align: core.AlignCenter, Color: core.ColorWhite,
		})
	}
}
