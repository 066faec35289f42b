package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// binding maps a physical key to a game key.
type binding struct {
	key  ebiten.Key
	game core.Key
}

// bindings lists every key the window reacts to, in polling order.
var bindings = []binding{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyA, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyD, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyW, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyS, core.KeyDown},
	{ebiten.KeyDigit1, core.KeyTimeTrial},
	{ebiten.KeyNumpad1, core.KeyTimeTrial},
	{ebiten.KeyDigit2, core.KeyEndless},
	{ebiten.KeyNumpad2, core.KeyEndless},
	{ebiten.KeyR, core.KeyRestart},
	{ebiten.KeyM, core.KeyMenu},
}

// quitKeys end the program.
var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// keySource reports key transitions of the current tick and which keys are down.
type keySource interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

// inpututilSource reads transitions from ebiten's input state.
type inpututilSource struct{}

func (inpututilSource) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (inpututilSource) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (inpututilSource) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }

// collectInput fills the frame with this tick's key transitions.
// Windows report real key-ups, so no hold tracking is needed. A game key is
// released only once none of its physical keys is down.
func collectInput(src keySource, frame *core.InputFrame) {
	for _, k := range quitKeys {
		if src.JustPressed(k) {
			frame.Quit = true
		}
	}
	released := make(map[core.Key]bool)
	for _, b := range bindings {
		if src.JustPressed(b.key) {
			frame.Press(b.game)
		}
		if src.JustReleased(b.key) && !released[b.game] && !stillHeld(src, b.game) {
			released[b.game] = true
			frame.Release(b.game)
		}
	}
}

// stillHeld reports whether any physical key bound to game is down.
func stillHeld(src keySource, game core.Key) bool {
	for _, b := range bindings {
		if b.game == game && src.Pressed(b.key) {
			return true
		}
	}
	return false
}
