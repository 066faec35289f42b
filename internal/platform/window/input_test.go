package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// fakeKeys reports fixed transitions and held keys.
type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	down     map[ebiten.Key]bool
}

func (f fakeKeys) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f fakeKeys) JustReleased(k ebiten.Key) bool { return f.released[k] }
func (f fakeKeys) Pressed(k ebiten.Key) bool      { return f.down[k] }

func TestCollectInputPressAndRelease(t *testing.T) {
	src := fakeKeys{
		pressed:  map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyDigit2: true},
		released: map[ebiten.Key]bool{ebiten.KeyArrowUp: true},
	}
	frame := core.NewInputFrame()

	collectInput(src, &frame)

	assert.False(t, frame.Quit)
	assert.Equal(t, []core.KeyEvent{
		{Key: core.KeyLeft},
		{Key: core.KeyUp, Released: true},
		{Key: core.KeyEndless},
	}, frame.Events)
}

func TestCollectInputKeepsDirectionWhileAliasHeld(t *testing.T) {
	// A and ArrowLeft both held; ArrowLeft goes up.
	src := fakeKeys{
		released: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true},
		down:     map[ebiten.Key]bool{ebiten.KeyA: true},
	}
	frame := core.NewInputFrame()

	collectInput(src, &frame)

	assert.Empty(t, frame.Events, "Left must stay held while A is down")
}

func TestCollectInputReleasesDirectionOnce(t *testing.T) {
	src := fakeKeys{
		released: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyA: true},
	}
	frame := core.NewInputFrame()

	collectInput(src, &frame)

	assert.Equal(t, []core.KeyEvent{{Key: core.KeyLeft, Released: true}}, frame.Events)
}

func TestCollectInputQuit(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ} {
		frame := core.NewInputFrame()
		collectInput(fakeKeys{pressed: map[ebiten.Key]bool{k: true}}, &frame)
		assert.True(t, frame.Quit, "key %v should quit", k)
	}
}

func TestEveryGameKeyIsBound(t *testing.T) {
	bound := map[core.Key]bool{}
	for _, b := range bindings {
		bound[b.game] = true
	}
	for k := core.KeyLeft; k <= core.KeyMenu; k++ {
		assert.True(t, bound[k], "%v has no window binding", k)
	}
}

func TestPrimaryAlign(t *testing.T) {
	assert.Equal(t, primaryAlign(core.AlignLeft), primaryAlign(core.Align(99)))
	assert.NotEqual(t, primaryAlign(core.AlignLeft), primaryAlign(core.AlignRight))
	assert.NotEqual(t, primaryAlign(core.AlignCenter), primaryAlign(core.AlignRight))
}
