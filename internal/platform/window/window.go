// Package window runs the game in an 800x600 desktop window with Ebitengine.
package window

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"

	"github.com/vovakirdan/dodge-blocks/internal/core"
	"github.com/vovakirdan/dodge-blocks/internal/platform/driver"
	"github.com/vovakirdan/dodge-blocks/internal/registry"
)

const audioSampleRate = 44100

func init() {
	registry.Register("window", func() registry.Frontend { return frontend{} })
}

// frontend plays in a desktop window.
type frontend struct{}

func (frontend) ID() string    { return "window" }
func (frontend) Title() string { return "Desktop window (Ebitengine, sound with --sound)" }

func (frontend) Run(ctx context.Context, env registry.Env) error {
	return Run(ctx, env)
}

// hitCues plays the jab sample when a session ends.
type hitCues struct {
	player *audio.Player
	logger *log.Logger
}

func (c hitCues) Play(events core.Event) {
	if !events.Has(core.EventGameOver) {
		return
	}
	if err := c.player.Rewind(); err != nil {
		c.logger.Warn("cannot rewind hit sound", "error", err)
		return
	}
	c.player.Play()
}

// newHitCues decodes the jab sample onto a new audio context.
func newHitCues(logger *log.Logger) (hitCues, error) {
	ctx := audio.NewContext(audioSampleRate)
	jab, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return hitCues{}, fmt.Errorf("window: cannot decode hit sound: %w", err)
	}
	p, err := ctx.NewPlayer(jab)
	if err != nil {
		return hitCues{}, fmt.Errorf("window: cannot create audio player: %w", err)
	}
	return hitCues{player: p, logger: logger}, nil
}

// Game adapts the driver to ebiten.Game.
type Game struct {
	ctx    context.Context
	driver *driver.Driver
	canvas *Canvas
	input  keySource
	frame  core.InputFrame
	width  int
	height int
}

// Update runs one simulation tick. ebiten calls it at the configured TPS.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	collectInput(g.input, &g.frame)
	if g.frame.Quit {
		return ebiten.Termination
	}

	g.driver.Tick(g.frame)
	g.frame.Clear()
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.driver.Render(g.canvas)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and plays until it is closed.
func Run(ctx context.Context, env registry.Env) error {
	faces, err := LoadFaces()
	if err != nil {
		return err
	}

	opts := []driver.Option{
		driver.WithStore(env.Store),
		driver.WithLogger(env.Logger),
	}
	if env.Sound {
		cues, cuesErr := newHitCues(env.Logger)
		if cuesErr != nil {
			env.Logger.Warn("sound disabled", "error", cuesErr)
		} else {
			opts = append(opts, driver.WithCues(cues))
		}
	}

	d := driver.New(env.NewGame(core.NewHighscore(0)), opts...)
	rt := env.Runtime
	rt.ScreenW, rt.ScreenH = env.Config.World.Width, env.Config.World.Height
	rt = d.Reset(rt)

	g := &Game{
		ctx:    ctx,
		driver: d,
		canvas: NewCanvas(faces),
		input:  inpututilSource{},
		frame:  core.NewInputFrame(),
		width:  env.Config.World.Width,
		height: env.Config.World.Height,
	}

	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(d.Game().Title())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
