// Package console runs the game on a raw tcell screen, with optional sound.
package console

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dodge-blocks/internal/core"
	"github.com/vovakirdan/dodge-blocks/internal/platform/driver"
	"github.com/vovakirdan/dodge-blocks/internal/platform/sound"
	"github.com/vovakirdan/dodge-blocks/internal/registry"
)

const hintText = "arrows/hjkl move  1 time trial  2 endless  r restart  m menu  q quit"

func init() {
	registry.Register("console", func() registry.Frontend { return frontend{} })
}

// frontend plays on a tcell screen.
type frontend struct{}

func (frontend) ID() string    { return "console" }
func (frontend) Title() string { return "Terminal (tcell, sound with --sound)" }

func (frontend) Run(ctx context.Context, env registry.Env) error {
	return Run(ctx, env)
}

// colors maps core.Color to tcell colors.
var colors = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorReset,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorRed:     tcell.ColorRed,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorGray:    tcell.ColorGray,
	core.ColorBlack:   tcell.ColorBlack,
}

// Console owns the tcell screen and the game driver.
type Console struct {
	screen   tcell.Screen
	driver   *driver.Driver
	cells    *core.Screen
	canvas   *core.CellCanvas
	hold     *core.HoldTracker
	frame    core.InputFrame
	tickRate int
}

// New creates a console on an initialized screen.
func New(screen tcell.Screen, env registry.Env, opts ...driver.Option) *Console {
	opts = append([]driver.Option{
		driver.WithStore(env.Store),
		driver.WithLogger(env.Logger),
	}, opts...)
	d := driver.New(env.NewGame(core.NewHighscore(0)), opts...)
	rt := d.Reset(env.Runtime)

	w, h := screen.Size()
	cells := core.NewScreen(max(w, 1), max(h-1, 1))

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	return &Console{
		screen:   screen,
		driver:   d,
		cells:    cells,
		canvas:   core.NewCellCanvas(cells, env.Config.World.Width, env.Config.World.Height),
		hold:     core.NewHoldTracker(env.Config.Input.HoldTicks(tickRate)),
		frame:    core.NewInputFrame(),
		tickRate: tickRate,
	}
}

// Driver returns the console's game driver.
func (c *Console) Driver() *driver.Driver {
	return c.driver
}

// HandleEvent processes one tcell event. Returns false when the user quits.
func (c *Console) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if k := mapKey(ev); k != core.KeyNone {
			c.hold.Press(k, &c.frame)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		c.cells.Resize(max(w, 1), max(h-1, 1))
		c.screen.Sync()
	}

	return true
}

// mapKey translates a tcell key event to a game key.
func mapKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return core.KeyLeft
		case 'l', 'd':
			return core.KeyRight
		case 'k', 'w':
			return core.KeyUp
		case 'j', 's':
			return core.KeyDown
		case '1':
			return core.KeyTimeTrial
		case '2':
			return core.KeyEndless
		case 'r', 'R':
			return core.KeyRestart
		case 'm', 'M':
			return core.KeyMenu
		}
	}
	return core.KeyNone
}

// Tick runs exactly one simulation step with the input gathered since the last one.
func (c *Console) Tick() core.StepResult {
	c.hold.Tick(&c.frame)
	res := c.driver.Tick(c.frame)
	c.frame.Clear()
	return res
}

// Draw renders the game and the key hint line to the tcell screen.
func (c *Console) Draw() {
	c.driver.Render(c.canvas)

	c.screen.Clear()
	for y := range c.cells.Height() {
		for x := range c.cells.Width() {
			cell := c.cells.GetCell(x, y)
			style := tcell.StyleDefault.Foreground(colors[cell.Color])
			c.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}

	hint := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(hintText) {
		if i >= c.cells.Width() {
			break
		}
		c.screen.SetContent(i, c.cells.Height(), r, nil, hint)
	}

	c.screen.Show()
}

// Loop ticks at the configured rate until the user quits or ctx is cancelled.
func (c *Console) Loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(c.tickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !c.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			c.Tick()
			c.Draw()
		}
	}
}

// Run plays the game on the terminal until the user quits.
func Run(ctx context.Context, env registry.Env) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()

	var opts []driver.Option
	if env.Sound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, game can run without sound
			env.Logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts = append(opts, driver.WithCues(player))
		}
	}

	c := New(screen, env, opts...)
	c.Draw()
	c.Loop(ctx)
	return nil
}
