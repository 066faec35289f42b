// Package driver is the per-frame glue shared by all frontends: it steps the
// game, reports transitions to the log, records finished sessions and fires
// sound cues.
package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-blocks/internal/core"
	"github.com/vovakirdan/dodge-blocks/internal/registry"
	"github.com/vovakirdan/dodge-blocks/internal/storage"
)

// Cues reacts to the events of a tick, usually with sound.
type Cues interface {
	Play(events core.Event)
}

// Driver runs one game for one player.
type Driver struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	cues   Cues
	player string
	state  core.GameState
}

// Option customizes a Driver.
type Option func(*Driver)

// WithStore records every finished session in the session log.
func WithStore(s *storage.Store) Option {
	return func(d *Driver) {
		d.store = s
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithCues sets the sound cues.
func WithCues(c Cues) Option {
	return func(d *Driver) {
		d.cues = c
	}
}

// WithPlayer names the player in the session log.
func WithPlayer(name string) Option {
	return func(d *Driver) {
		if name != "" {
			d.player = name
		}
	}
}

// New creates a driver for the game.
func New(game registry.Game, opts ...Option) *Driver {
	d := &Driver{
		game:   game,
		logger: log.New(io.Discard),
		player: "local",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reset starts the game. A zero seed is replaced by a time-based one.
func (d *Driver) Reset(rt core.RuntimeConfig) core.RuntimeConfig {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	d.game.Reset(rt)
	d.state = d.game.State()
	d.logger.Debug("game reset", "game", d.game.ID(), "seed", rt.Seed)
	return rt
}

// Tick runs exactly one simulation step with the frame's input.
func (d *Driver) Tick(in core.InputFrame) core.StepResult {
	prev := d.state
	res := d.game.Step(in)
	d.state = res.State

	if res.State.Phase != prev.Phase {
		d.logger.Debug("state changed", "from", prev.Phase, "to", res.State.Phase, "mode", res.State.Mode)
	}
	if res.Events.Has(core.EventLevelUp) {
		d.logger.Debug("level up", "level", res.State.Level, "score", res.State.Score)
	}
	if res.Events.Has(core.EventGameOver) {
		d.record()
	}
	if d.cues != nil && res.Events != 0 {
		d.cues.Play(res.Events)
	}

	return res
}

// record writes the finished session to the log. Storage failures only warn.
func (d *Driver) record() {
	sum := d.game.Summary()
	d.logger.Info("session over",
		"player", d.player,
		"mode", sum.Mode,
		"score", sum.Score,
		"level", sum.Level,
		"highscore", d.state.Highscore,
		"reason", sum.Reason,
		"duration", sum.Duration.Round(time.Millisecond),
	)

	if d.store == nil {
		return
	}
	if _, err := d.store.SaveSession(storage.SessionRecord{
		GameID:   d.game.ID(),
		Player:   d.player,
		Mode:     sum.Mode,
		Score:    sum.Score,
		Level:    sum.Level,
		Duration: sum.Duration,
		Reason:   sum.Reason,
	}); err != nil {
		d.logger.Warn("could not record session", "error", err)
	}
}

// Render draws the game onto the canvas.
func (d *Driver) Render(dst core.Canvas) {
	d.game.Render(dst)
}

// State returns the state after the last tick.
func (d *Driver) State() core.GameState {
	return d.state
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}
