// Package dodge implements Dodge the Blocks: the player steers a rectangle
// around blocks falling from the top of the screen. Time Trial lasts a fixed
// number of seconds; Endless speeds the blocks up every few points.
package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge-blocks/internal/config"
	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// Phase is the state machine state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseGameplay
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseGameplay:
		return "Gameplay"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EndReason tells why a session ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndCollision
	EndTimeUp
)

// String returns a short name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// Game is the Dodge the Blocks state machine.
type Game struct {
	cfg       config.DodgeConfig
	runtime   core.RuntimeConfig
	phase     Phase
	mode      Mode
	session   Session
	highscore *core.Highscore
	controls  controls
	rng       *rand.Rand
	now       func() time.Time
	tickCount int
	summary   core.SessionSummary
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for the Time Trial countdown.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithHighscore shares a process-wide highscore with the game.
func WithHighscore(h *core.Highscore) Option {
	return func(g *Game) {
		g.highscore = h
	}
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.DodgeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		now:      time.Now,
		controls: newControls(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.highscore == nil {
		g.highscore = core.NewHighscore(0)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Blocks"
}

// Reset puts the game in the menu with a fresh session.
// The RNG is seeded here and never again; the highscore survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.phase = PhaseMenu
	g.mode = ModeTimeTrial
	g.controls = newControls()
	g.tickCount = 0
	g.summary = core.SessionSummary{}
	g.session = newSession(g.cfg, g.rng, g.now())
}

// Step handles this frame's key events in order, then advances the
// simulation by one tick if a session is running.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events core.Event

	for _, ev := range in.Events {
		if ev.Key.IsMovement() {
			g.controls.apply(ev)
			continue
		}
		if !ev.Released {
			events |= g.handleKey(ev.Key)
		}
	}

	if g.phase == PhaseGameplay {
		events |= g.tick()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleKey applies an action key to the state machine.
func (g *Game) handleKey(k core.Key) core.Event {
	switch g.phase {
	case PhaseMenu:
		switch k {
		case core.KeyTimeTrial:
			return g.start(ModeTimeTrial)
		case core.KeyEndless:
			return g.start(ModeEndless)
		}
	case PhaseGameOver:
		switch k {
		case core.KeyRestart:
			g.session = newSession(g.cfg, g.rng, g.now())
			return g.start(g.mode)
		case core.KeyMenu:
			g.session = newSession(g.cfg, g.rng, g.now())
			g.phase = PhaseMenu
			return core.EventMenu
		}
	}
	return 0
}

// start enters Gameplay in the given mode and restarts the clock.
func (g *Game) start(mode Mode) core.Event {
	g.mode = mode
	g.session.Clock = SessionClock{Start: g.now()}
	g.summary = core.SessionSummary{}
	g.phase = PhaseGameplay
	return core.EventStarted
}

// tick advances the running session by one step.
func (g *Game) tick() core.Event {
	var events core.Event
	g.tickCount++

	g.session.Player.VX, g.session.Player.VY = g.controls.velocity(g.cfg.Player.Speed)

	now := g.now()
	next, out := advance(g.session, tickEnv{
		cfg:  g.cfg,
		mode: g.mode,
		rng:  g.rng,
		now:  now,
	})
	g.session = next

	if out.Recycled > 0 {
		events |= core.EventRecycled
	}
	if out.LevelUps > 0 {
		events |= core.EventLevelUp
	}

	switch {
	case out.Collided:
		g.gameOver(EndCollision, now)
		events |= core.EventGameOver
	case out.Expired:
		g.gameOver(EndTimeUp, now)
		events |= core.EventGameOver
	}
	return events
}

// gameOver enters GameOver and folds the score into the highscore.
func (g *Game) gameOver(reason EndReason, now time.Time) {
	g.phase = PhaseGameOver
	g.highscore.Observe(g.session.Difficulty.Score)
	g.summary = core.SessionSummary{
		Mode:     g.mode.String(),
		Score:    g.session.Difficulty.Score,
		Level:    g.session.Difficulty.Level,
		Duration: g.session.Clock.Elapsed(now),
		Reason:   reason.String(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Difficulty.Score,
		Level:     g.session.Difficulty.Level,
		Highscore: g.highscore.Value(),
		Phase:     g.phase.String(),
		Mode:      g.mode.String(),
		GameOver:  g.phase == PhaseGameOver,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Mode returns the last selected mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Session returns a copy of the running session.
func (g *Game) Session() Session {
	return g.session
}

// Summary returns the result of the last finished session.
// It is zero until a session has ended.
func (g *Game) Summary() core.SessionSummary {
	return g.summary
}

// Highscore returns the best score of this process.
func (g *Game) Highscore() int {
	return g.highscore.Value()
}

// Remaining returns the whole seconds left in a Time Trial.
func (g *Game) Remaining() int {
	return g.session.Clock.Remaining(g.now(), g.cfg.Modes.TimeTrialDuration())
}
