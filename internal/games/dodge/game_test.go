package dodge

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dodge-blocks/internal/config"
	"github.com/vovakirdan/dodge-blocks/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T, cfg config.DodgeConfig) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: t0}
	g := New(cfg, WithClock(clock.Now))
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 42})
	return g, clock
}

func press(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

// parkFallers moves both fallers to the top right, out of the player's way.
func parkFallers(g *Game) {
	g.session.Block.X, g.session.Block.Y = 600, 0
	g.session.Obstacle.X, g.session.Obstacle.Y = 700, 0
}

func TestResetStartsInMenu(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())

	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Equal(t, "dodge", g.ID())
	assert.Equal(t, "Dodge the Blocks", g.Title())

	st := g.State()
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 1, st.Level)
	assert.False(t, st.GameOver)

	p := g.Session().Player
	assert.Equal(t, 375, p.X)
	assert.Equal(t, 540, p.Y)
}

func TestMenuSelectsMode(t *testing.T) {
	tests := []struct {
		key  core.Key
		mode Mode
	}{
		{core.KeyTimeTrial, ModeTimeTrial},
		{core.KeyEndless, ModeEndless},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			g, clock := newTestGame(t, config.DefaultDodgeConfig())
			clock.Advance(5 * time.Second)

			res := g.Step(press(tt.key))

			assert.True(t, res.Events.Has(core.EventStarted))
			assert.Equal(t, PhaseGameplay, g.Phase())
			assert.Equal(t, tt.mode, g.Mode())
			assert.Equal(t, clock.Now(), g.Session().Clock.Start)
		})
	}
}

func TestMenuIgnoresOtherKeys(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())

	g.Step(press(core.KeyRestart, core.KeyMenu))

	assert.Equal(t, PhaseMenu, g.Phase())
}

// Movement keys in the menu never move the player.
func TestMenuIgnoresMovement(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	before := g.Session()

	for range 10 {
		g.Step(press(core.KeyLeft, core.KeyUp))
	}

	after := g.Session()
	assert.Equal(t, before.Player, after.Player)
	assert.Equal(t, before.Block, after.Block)
	assert.Equal(t, before.Obstacle, after.Obstacle)
}

func TestPlayerMovesWhileHeld(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	parkFallers(g)

	g.Step(press(core.KeyLeft))
	assert.Equal(t, 370, g.Session().Player.X)

	g.Step(core.NewInputFrame())
	assert.Equal(t, 365, g.Session().Player.X, "held key keeps moving")

	in := core.NewInputFrame()
	in.Release(core.KeyLeft)
	g.Step(in)
	assert.Equal(t, 365, g.Session().Player.X, "release stops movement")
}

func TestPlayerClampedToWorld(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	g.Step(press(core.KeyLeft, core.KeyUp))

	for range 200 {
		parkFallers(g)
		g.Step(core.NewInputFrame())
		p := g.Session().Player
		require.GreaterOrEqual(t, p.X, 0)
		require.GreaterOrEqual(t, p.Y, 0)
	}
	p := g.Session().Player
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 0, p.Y)
}

func TestPlayerClampedBottomRight(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	g, _ := newTestGame(t, cfg)
	g.Step(press(core.KeyEndless))
	g.Step(press(core.KeyRight, core.KeyDown))

	for range 200 {
		parkFallers(g)
		g.Step(core.NewInputFrame())
	}
	p := g.Session().Player
	assert.Equal(t, cfg.World.Width-cfg.Player.Width, p.X)
	assert.Equal(t, cfg.World.Height-cfg.Player.Height, p.Y)
}

func TestRecycleScoresAndRespawns(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))

	// Keep the player at the left edge, away from the fallers.
	g.session.Player.X, g.session.Player.Y = 0, 300
	g.session.Block.X, g.session.Block.Y = 400, 599
	g.session.Obstacle.X, g.session.Obstacle.Y = 600, 100

	res := g.Step(core.NewInputFrame())

	assert.True(t, res.Events.Has(core.EventRecycled))
	assert.Equal(t, 1, res.State.Score)
	s := g.Session()
	assert.Zero(t, s.Block.Y)
	assert.GreaterOrEqual(t, s.Block.X, 0)
	assert.LessOrEqual(t, s.Block.X, 750)
	assert.InDelta(t, 103.0, s.Obstacle.Y, 1e-9)
}

func TestFallerOnBottomEdgeIsNotRecycled(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	g.session.Player.X, g.session.Player.Y = 0, 300
	g.session.Block.X, g.session.Block.Y = 400, 598
	g.session.Obstacle.X, g.session.Obstacle.Y = 600, 100

	res := g.Step(core.NewInputFrame())

	assert.False(t, res.Events.Has(core.EventRecycled))
	assert.InDelta(t, 600.0, g.Session().Block.Y, 1e-9)
}

// Scenario: score 4, threshold 5, one recycle in Endless reaches level 2.
func TestEndlessLevelUp(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	g.session.Difficulty.Score = 4
	g.session.Player.X, g.session.Player.Y = 0, 300
	g.session.Block.X, g.session.Block.Y = 400, 599
	g.session.Obstacle.X, g.session.Obstacle.Y = 600, 100

	res := g.Step(core.NewInputFrame())

	assert.True(t, res.Events.Has(core.EventLevelUp))
	assert.Equal(t, 5, res.State.Score)
	assert.Equal(t, 2, res.State.Level)
	assert.InDelta(t, 2.5, g.Session().Block.Speed, 1e-9)
	assert.InDelta(t, 3.0, g.Session().Obstacle.Speed, 1e-9, "obstacle speed never scales")
}

func TestTimeTrialNeverLevelsUp(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyTimeTrial))
	g.session.Difficulty.Score = 4
	g.session.Player.X, g.session.Player.Y = 0, 300
	g.session.Block.X, g.session.Block.Y = 400, 599

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 5, res.State.Score)
	assert.Equal(t, 1, res.State.Level)
	assert.InDelta(t, 2.0, g.Session().Block.Speed, 1e-9)
}

// Both fallers crossing the bottom edge in one tick evaluate the threshold twice.
func TestSimultaneousRecycleLevelsUpTwice(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Difficulty.LevelThreshold = 1
	g, _ := newTestGame(t, cfg)
	g.Step(press(core.KeyEndless))
	g.session.Player.X, g.session.Player.Y = 0, 300
	g.session.Block.X, g.session.Block.Y = 400, 599
	g.session.Obstacle.X, g.session.Obstacle.Y = 600, 598

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 2, res.State.Score)
	assert.Equal(t, 3, res.State.Level)
	assert.InDelta(t, 3.0, g.Session().Block.Speed, 1e-9)
	assert.InDelta(t, 3.0, g.Session().Obstacle.Speed, 1e-9)
}

func TestCollisionEndsSession(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	p := g.Session().Player
	g.session.Block.X, g.session.Block.Y = p.X, float64(p.Y)-10
	g.session.Obstacle.X, g.session.Obstacle.Y = 0, 0

	res := g.Step(core.NewInputFrame())

	assert.True(t, res.Events.Has(core.EventGameOver))
	assert.True(t, res.State.GameOver)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, EndCollision.String(), g.Summary().Reason)
}

func TestObstacleCollisionEndsSession(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyTimeTrial))
	p := g.Session().Player
	g.session.Block.X, g.session.Block.Y = 0, 0
	g.session.Obstacle.X, g.session.Obstacle.Y = p.X+40, float64(p.Y)-10

	g.Step(core.NewInputFrame())

	assert.Equal(t, PhaseGameOver, g.Phase())
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	p := g.Session().Player
	// After moving 2 units the block's bottom edge lands exactly on the player's top edge.
	g.session.Block.X, g.session.Block.Y = p.X, float64(p.Y)-52
	g.session.Obstacle.X, g.session.Obstacle.Y = 0, 0

	g.Step(core.NewInputFrame())

	assert.Equal(t, PhaseGameplay, g.Phase())
}

// Scenario: Time Trial of 30s started at T ends at T+31.
func TestTimeTrialExpires(t *testing.T) {
	g, clock := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyTimeTrial))
	parkFallers(g)
	assert.Equal(t, 30, g.Remaining())

	clock.Advance(29*time.Second + 900*time.Millisecond)
	parkFallers(g)
	g.Step(core.NewInputFrame())
	assert.Equal(t, PhaseGameplay, g.Phase())
	assert.Equal(t, 1, g.Remaining())

	clock.Advance(1100 * time.Millisecond)
	parkFallers(g)
	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 0, g.Remaining())
	assert.True(t, res.Events.Has(core.EventGameOver))
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, EndTimeUp.String(), g.Summary().Reason)
	assert.Equal(t, 31*time.Second, g.Summary().Duration)
}

func TestEndlessNeverExpires(t *testing.T) {
	g, clock := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	clock.Advance(time.Hour)
	parkFallers(g)

	g.Step(core.NewInputFrame())

	assert.Equal(t, PhaseGameplay, g.Phase())
}

// Scenario: GameOver with score 10 over highscore 8, then restart.
func TestHighscoreSurvivesRestart(t *testing.T) {
	clock := &fakeClock{now: t0}
	hs := core.NewHighscore(8)
	g := New(config.DefaultDodgeConfig(), WithClock(clock.Now), WithHighscore(hs))
	g.Reset(core.RuntimeConfig{Seed: 7})
	g.Step(press(core.KeyEndless))

	g.session.Difficulty.Score = 10
	p := g.Session().Player
	g.session.Block.X, g.session.Block.Y = p.X, float64(p.Y)
	g.Step(core.NewInputFrame())
	require.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 10, hs.Value())
	assert.Equal(t, 10, g.State().Highscore)

	clock.Advance(3 * time.Second)
	res := g.Step(press(core.KeyRestart))

	assert.True(t, res.Events.Has(core.EventStarted))
	assert.Equal(t, PhaseGameplay, g.Phase())
	assert.Equal(t, ModeEndless, g.Mode())
	assert.Equal(t, 1, g.State().Level)
	assert.Equal(t, 10, g.State().Highscore)
	assert.Equal(t, clock.Now(), g.Session().Clock.Start)
	assert.InDelta(t, 2.0, g.Session().Block.Speed, 1e-9)
}

func TestGameOverMenuResetsSession(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	g.session.Difficulty.Score = 3
	p := g.Session().Player
	g.session.Block.X, g.session.Block.Y = p.X, float64(p.Y)
	g.Step(core.NewInputFrame())
	require.Equal(t, PhaseGameOver, g.Phase())

	res := g.Step(press(core.KeyMenu))

	assert.True(t, res.Events.Has(core.EventMenu))
	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, 3, g.State().Highscore)
}

func TestGameOverFreezesWorld(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(press(core.KeyEndless))
	p := g.Session().Player
	g.session.Block.X, g.session.Block.Y = p.X, float64(p.Y)
	g.Step(core.NewInputFrame())
	frozen := g.Session()

	g.Step(press(core.KeyLeft, core.KeyTimeTrial))

	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, frozen.Player, g.Session().Player)
	assert.Equal(t, frozen.Block, g.Session().Block)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t, config.DefaultDodgeConfig())
		g.Step(press(core.KeyEndless))
		for i := range 600 {
			in := core.NewInputFrame()
			switch i % 120 {
			case 0:
				in.Press(core.KeyLeft)
			case 60:
				in.Release(core.KeyLeft)
				in.Press(core.KeyRight)
			case 119:
				in.Release(core.KeyRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestRespawnRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := Faller{W: 50, H: 50}
	for range 1000 {
		f.Respawn(rng, 800)
		require.GreaterOrEqual(t, f.X, 0)
		require.LessOrEqual(t, f.X, 750)
		require.Zero(t, f.Y)
	}
}

// Scenario: score 4 at threshold 5 in Endless levels up on the next recycle.
func TestDifficultyOnRecycled(t *testing.T) {
	rules := config.DifficultyConfig{LevelThreshold: 5, BlockSpeedIncrement: 0.5}

	d := NewDifficulty(rules, 2)
	d.Score = 4
	assert.True(t, d.OnRecycled(ModeEndless))
	assert.Equal(t, 5, d.Score)
	assert.Equal(t, 2, d.Level)
	assert.InDelta(t, 2.5, d.BlockSpeed, 1e-9)

	assert.False(t, d.OnRecycled(ModeEndless))
	assert.Equal(t, 2, d.Level)

	tt := NewDifficulty(rules, 2)
	tt.Score = 4
	assert.False(t, tt.OnRecycled(ModeTimeTrial))
	assert.Equal(t, 1, tt.Level)
}

func TestSessionClock(t *testing.T) {
	c := SessionClock{Start: t0}
	d := 30 * time.Second

	assert.Equal(t, 30, c.Remaining(t0, d))
	assert.Equal(t, 29, c.Remaining(t0.Add(1500*time.Millisecond), d))
	assert.Equal(t, 0, c.Remaining(t0.Add(31*time.Second), d))
	assert.False(t, ModeTimeTrial.Expired(c, t0.Add(29999*time.Millisecond), d))
	assert.True(t, ModeTimeTrial.Expired(c, t0.Add(30*time.Second), d))
	assert.False(t, ModeEndless.Expired(c, t0.Add(time.Hour), d))
}
