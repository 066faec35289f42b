package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge-blocks/internal/config"
	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// Session holds everything that belongs to one play-through.
// It is rebuilt from scratch on restart and on return to the menu.
type Session struct {
	Player     Player
	Block      Faller
	Obstacle   Faller
	Difficulty Difficulty
	Clock      SessionClock
}

// newSession builds a fresh session. The block and obstacle get random columns.
func newSession(cfg config.DodgeConfig, rng *rand.Rand, now time.Time) Session {
	return Session{
		Player:     newPlayer(cfg),
		Block:      newFaller(cfg.Block, core.ColorRed, rng, cfg.World.Width),
		Obstacle:   newFaller(cfg.Obstacle, core.ColorBlue, rng, cfg.World.Width),
		Difficulty: NewDifficulty(cfg.Difficulty, cfg.Block.Speed),
		Clock:      SessionClock{Start: now},
	}
}

// fallers returns the falling entities in update order (block first).
func (s *Session) fallers() []*Faller {
	return []*Faller{&s.Block, &s.Obstacle}
}

// tickEnv is the read-only context of one simulation tick.
type tickEnv struct {
	cfg  config.DodgeConfig
	mode Mode
	rng  *rand.Rand
	now  time.Time
}

// tickOutcome summarizes what happened during one tick.
type tickOutcome struct {
	Recycled int
	LevelUps int
	Collided bool
	Expired  bool
}

// advance runs one Gameplay tick on s and returns the updated session.
//
// Order: move and clamp the player, move every faller, recycle the ones below
// the bottom edge, then test every faller against the player with the same
// overlap predicate, then check the timer.
func advance(s Session, env tickEnv) (Session, tickOutcome) {
	var out tickOutcome
	w, h := env.cfg.World.Width, env.cfg.World.Height

	s.Player.Clamp(w, h)

	for _, f := range s.fallers() {
		f.Move()
	}

	for _, f := range s.fallers() {
		if !f.Below(h) {
			continue
		}
		f.Respawn(env.rng, w)
		out.Recycled++
		if s.Difficulty.OnRecycled(env.mode) {
			out.LevelUps++
		}
	}
	// Only the block follows the difficulty speed; the obstacle keeps its own.
	s.Block.Speed = s.Difficulty.BlockSpeed

	player := s.Player.Rect()
	for _, f := range s.fallers() {
		if player.Intersects(f.Rect()) {
			out.Collided = true
			break
		}
	}

	out.Expired = env.mode.Expired(s.Clock, env.now, env.cfg.Modes.TimeTrialDuration())
	return s, out
}
