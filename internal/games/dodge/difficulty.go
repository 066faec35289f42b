package dodge

import "github.com/vovakirdan/dodge-blocks/internal/config"

// Difficulty tracks score, level and the block speed of one session.
type Difficulty struct {
	Score      int
	Level      int
	BlockSpeed float64

	rules config.DifficultyConfig
}

// NewDifficulty starts a session at level 1 with the configured block speed.
func NewDifficulty(rules config.DifficultyConfig, blockSpeed float64) Difficulty {
	return Difficulty{
		Level:      1,
		BlockSpeed: blockSpeed,
		rules:      rules,
	}
}

// OnRecycled scores one recycled faller. In Endless mode every
// LevelThreshold-th point raises the level and the block speed.
// Returns true when the level went up.
//
// It runs once per recycled faller, so a tick that recycles the block and the
// obstacle together evaluates the threshold twice and can level up twice.
func (d *Difficulty) OnRecycled(mode Mode) bool {
	d.Score++
	if mode != ModeEndless || d.Score%d.rules.LevelThreshold != 0 {
		return false
	}
	d.Level++
	d.BlockSpeed += d.rules.BlockSpeedIncrement
	return true
}
