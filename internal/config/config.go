// Package config provides YAML-based game configuration loading and
// validation for Dodge the Blocks.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// DodgeConfig contains all configuration for the Dodge the Blocks game.
type DodgeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Block      FallerConfig     `yaml:"block"`
	Obstacle   FallerConfig     `yaml:"obstacle"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Modes      ModesConfig      `yaml:"modes"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the playfield in world units (pixels of the original window).
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player rectangle.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Units per tick while a movement key is held
	BottomMargin int `yaml:"bottom_margin"` // Gap between the player's start position and the floor
}

// FallerConfig defines a falling rectangle (block or obstacle).
type FallerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per tick
}

// DifficultyConfig defines the Endless-mode leveling rules.
type DifficultyConfig struct {
	LevelThreshold      int     `yaml:"level_threshold"`       // Score points per level
	BlockSpeedIncrement float64 `yaml:"block_speed_increment"` // Added to the block speed on level-up
}

// ModesConfig defines per-mode rules.
type ModesConfig struct {
	TimeTrialSeconds int `yaml:"time_trial_seconds"`
}

// TimeTrialDuration returns the Time Trial length as a duration.
func (m ModesConfig) TimeTrialDuration() time.Duration {
	return time.Duration(m.TimeTrialSeconds) * time.Second
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // Terminals: a movement key is released after this long without repeats
}

// HoldTicks converts the hold window to whole ticks at the given rate (minimum 1).
func (i InputConfig) HoldTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := i.HoldMillis * tickRate / 1000
	if n < 1 {
		n = 1
	}
	return n
}

// Validate checks that every value is usable by the simulation.
func (c DodgeConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size %dx%d must be positive", c.World.Width, c.World.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size %dx%d must be positive", c.Player.Width, c.Player.Height)
	check(c.Player.Width <= c.World.Width && c.Player.Height <= c.World.Height, "player does not fit in the world")
	check(c.Player.Speed > 0, "player speed %d must be positive", c.Player.Speed)
	check(c.Player.BottomMargin >= 0 && c.Player.Height+c.Player.BottomMargin <= c.World.Height,
		"player bottom margin %d out of range", c.Player.BottomMargin)

	fallers := []struct {
		name string
		f    FallerConfig
	}{
		{"block", c.Block},
		{"obstacle", c.Obstacle},
	}
	for _, fc := range fallers {
		name, f := fc.name, fc.f
		check(f.Width > 0 && f.Height > 0, "%s size %dx%d must be positive", name, f.Width, f.Height)
		check(f.Width <= c.World.Width, "%s wider than the world", name)
		check(f.Speed > 0, "%s speed %v must be positive", name, f.Speed)
	}

	check(c.Difficulty.LevelThreshold > 0, "level threshold %d must be positive", c.Difficulty.LevelThreshold)
	check(c.Difficulty.BlockSpeedIncrement >= 0, "block speed increment %v must not be negative", c.Difficulty.BlockSpeedIncrement)
	check(c.Modes.TimeTrialSeconds > 0, "time trial duration %ds must be positive", c.Modes.TimeTrialSeconds)
	check(c.Input.HoldMillis >= 0, "input hold %dms must not be negative", c.Input.HoldMillis)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalid, errors.Join(problems...))
}
