package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default Dodge the Blocks configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			Speed:        5,
			BottomMargin: 10,
		},
		Block: FallerConfig{
			Width:  50,
			Height: 50,
			Speed:  2,
		},
		Obstacle: FallerConfig{
			Width:  50,
			Height: 50,
			Speed:  3,
		},
		Difficulty: DifficultyConfig{
			LevelThreshold:      5,
			BlockSpeedIncrement: 0.5,
		},
		Modes: ModesConfig{
			TimeTrialSeconds: 30,
		},
		Input: InputConfig{
			HoldMillis: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
