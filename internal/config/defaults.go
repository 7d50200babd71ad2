package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the default climb configuration.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Wall: WallConfig{
			MinSegments: 6,
		},
		Stamina: StaminaConfig{
			BaseDecay: 0.01,
			TimeGain:  0.05,
		},
		Obstacles: ObstaclesConfig{
			MinProb:   0.55,
			MaxProb:   0.92,
			RampScore: 80,
		},
		Input: InputConfig{
			LockMs: 150,
		},
		Frame: FrameConfig{
			MaxDeltaMs: 250,
		},
	}
}
