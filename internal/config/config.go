// Package config provides YAML-based game configuration loading and
// difficulty presets for the climb platform.
package config

// ClimbConfig contains all tunable parameters for the climbing game.
type ClimbConfig struct {
	Wall      WallConfig      `yaml:"wall"`
	Stamina   StaminaConfig   `yaml:"stamina"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Input     InputConfig     `yaml:"input"`
	Frame     FrameConfig     `yaml:"frame"`
}

// WallConfig defines segment queue parameters.
type WallConfig struct {
	MinSegments int `yaml:"min_segments"` // Queue never holds fewer segments
}

// StaminaConfig defines the time-bar economy.
type StaminaConfig struct {
	BaseDecay float64 `yaml:"base_decay"` // Stamina fraction drained per second
	TimeGain  float64 `yaml:"time_gain"`  // Stamina fraction refilled per accepted move
}

// ObstaclesConfig defines the obstacle probability ramp.
type ObstaclesConfig struct {
	MinProb   float64 `yaml:"min_prob"`   // Spawn probability at score 0
	MaxProb   float64 `yaml:"max_prob"`   // Spawn probability at and past ramp_score
	RampScore int     `yaml:"ramp_score"` // Score at which max_prob is reached
}

// InputConfig defines the input gate cooldown.
type InputConfig struct {
	LockMs int `yaml:"lock_ms"` // Cooldown after a processed move, milliseconds
}

// Lock returns the cooldown window in seconds.
func (c InputConfig) Lock() float64 {
	return float64(c.LockMs) / 1000.0
}

// FrameConfig bounds per-frame simulation time.
type FrameConfig struct {
	MaxDeltaMs int `yaml:"max_delta_ms"` // Upper bound on a single frame delta
}

// MaxDelta returns the frame delta cap in seconds.
func (c FrameConfig) MaxDelta() float64 {
	return float64(c.MaxDeltaMs) / 1000.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyClimbPreset modifies the config based on a difficulty preset.
// The fixed preset pins the obstacle probability at its floor so the wall
// never ramps; the others shift the curve and the stamina economy.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MinProb = 0.40
		cfg.Obstacles.MaxProb = 0.80
		cfg.Stamina.BaseDecay = 0.008
		cfg.Stamina.TimeGain = 0.06
	case DifficultyNormal:
		// Config defaults are the normal preset.
	case DifficultyHard:
		cfg.Obstacles.MinProb = 0.65
		cfg.Obstacles.MaxProb = 0.95
		cfg.Obstacles.RampScore = 50
		cfg.Stamina.BaseDecay = 0.014
		cfg.Stamina.TimeGain = 0.04
	case DifficultyFixed:
		cfg.Obstacles.MaxProb = cfg.Obstacles.MinProb
	}
}
