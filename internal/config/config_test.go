package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultClimbConfig(t *testing.T) {
	cfg := DefaultClimbConfig()

	if cfg.Wall.MinSegments != 6 {
		t.Errorf("MinSegments = %d, expected 6", cfg.Wall.MinSegments)
	}
	if cfg.Obstacles.MinProb != 0.55 || cfg.Obstacles.MaxProb != 0.92 || cfg.Obstacles.RampScore != 80 {
		t.Errorf("unexpected obstacle defaults: %+v", cfg.Obstacles)
	}
	if cfg.Stamina.BaseDecay != 0.01 || cfg.Stamina.TimeGain != 0.05 {
		t.Errorf("unexpected stamina defaults: %+v", cfg.Stamina)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML is the canonical default; the hardcoded fallback
	// must agree with it.
	cfg, err := LoadClimb("")
	if err != nil {
		t.Fatalf("LoadClimb() failed: %v", err)
	}

	if cfg.Obstacles != DefaultClimbConfig().Obstacles {
		t.Errorf("embedded obstacle config %+v differs from hardcoded default %+v",
			cfg.Obstacles, DefaultClimbConfig().Obstacles)
	}
	if cfg.Input.LockMs != DefaultClimbConfig().Input.LockMs {
		t.Errorf("embedded lock_ms %d differs from hardcoded default %d",
			cfg.Input.LockMs, DefaultClimbConfig().Input.LockMs)
	}
}

func TestLoadClimbCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climb.yaml")
	content := []byte(`
wall:
  min_segments: 9
stamina:
  base_decay: 0.02
  time_gain: 0.1
obstacles:
  min_prob: 0.3
  max_prob: 0.6
  ramp_score: 40
input:
  lock_ms: 200
frame:
  max_delta_ms: 100
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadClimb(path)
	if err != nil {
		t.Fatalf("LoadClimb(%s) failed: %v", path, err)
	}

	if cfg.Wall.MinSegments != 9 {
		t.Errorf("MinSegments = %d, expected 9", cfg.Wall.MinSegments)
	}
	if cfg.Obstacles.RampScore != 40 {
		t.Errorf("RampScore = %d, expected 40", cfg.Obstacles.RampScore)
	}
	if cfg.Input.LockMs != 200 {
		t.Errorf("LockMs = %d, expected 200", cfg.Input.LockMs)
	}
}

func TestLoadClimbMissingCustomPath(t *testing.T) {
	if _, err := LoadClimb(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestUnitConversions(t *testing.T) {
	in := InputConfig{LockMs: 150}
	if got := in.Lock(); got != 0.15 {
		t.Errorf("Lock() = %v, expected 0.15", got)
	}

	fr := FrameConfig{MaxDeltaMs: 250}
	if got := fr.MaxDelta(); got != 0.25 {
		t.Errorf("MaxDelta() = %v, expected 0.25", got)
	}
}

func TestApplyClimbPreset(t *testing.T) {
	tests := []struct {
		name   string
		preset DifficultyPreset
		check  func(t *testing.T, cfg ClimbConfig)
	}{
		{
			name:   "easy lowers the curve",
			preset: DifficultyEasy,
			check: func(t *testing.T, cfg ClimbConfig) {
				def := DefaultClimbConfig()
				if cfg.Obstacles.MinProb >= def.Obstacles.MinProb {
					t.Errorf("easy MinProb = %v, expected below default %v", cfg.Obstacles.MinProb, def.Obstacles.MinProb)
				}
				if cfg.Stamina.BaseDecay >= def.Stamina.BaseDecay {
					t.Errorf("easy BaseDecay = %v, expected below default %v", cfg.Stamina.BaseDecay, def.Stamina.BaseDecay)
				}
			},
		},
		{
			name:   "normal keeps defaults",
			preset: DifficultyNormal,
			check: func(t *testing.T, cfg ClimbConfig) {
				if cfg != DefaultClimbConfig() {
					t.Errorf("normal preset changed config: %+v", cfg)
				}
			},
		},
		{
			name:   "hard raises the curve",
			preset: DifficultyHard,
			check: func(t *testing.T, cfg ClimbConfig) {
				def := DefaultClimbConfig()
				if cfg.Obstacles.MinProb <= def.Obstacles.MinProb {
					t.Errorf("hard MinProb = %v, expected above default %v", cfg.Obstacles.MinProb, def.Obstacles.MinProb)
				}
				if cfg.Stamina.BaseDecay <= def.Stamina.BaseDecay {
					t.Errorf("hard BaseDecay = %v, expected above default %v", cfg.Stamina.BaseDecay, def.Stamina.BaseDecay)
				}
			},
		},
		{
			name:   "fixed pins the probability",
			preset: DifficultyFixed,
			check: func(t *testing.T, cfg ClimbConfig) {
				if cfg.Obstacles.MaxProb != cfg.Obstacles.MinProb {
					t.Errorf("fixed preset left a ramp: min=%v max=%v", cfg.Obstacles.MinProb, cfg.Obstacles.MaxProb)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClimbConfig()
			ApplyClimbPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}
