package config

// SpawnRamp maps elapsed play time to the interval between hazard spawns.
// It is stateless.
type SpawnRamp struct {
	Easy     float64 // Interval at t = 0
	Hard     float64 // Floor interval
	Duration float64 // Seconds until Hard is reached
}

// Interval returns the spawn interval after elapsed seconds of play. It falls
// linearly from Easy to Hard over Duration and stays at Hard afterwards.
func (r SpawnRamp) Interval(elapsed float64) float64 {
	if elapsed >= r.Duration {
		return r.Hard
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return r.Easy - (elapsed/r.Duration)*(r.Easy-r.Hard)
}

// Level returns how far along the ramp elapsed is, in [0, 1].
func (r SpawnRamp) Level(elapsed float64) float64 {
	if r.Duration <= 0 {
		return 1
	}
	return clampF(elapsed/r.Duration, 0, 1)
}

func (r SpawnRamp) validate() error {
	if r.Duration <= 0 {
		return invalid("spawn.ramp_duration (%g) must be positive", r.Duration)
	}
	if r.Hard <= 0 {
		return invalid("spawn.hard_interval (%g) must be positive", r.Hard)
	}
	if r.Hard > r.Easy {
		return invalid("spawn.hard_interval (%g) exceeds spawn.easy_interval (%g)", r.Hard, r.Easy)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. An empty string keeps the
// config as loaded.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", invalid("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the spawn ramp according to a difficulty preset.
func ApplyPreset(cfg *IcefallConfig, preset DifficultyPreset) {
	s := &cfg.Spawn
	switch preset {
	case DifficultyEasy:
		s.RampDuration *= 1.5
		s.EasyInterval *= 1.25
	case DifficultyHard:
		// Start a third of the way down the ramp and get there sooner
		s.EasyInterval -= (s.EasyInterval - s.HardInterval) / 3
		s.RampDuration *= 0.75
	case DifficultyFixed:
		s.HardInterval = s.EasyInterval
	}
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
