// Package config provides YAML-based game configuration loading and
// difficulty management for icefall.
package config

import (
	"errors"
	"fmt"
)

// IcefallConfig contains all tunables for the game.
type IcefallConfig struct {
	Field                FieldConfig  `yaml:"field"`
	Zones                ZoneConfig   `yaml:"zones"`
	Trail                TrailConfig  `yaml:"trail"`
	Spawn                SpawnConfig  `yaml:"spawn"`
	Hazard               HazardConfig `yaml:"hazard"`
	Player               PlayerConfig `yaml:"player"`
	Modes                ModesConfig  `yaml:"modes"`
	Milestones           []float64    `yaml:"milestones"`             // Seconds survived that trigger a celebration
	TurboNoticeThreshold float64      `yaml:"turbo_notice_threshold"` // Score above which turbo mode is advertised
}

// FieldConfig is the playfield in world units. Y grows upwards.
type FieldConfig struct {
	MinX    float64 `yaml:"min_x"`
	MaxX    float64 `yaml:"max_x"`
	TopY    float64 `yaml:"top_y"`
	BottomY float64 `yaml:"bottom_y"`
}

// ZoneConfig splits the field into left, middle and right thirds for
// first-in-trail placement.
type ZoneConfig struct {
	LeftMinX   float64 `yaml:"left_min_x"`
	LeftMaxX   float64 `yaml:"left_max_x"`
	MidMinX    float64 `yaml:"mid_min_x"`
	MidMaxX    float64 `yaml:"mid_max_x"`
	RightMinX  float64 `yaml:"right_min_x"`
	RightMaxX  float64 `yaml:"right_max_x"`
	PlayerBias float64 `yaml:"player_bias"` // Probability a trail starts in the player's zone
}

// TrailConfig controls hazard clustering.
type TrailConfig struct {
	MinLength int     `yaml:"min_length"` // Inclusive
	MaxLength int     `yaml:"max_length"` // Exclusive, unless equal to MinLength
	MinOffset float64 `yaml:"min_offset"` // Horizontal offset from the previous hazard
	MaxOffset float64 `yaml:"max_offset"`
}

// SpawnConfig defines the spawn cadence ramp.
type SpawnConfig struct {
	EasyInterval float64 `yaml:"easy_interval"` // Seconds between spawns at the start
	HardInterval float64 `yaml:"hard_interval"` // Fastest cadence
	RampDuration float64 `yaml:"ramp_duration"` // Seconds until the hard interval is reached
	Y            float64 `yaml:"y"`             // Spawn height
}

// HazardConfig describes a single falling icicle.
type HazardConfig struct {
	Speed  float64 `yaml:"speed"`   // World units per second, downwards
	FloorY float64 `yaml:"floor_y"` // Hazards below this height are removed
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig describes the player's horizontal track.
type PlayerConfig struct {
	Y    float64 `yaml:"y"`
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	Step float64 `yaml:"step"` // Distance moved per left/right action
}

// ModesConfig holds the two rulesets.
type ModesConfig struct {
	Normal ModeProfile `yaml:"normal"`
	Turbo  ModeProfile `yaml:"turbo"`
}

// ModeProfile is one ruleset. The normal and turbo profiles differ only in
// these values.
type ModeProfile struct {
	MusicPitch float64        `yaml:"music_pitch"`
	TimeScale  float64        `yaml:"time_scale"`
	DeathTime  float64        `yaml:"death_time"` // Seconds of scaled time before the post-round screen
	Trail      string         `yaml:"trail"`      // Visual trail behind the player
	Hitboxes   []HitboxConfig `yaml:"hitboxes"`
}

// HitboxConfig is a collider relative to the player position.
type HitboxConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Profile returns the ruleset for the given mode.
func (c *IcefallConfig) Profile(turbo bool) ModeProfile {
	if turbo {
		return c.Modes.Turbo
	}
	return c.Modes.Normal
}

// Ramp returns the difficulty ramp described by the spawn section.
func (c *IcefallConfig) Ramp() SpawnRamp {
	return SpawnRamp{
		Easy:     c.Spawn.EasyInterval,
		Hard:     c.Spawn.HardInterval,
		Duration: c.Spawn.RampDuration,
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the configuration for inconsistencies. Bad values are a
// configuration error and are reported, never clamped.
func (c *IcefallConfig) Validate() error {
	f, z := c.Field, c.Zones

	if f.MinX >= f.MaxX {
		return invalid("field.min_x (%g) must be below field.max_x (%g)", f.MinX, f.MaxX)
	}
	if f.BottomY >= f.TopY {
		return invalid("field.bottom_y (%g) must be below field.top_y (%g)", f.BottomY, f.TopY)
	}

	if z.LeftMinX < f.MinX || z.RightMaxX > f.MaxX {
		return invalid("zones must lie within the field [%g, %g]", f.MinX, f.MaxX)
	}
	if !(z.LeftMinX < z.LeftMaxX && z.LeftMaxX < z.RightMinX && z.RightMinX < z.RightMaxX) {
		return invalid("zones must satisfy left_min_x < left_max_x < right_min_x < right_max_x")
	}
	if !(z.LeftMinX < z.MidMinX && z.MidMinX <= z.MidMaxX && z.MidMaxX < z.RightMaxX) {
		return invalid("zones must satisfy left_min_x < mid_min_x <= mid_max_x < right_max_x")
	}
	if z.PlayerBias < 0 || z.PlayerBias > 1 {
		return invalid("zones.player_bias (%g) must be within [0, 1]", z.PlayerBias)
	}

	if c.Trail.MinLength < 1 {
		return invalid("trail.min_length (%d) must be at least 1", c.Trail.MinLength)
	}
	if c.Trail.MinLength > c.Trail.MaxLength {
		return invalid("trail.min_length (%d) exceeds trail.max_length (%d)", c.Trail.MinLength, c.Trail.MaxLength)
	}
	if c.Trail.MinOffset > c.Trail.MaxOffset {
		return invalid("trail.min_offset (%g) exceeds trail.max_offset (%g)", c.Trail.MinOffset, c.Trail.MaxOffset)
	}

	if err := c.Ramp().validate(); err != nil {
		return err
	}

	if c.Hazard.Speed <= 0 {
		return invalid("hazard.speed (%g) must be positive", c.Hazard.Speed)
	}
	if c.Hazard.FloorY >= c.Spawn.Y {
		return invalid("hazard.floor_y (%g) must be below spawn.y (%g)", c.Hazard.FloorY, c.Spawn.Y)
	}
	if c.Hazard.Width <= 0 || c.Hazard.Height <= 0 {
		return invalid("hazard size must be positive")
	}

	if c.Player.MinX > c.Player.MaxX {
		return invalid("player.min_x (%g) exceeds player.max_x (%g)", c.Player.MinX, c.Player.MaxX)
	}
	if c.Player.MinX < f.MinX || c.Player.MaxX > f.MaxX {
		return invalid("player track must lie within the field")
	}

	for name, p := range map[string]ModeProfile{"normal": c.Modes.Normal, "turbo": c.Modes.Turbo} {
		if p.TimeScale <= 0 {
			return invalid("modes.%s.time_scale (%g) must be positive", name, p.TimeScale)
		}
		if p.MusicPitch <= 0 {
			return invalid("modes.%s.music_pitch (%g) must be positive", name, p.MusicPitch)
		}
		if p.DeathTime < 0 {
			return invalid("modes.%s.death_time (%g) must not be negative", name, p.DeathTime)
		}
		if len(p.Hitboxes) == 0 {
			return invalid("modes.%s needs at least one hitbox", name)
		}
	}

	for i := 1; i < len(c.Milestones); i++ {
		if c.Milestones[i] <= c.Milestones[i-1] {
			return invalid("milestones must be strictly ascending (%g after %g)", c.Milestones[i], c.Milestones[i-1])
		}
	}
	return nil
}
