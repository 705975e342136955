package config

import (
	_ "embed"
)

//go:embed defaults/icefall.yaml
var defaultIcefallYAML []byte

// DefaultIcefallConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultIcefallConfig() IcefallConfig {
	return IcefallConfig{
		Field: FieldConfig{
			MinX:    -3.65,
			MaxX:    3.65,
			TopY:    6.0,
			BottomY: -5.0,
		},
		Zones: ZoneConfig{
			LeftMinX:   -3.65,
			LeftMaxX:   -1.22,
			MidMinX:    -1.0,
			MidMaxX:    1.0,
			RightMinX:  1.22,
			RightMaxX:  3.65,
			PlayerBias: 0.8,
		},
		Trail: TrailConfig{
			MinLength: 1,
			MaxLength: 5,
			MinOffset: -4,
			MaxOffset: 4,
		},
		Spawn: SpawnConfig{
			EasyInterval: 0.3,
			HardInterval: 0.1,
			RampDuration: 150,
			Y:            5.62,
		},
		Hazard: HazardConfig{
			Speed:  6.0,
			FloorY: -6.0,
			Width:  0.3,
			Height: 0.9,
		},
		Player: PlayerConfig{
			Y:    -4.2,
			MinX: -3.65,
			MaxX: 3.65,
			Step: 0.35,
		},
		Modes: ModesConfig{
			Normal: ModeProfile{
				MusicPitch: 1.0,
				TimeScale:  1.0,
				DeathTime:  2.0,
				Trail:      "regular",
				Hitboxes: []HitboxConfig{
					{X: -0.3, Y: -0.35, W: 0.6, H: 0.5},
					{X: -0.15, Y: 0.15, W: 0.3, H: 0.3},
				},
			},
			Turbo: ModeProfile{
				MusicPitch: 1.25,
				TimeScale:  2.5,
				DeathTime:  4.0,
				Trail:      "turbo",
				Hitboxes: []HitboxConfig{
					{X: -0.2, Y: -0.3, W: 0.4, H: 0.45},
				},
			},
		},
		Milestones:           []float64{30, 60, 90, 120, 150, 180, 240},
		TurboNoticeThreshold: 80,
	}
}
