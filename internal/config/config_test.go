package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultIcefallConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultIcefallConfig() is invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parse(defaultIcefallYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	def := DefaultIcefallConfig()
	if cfg.Zones != def.Zones || cfg.Spawn != def.Spawn || cfg.Trail != def.Trail {
		t.Errorf("embedded YAML drifted from DefaultIcefallConfig()")
	}
	if len(cfg.Milestones) != len(def.Milestones) {
		t.Errorf("milestones = %v, expected %v", cfg.Milestones, def.Milestones)
	}
	if len(cfg.Modes.Turbo.Hitboxes) != len(def.Modes.Turbo.Hitboxes) {
		t.Errorf("turbo hitboxes = %d, expected %d", len(cfg.Modes.Turbo.Hitboxes), len(def.Modes.Turbo.Hitboxes))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IcefallConfig)
		want   string
	}{
		{"trail min above max", func(c *IcefallConfig) { c.Trail.MinLength, c.Trail.MaxLength = 6, 5 }, "trail.min_length"},
		{"zero trail length", func(c *IcefallConfig) { c.Trail.MinLength = 0 }, "at least 1"},
		{"zones out of order", func(c *IcefallConfig) { c.Zones.LeftMaxX = 2 }, "left_max_x"},
		{"zones outside field", func(c *IcefallConfig) { c.Zones.RightMaxX = 5 }, "within the field"},
		{"mid boundary outside", func(c *IcefallConfig) { c.Zones.MidMaxX = 4 }, "mid_max_x"},
		{"bias above one", func(c *IcefallConfig) { c.Zones.PlayerBias = 1.5 }, "player_bias"},
		{"hard slower than easy", func(c *IcefallConfig) { c.Spawn.HardInterval = 0.5 }, "hard_interval"},
		{"zero ramp", func(c *IcefallConfig) { c.Spawn.RampDuration = 0 }, "ramp_duration"},
		{"floor above spawn", func(c *IcefallConfig) { c.Hazard.FloorY = 10 }, "floor_y"},
		{"zero time scale", func(c *IcefallConfig) { c.Modes.Turbo.TimeScale = 0 }, "time_scale"},
		{"no hitboxes", func(c *IcefallConfig) { c.Modes.Normal.Hitboxes = nil }, "hitbox"},
		{"unsorted milestones", func(c *IcefallConfig) { c.Milestones = []float64{60, 30} }, "ascending"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultIcefallConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icefall.yaml")
	data := []byte("spawn:\n  easy_interval: 0.5\nmilestones: [10, 20]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawn.EasyInterval != 0.5 {
		t.Errorf("EasyInterval = %g, expected 0.5", cfg.Spawn.EasyInterval)
	}
	// Unmentioned values keep their defaults
	if cfg.Spawn.HardInterval != 0.1 {
		t.Errorf("HardInterval = %g, expected default 0.1", cfg.Spawn.HardInterval)
	}
	if len(cfg.Milestones) != 2 {
		t.Errorf("Milestones = %v, expected [10 20]", cfg.Milestones)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("trail:\n  min_length: 9\n  max_length: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an inconsistent file = %v, expected ErrInvalid", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestResolveRejectsInvalidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("trail:\n  min_length: 9\n  max_length: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(bad, DifficultyNormal); !errors.Is(err, ErrInvalid) {
		t.Errorf("Resolve(bad) = %v, expected ErrInvalid", err)
	}

	// A broken file found by the search is reported too.
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	zones := "zones:\n  left_min_x: 2\n  left_max_x: -2\n"
	if err := os.WriteFile(filepath.Join(userDir, "icefall.yaml"), []byte(zones), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve("", ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Resolve() with a broken user config = %v, expected ErrInvalid", err)
	}
}

func TestResolveAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Resolve("", DifficultyFixed)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Spawn.HardInterval != cfg.Spawn.EasyInterval {
		t.Errorf("fixed preset hard interval = %v, expected %v", cfg.Spawn.HardInterval, cfg.Spawn.EasyInterval)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Zones.PlayerBias != 0.8 {
		t.Errorf("PlayerBias = %g, expected embedded 0.8", cfg.Zones.PlayerBias)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "icefall.yaml"), []byte("turbo_notice_threshold: 42\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TurboNoticeThreshold != 42 {
		t.Errorf("TurboNoticeThreshold = %g, expected 42", cfg.TurboNoticeThreshold)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultIcefallConfig()
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "player_bias: 0.8") {
		t.Errorf("Marshal() output missing player_bias:\n%s", data)
	}
}
