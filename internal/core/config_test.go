package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 40, ScreenH: 12}.WithDefaults()
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
	if cfg.ScreenW != 40 || cfg.ScreenH != 12 {
		t.Errorf("screen size changed: %dx%d", cfg.ScreenW, cfg.ScreenH)
	}

	fixed := RuntimeConfig{TickRate: 30, Seed: 42}.WithDefaults()
	if fixed.TickRate != 30 || fixed.Seed != 42 {
		t.Errorf("explicit values overwritten: %+v", fixed)
	}

	if neg := (RuntimeConfig{TickRate: -1, Seed: 1}).WithDefaults(); neg.TickRate != DefaultTickRate {
		t.Errorf("negative tick rate kept: %d", neg.TickRate)
	}
}
