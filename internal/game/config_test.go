package game

import (
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_ValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero head":     func(c *Config) { c.HeadSize = 0 },
		"tiny area":     func(c *Config) { c.ScreenWidth = 70 },
		"zero min":      func(c *Config) { c.MinVelocity = 0 },
		"start < min":   func(c *Config) { c.StartVelocity = 3 },
		"zero step":     func(c *Config) { c.VelocityStep = 0 },
		"no food timer": func(c *Config) { c.FoodPeriod = 0 },
		"no queue":      func(c *Config) { c.QueueCapacity = 0 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
}

func TestMovementPeriod(t *testing.T) {
	cases := map[int]time.Duration{
		5:  200 * time.Millisecond,
		10: 100 * time.Millisecond,
		15: 66 * time.Millisecond,
		30: 33 * time.Millisecond,
	}
	for v, want := range cases {
		if got := movementPeriod(v); got != want {
			t.Fatalf("movementPeriod(%d) = %v, want %v", v, got, want)
		}
	}
}
