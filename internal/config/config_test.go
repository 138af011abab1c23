package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JungleConfig)
		want   string // substring of the error, empty for valid
	}{
		{"defaults", func(*JungleConfig) {}, ""},
		{"zero regen", func(c *JungleConfig) { c.Energy.Regen = 0 }, ""},
		{"zero grace", func(c *JungleConfig) { c.Progression.GraceMS = 0 }, ""},
		{"zero world", func(c *JungleConfig) { c.World.Width = 0 }, "world size"},
		{"no lives", func(c *JungleConfig) { c.Player.Lives = 0 }, "player lives"},
		{"negative regen", func(c *JungleConfig) { c.Energy.Regen = -0.1 }, "energy regen"},
		{"negative highlight", func(c *JungleConfig) { c.Energy.HighlightMS = -1 }, "highlight_ms"},
		{"free scan", func(c *JungleConfig) { c.Energy.ScanCost = 0 }, "scan_cost"},
		{"negative time jump", func(c *JungleConfig) { c.Energy.TimeJumpCost = -5 }, "time_jump_cost"},
		{"free entangle", func(c *JungleConfig) { c.Energy.EntangleCost = 0 }, "entangle_cost"},
		{"negative grace", func(c *JungleConfig) { c.Progression.GraceMS = -1 }, "grace_ms"},
		{"no levels", func(c *JungleConfig) { c.Progression.Levels = 0 }, "progression levels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultJungleConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, expected it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultJungleConfig()
	cfg.Energy.Regen = -1
	cfg.Energy.ScanCost = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"energy regen", "scan_cost"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
