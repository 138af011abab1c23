// Package config provides YAML-based tuning for Jungle Quest and the
// difficulty presets layered on top of it.
package config

import (
	"errors"
	"fmt"
)

// JungleConfig contains every tunable of the simulation.
type JungleConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Energy      EnergyConfig      `yaml:"energy"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Combat      CombatConfig      `yaml:"combat"`
	Boss        BossConfig        `yaml:"boss"`
	Progression ProgressionConfig `yaml:"progression"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-frame movement constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative is up
	MoveSpeed    float64 `yaml:"move_speed"`
	Friction     float64 `yaml:"friction"` // horizontal damping when no direction is held
}

// PlayerConfig defines the player body and starting lives.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

// EnergyConfig defines quantum energy regeneration and ability costs.
type EnergyConfig struct {
	Max          float64 `yaml:"max"`
	Start        float64 `yaml:"start"`
	Regen        float64 `yaml:"regen"` // per frame
	ScanCost     float64 `yaml:"scan_cost"`
	TimeJumpCost float64 `yaml:"time_jump_cost"`
	EntangleCost float64 `yaml:"entangle_cost"`
	HighlightMS  int     `yaml:"highlight_ms"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Banana        int `yaml:"banana"`
	Key           int `yaml:"key"`
	Quantum       int `yaml:"quantum"`
	Holo          int `yaml:"holo"`
	Entangle      int `yaml:"entangle"`
	LevelComplete int `yaml:"level_complete"`
}

// CombatConfig defines damage and knockback.
type CombatConfig struct {
	ContactDamage    int     `yaml:"contact_damage"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	StompDamage      int     `yaml:"stomp_damage"`
	KnockbackX       float64 `yaml:"knockback_x"`
	KnockbackY       float64 `yaml:"knockback_y"` // negative is up
	StompBounce      float64 `yaml:"stomp_bounce"`
	HeadBounce       float64 `yaml:"head_bounce"`
	HeadDamage       int     `yaml:"head_damage"` // damage dealt to the boss
}

// BossConfig defines the level 3 boss.
type BossConfig struct {
	Health           int     `yaml:"health"`
	AttackIntervalMS int     `yaml:"attack_interval_ms"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileSize   float64 `yaml:"projectile_size"`
	Sway             float64 `yaml:"sway"` // horizontal amplitude per frame
}

// ProgressionConfig defines level completion timing.
type ProgressionConfig struct {
	GraceMS      int `yaml:"grace_ms"`
	KeysRequired int `yaml:"keys_required"`
	Levels       int `yaml:"levels"`
}

// Validate reports configuration values the simulation cannot run with.
func (c JungleConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %gx%g", c.Player.Width, c.Player.Height))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player lives must be positive, got %d", c.Player.Lives))
	}
	if c.Energy.Max <= 0 {
		errs = append(errs, fmt.Errorf("energy max must be positive, got %g", c.Energy.Max))
	}
	if c.Energy.Regen < 0 {
		errs = append(errs, fmt.Errorf("energy regen must not be negative, got %g", c.Energy.Regen))
	}
	if c.Energy.HighlightMS < 0 {
		errs = append(errs, fmt.Errorf("energy highlight_ms must not be negative, got %d", c.Energy.HighlightMS))
	}
	costs := []struct {
		name string
		cost float64
	}{
		{"scan_cost", c.Energy.ScanCost},
		{"time_jump_cost", c.Energy.TimeJumpCost},
		{"entangle_cost", c.Energy.EntangleCost},
	}
	for _, ac := range costs {
		if ac.cost <= 0 {
			errs = append(errs, fmt.Errorf("energy %s must be positive, got %g", ac.name, ac.cost))
		}
	}
	if c.Progression.GraceMS < 0 {
		errs = append(errs, fmt.Errorf("progression grace_ms must not be negative, got %d", c.Progression.GraceMS))
	}
	if c.Progression.Levels <= 0 {
		errs = append(errs, fmt.Errorf("progression levels must be positive, got %d", c.Progression.Levels))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. An empty string is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
