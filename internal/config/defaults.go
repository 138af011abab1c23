package config

import (
	_ "embed"
)

//go:embed defaults/jungle.yaml
var defaultJungleYAML []byte

// DefaultJungleConfig returns the built-in configuration.
func DefaultJungleConfig() JungleConfig {
	return JungleConfig{
		World: WorldConfig{
			Width:  640,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpVelocity: -12,
			MoveSpeed:    5,
			Friction:     0.8,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			SpawnY: 300,
			Width:  20,
			Height: 40,
			Lives:  3,
		},
		Energy: EnergyConfig{
			Max:          100,
			Start:        100,
			Regen:        0.1,
			ScanCost:     20,
			TimeJumpCost: 30,
			EntangleCost: 40,
			HighlightMS:  1000,
		},
		Scoring: ScoringConfig{
			Banana:        10,
			Key:           100,
			Quantum:       50,
			Holo:          75,
			Entangle:      200,
			LevelComplete: 1000,
		},
		Combat: CombatConfig{
			ContactDamage:    1,
			ProjectileDamage: 10,
			StompDamage:      20,
			KnockbackX:       10,
			KnockbackY:       -8,
			StompBounce:      -15,
			HeadBounce:       -10,
			HeadDamage:       10,
		},
		Boss: BossConfig{
			Health:           100,
			AttackIntervalMS: 2000,
			ProjectileSpeed:  5,
			ProjectileSize:   10,
			Sway:             2,
		},
		Progression: ProgressionConfig{
			GraceMS:      1000,
			KeysRequired: 3,
			Levels:       4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultJungleYAML
}
