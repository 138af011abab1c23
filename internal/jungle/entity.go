// Package jungle implements the Jungle Quest simulation: a fixed-step
// platformer with energy-gated abilities, four hand-built levels and a boss.
//
// The package has no terminal, audio or storage code. Those collaborators are
// reached through the CuePlayer, ProgressStore and ScoreRecorder interfaces,
// and all wall-time behavior goes through a core.Clock.
package jungle

import (
	"github.com/vovakirdan/jungle-quest/internal/core"
)

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the controllable character.
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Facing   Facing
	Airborne bool
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// PlatformVariant is the closed set of platform behaviors.
type PlatformVariant interface {
	platformVariant()
}

// Solid platforms never move.
type Solid struct{}

// Quantum platforms bob vertically around BaseY.
type Quantum struct {
	Phase float64
	BaseY float64
}

// Holographic platforms pulse their opacity. Alpha is visual only.
type Holographic struct {
	Phase float64
	Alpha float64
}

func (Solid) platformVariant()       {}
func (Quantum) platformVariant()     {}
func (Holographic) platformVariant() {}

// Platform is a surface the player can land on from above.
type Platform struct {
	core.Rect
	Variant PlatformVariant
}

// CollectibleKind identifies what a pickup is worth.
type CollectibleKind int

const (
	KindBanana CollectibleKind = iota
	KindKey
	KindQuantum // quantum fragment, level 2
	KindHolo    // holographic key, level 4
)

// String returns a human-readable name for the kind.
func (k CollectibleKind) String() string {
	switch k {
	case KindBanana:
		return "banana"
	case KindKey:
		return "key"
	case KindQuantum:
		return "quantum"
	case KindHolo:
		return "holo"
	default:
		return "unknown"
	}
}

// Collectible is a pickup. Once Collected is set it stays set.
type Collectible struct {
	core.Rect
	Kind        CollectibleKind
	Collected   bool
	Phase       float64
	Highlighted bool
}

// Brain is the closed set of enemy behaviors.
type Brain interface {
	brain()
}

// Bandit patrols horizontally between MinX and MaxX.
type Bandit struct {
	MinX, MaxX float64
}

// Glitch drifts in 2D and flickers.
type Glitch struct {
	Phase float64
	Alpha float64
}

// Drone drifts in 2D inside its patrol box.
type Drone struct{}

// Boss is the level 3 guardian.
type Boss struct {
	Health      int
	MaxHealth   int
	Phase       float64
	AttackTimer float64 // milliseconds since the last projectile
}

// Projectile is a boss shot falling straight down.
type Projectile struct{}

func (Bandit) brain()     {}
func (Glitch) brain()     {}
func (Drone) brain()      {}
func (Boss) brain()       {}
func (Projectile) brain() {}

// Enemy is anything that hurts the player on contact.
type Enemy struct {
	core.Rect
	VX, VY float64
	Dir    int // +1 right, -1 left
	Brain  Brain
}

// Timeline is the era the jungle is shown in. Values are the displayed years.
type Timeline int

const (
	TimelinePast    Timeline = 1994
	TimelinePresent Timeline = 2026
	TimelineFuture  Timeline = 2048
)

// Next rotates Past -> Present -> Future -> Past.
func (t Timeline) Next() Timeline {
	switch t {
	case TimelinePast:
		return TimelinePresent
	case TimelinePresent:
		return TimelineFuture
	default:
		return TimelinePast
	}
}

// Screen is the top-level mode of a session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
	ScreenWon
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "gameover"
	case ScreenWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the screen ends a run.
func (s Screen) Terminal() bool {
	return s == ScreenGameOver || s == ScreenWon
}

// State is the session state shared by every pipeline stage.
type State struct {
	Score    int
	Lives    int
	Level    int
	Bananas  int
	Keys     int
	Energy   float64
	Timeline Timeline
	Screen   Screen
	Paused   bool
	Player   Player
}

// Progress is the persisted subset of State.
type Progress struct {
	Score   int
	Lives   int
	Level   int
	Bananas int
	Keys    int
}

// Result is a finished run, recorded as a high score.
type Result struct {
	Score   int
	Level   int
	Bananas int
	Won     bool
	Player  string // save slot of the run
}
