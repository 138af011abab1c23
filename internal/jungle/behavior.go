package jungle

import (
	"math"
)

// Patrol boxes for the free-flying enemies, in world units.
var (
	glitchBounds = bounds{MinX: 50, MaxX: 550, MinY: 50, MaxY: 350}
	droneBounds  = bounds{MinX: 0, MaxX: 600, MinY: 0, MaxY: 300}
)

type bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// bounce moves e by its velocity and reverses each axis that left b.
func (b bounds) bounce(e *Enemy) {
	e.X += e.VX
	e.Y += e.VY
	if e.X < b.MinX || e.X > b.MaxX {
		e.VX = -e.VX
		e.Dir = -e.Dir
	}
	if e.Y < b.MinY || e.Y > b.MaxY {
		e.VY = -e.VY
	}
}

// updateEnemies advances every enemy by one frame and drops projectiles that
// left the world. seconds is the session time used for the boss sway.
func (g *Game) updateEnemies(seconds float64) {
	kept := g.level.Enemies[:0]
	for _, e := range g.level.Enemies {
		switch b := e.Brain.(type) {
		case Bandit:
			e.X += e.VX
			if e.X < b.MinX || e.X > b.MaxX {
				e.VX = -e.VX
				e.Dir = -e.Dir
			}
		case Glitch:
			glitchBounds.bounce(&e)
			b.Phase += 0.1
			b.Alpha = 0.5 + math.Sin(b.Phase)*0.5
			e.Brain = b
		case Drone:
			droneBounds.bounce(&e)
		case Boss:
			if b.Health > 0 {
				e.X += math.Sin(seconds) * g.cfg.Boss.Sway
			}
			b.Phase = bossPhase(b)
			e.Brain = b
		case Projectile:
			e.Y += e.VY
			if e.Y > g.cfg.World.Height {
				continue
			}
		}
		kept = append(kept, e)
	}
	g.level.Enemies = kept
}

// bossPhase maps remaining health to the boss phase 1..3.
func bossPhase(b Boss) float64 {
	maxHP := b.MaxHealth
	if maxHP <= 0 {
		maxHP = 100
	}
	pct := b.Health * 100 / maxHP
	switch {
	case pct < 33:
		return 3
	case pct < 66:
		return 2
	default:
		return 1
	}
}

// updateScenery advances platform and collectible animations.
func (g *Game) updateScenery() {
	for i := range g.level.Platforms {
		p := &g.level.Platforms[i]
		switch v := p.Variant.(type) {
		case Quantum:
			v.Phase += 0.02
			p.Y = v.BaseY - math.Sin(v.Phase)*50
			p.Variant = v
		case Holographic:
			v.Phase += 0.05
			v.Alpha = 0.5 + math.Sin(v.Phase)*0.3
			p.Variant = v
		}
	}

	for i := range g.level.Collectibles {
		c := &g.level.Collectibles[i]
		switch c.Kind {
		case KindQuantum:
			c.Phase += 0.1
		case KindHolo:
			c.Phase += 0.05
		}
	}
}
