package jungle

import (
	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/core"
)

// integratePlayer applies gravity, input and Euler integration to the player,
// then clamps it to the world. It reports whether a jump started this frame.
func integratePlayer(p *Player, in core.InputFrame, phys config.PhysicsConfig, world config.WorldConfig) bool {
	p.VY += phys.Gravity

	// Left wins when both directions are held
	switch {
	case in.Has(core.ActionLeft):
		p.VX = -phys.MoveSpeed
		p.Facing = FacingLeft
	case in.Has(core.ActionRight):
		p.VX = phys.MoveSpeed
		p.Facing = FacingRight
	default:
		p.VX *= phys.Friction
	}

	jumped := false
	if in.Has(core.ActionJump) && !p.Airborne {
		p.VY = phys.JumpVelocity
		p.Airborne = true
		jumped = true
	}

	p.X += p.VX
	p.Y += p.VY

	p.X = core.ClampF(p.X, 0, world.Width-p.W)
	if p.Y > world.Height-p.H {
		p.Y = world.Height - p.H
		p.VY = 0
		p.Airborne = false
	}
	return jumped
}
