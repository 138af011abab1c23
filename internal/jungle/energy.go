package jungle

import "github.com/vovakirdan/jungle-quest/internal/core"

// Ability is one of the three energy-gated powers.
type Ability int

const (
	AbilityScan     Ability = iota + 1 // highlight every remaining collectible
	AbilityTimeJump                    // rotate the timeline
	AbilityEntangle                    // bonus score while two or more collectibles remain
)

// abilityOrder is the order abilities resolve in when pressed on the same frame.
var abilityOrder = []struct {
	ability Ability
	action  core.Action
}{
	{AbilityScan, core.ActionAbility1},
	{AbilityTimeJump, core.ActionAbility2},
	{AbilityEntangle, core.ActionAbility3},
}

// String returns a human-readable name for the ability.
func (a Ability) String() string {
	switch a {
	case AbilityScan:
		return "scan"
	case AbilityTimeJump:
		return "time-jump"
	case AbilityEntangle:
		return "entangle"
	default:
		return "unknown"
	}
}

func (g *Game) abilityCost(a Ability) float64 {
	switch a {
	case AbilityScan:
		return g.cfg.Energy.ScanCost
	case AbilityTimeJump:
		return g.cfg.Energy.TimeJumpCost
	case AbilityEntangle:
		return g.cfg.Energy.EntangleCost
	default:
		return 0
	}
}

// updateEnergy activates the abilities pressed this frame and then regenerates.
func (g *Game) updateEnergy(in core.InputFrame) {
	for _, ab := range abilityOrder {
		if in.Has(ab.action) {
			g.tryActivate(ab.ability)
		}
	}
	g.regenerate()
}

// tryActivate spends energy and applies the ability. Insufficient energy is a
// silent no-op.
func (g *Game) tryActivate(a Ability) bool {
	cost := g.abilityCost(a)
	if cost <= 0 || g.state.Energy < cost {
		return false
	}
	g.state.Energy -= cost

	switch a {
	case AbilityScan:
		for i := range g.level.Collectibles {
			if !g.level.Collectibles[i].Collected {
				g.level.Collectibles[i].Highlighted = true
			}
		}
		g.sched.Add(g.elapsed+ms(g.cfg.Energy.HighlightMS), EventClearHighlight)
	case AbilityTimeJump:
		g.state.Timeline = g.state.Timeline.Next()
	case AbilityEntangle:
		if g.level.Remaining() >= 2 {
			g.state.Score += g.cfg.Scoring.Entangle
		}
	}

	g.logger.Debug("ability", "ability", a, "energy", g.state.Energy)
	return true
}

func (g *Game) regenerate() {
	g.state.Energy = core.ClampF(g.state.Energy+g.cfg.Energy.Regen, 0, g.cfg.Energy.Max)
}
