package jungle

import (
	"github.com/vovakirdan/jungle-quest/internal/core"
)

// landOnPlatforms snaps a falling player onto the topmost platform it sank
// into this frame. Platforms are solid from above only.
func landOnPlatforms(p *Player, platforms []Platform) bool {
	if p.VY <= 0 {
		return false
	}

	best := -1
	body := p.Rect()
	for i := range platforms {
		pl := platforms[i].Rect
		if !body.Intersects(pl) || p.Bottom() <= pl.Y || p.Y >= pl.Y {
			continue
		}
		if best < 0 || pl.Y < platforms[best].Y {
			best = i
		}
	}
	if best < 0 {
		return false
	}

	p.Y = platforms[best].Y - p.H
	p.VY = 0
	p.Airborne = false
	return true
}

// collectPickups gathers every uncollected item the player overlaps.
func (g *Game) collectPickups() {
	body := g.state.Player.Rect()
	for i := range g.level.Collectibles {
		c := &g.level.Collectibles[i]
		if c.Collected || !body.Intersects(c.Rect) {
			continue
		}
		c.Collected = true
		c.Highlighted = false

		switch c.Kind {
		case KindBanana:
			g.state.Bananas++
			g.state.Score += g.cfg.Scoring.Banana
		case KindKey:
			g.state.Keys++
			g.state.Score += g.cfg.Scoring.Key
		case KindQuantum:
			g.state.Score += g.cfg.Scoring.Quantum
		case KindHolo:
			g.state.Score += g.cfg.Scoring.Holo
		}
		g.play(CueCollect)
	}
}

// resolveContacts applies damage from every enemy touching the player. The
// boss body is handled by resolveBoss.
func (g *Game) resolveContacts() {
	p := &g.state.Player
	body := p.Rect()

	kept := g.level.Enemies[:0]
	for _, e := range g.level.Enemies {
		if _, isBoss := e.Brain.(Boss); isBoss || !body.Intersects(e.Rect) {
			kept = append(kept, e)
			continue
		}

		if _, isShot := e.Brain.(Projectile); isShot {
			g.damage(g.cfg.Combat.ProjectileDamage)
			continue // consumed on contact
		}

		g.damage(g.cfg.Combat.ContactDamage)
		p.VY = g.cfg.Combat.KnockbackY
		p.VX = float64(knockbackDir(e)) * g.cfg.Combat.KnockbackX
		kept = append(kept, e)
	}
	g.level.Enemies = kept
}

// knockbackDir is the direction an enemy pushes the player.
func knockbackDir(e Enemy) int {
	if _, ok := e.Brain.(Bandit); ok && e.Dir != 0 {
		return e.Dir
	}
	if d := core.Sign(e.VX); d != 0 {
		return d
	}
	return 1
}

// resolveBoss runs the boss-specific rules: head bounce, stomp box and the
// projectile attack. dtMS is the session time that passed this frame.
func (g *Game) resolveBoss(dtMS float64) {
	idx := g.level.bossIndex()
	if idx < 0 {
		return
	}
	e := &g.level.Enemies[idx]
	b := e.Brain.(Boss)
	if b.Health <= 0 {
		return
	}
	p := &g.state.Player

	// Head bounce: feet crossed the boss top while falling
	prevBottom := p.Bottom() - p.VY
	overlapsX := p.X < e.Right() && p.X+p.W > e.X
	if p.VY > 0 && overlapsX && prevBottom <= e.Y && p.Bottom() > e.Y {
		b.Health = max(0, b.Health-g.cfg.Combat.HeadDamage)
		b.Phase = bossPhase(b)
		p.Y = e.Y - p.H
		p.VY = g.cfg.Combat.HeadBounce
		p.Airborne = true
		g.play(CueHit)
		g.logger.Info("boss hit", "health", b.Health)
	}

	stomp := core.NewRect(e.X, e.Y+50, e.W, 30)
	if p.Rect().Intersects(stomp) {
		g.damage(g.cfg.Combat.StompDamage)
		p.VY = g.cfg.Combat.StompBounce
	}

	b.AttackTimer += dtMS
	var shot *Enemy
	if b.Health > 0 && b.AttackTimer > float64(g.cfg.Boss.AttackIntervalMS) {
		b.AttackTimer = 0
		size := g.cfg.Boss.ProjectileSize
		shot = &Enemy{
			Rect:  core.NewRect(e.X+e.W/2, e.Y+e.H, size, size),
			VY:    g.cfg.Boss.ProjectileSpeed,
			Dir:   1,
			Brain: Projectile{},
		}
	}
	e.Brain = b

	// append after the last use of e, it may reallocate
	if shot != nil {
		g.level.Enemies = append(g.level.Enemies, *shot)
	}
}

// damage removes lives and arms the game-over transition.
func (g *Game) damage(n int) {
	g.state.Lives -= n
	g.play(CueHit)
	if g.state.Lives <= 0 {
		g.pendingGameOver = true
	}
}
