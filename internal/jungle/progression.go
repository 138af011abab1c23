package jungle

// progress runs the last pipeline stage: the game-over transition, due
// scheduled events and the level goal check.
func (g *Game) progress() {
	if g.pendingGameOver {
		g.pendingGameOver = false
		g.logger.Info("game over", "level", g.state.Level, "score", g.state.Score)
		g.finish(ScreenGameOver)
		return
	}

	for _, ev := range g.sched.Due(g.elapsed) {
		switch ev.Kind {
		case EventClearHighlight:
			for i := range g.level.Collectibles {
				g.level.Collectibles[i].Highlighted = false
			}
		case EventCompleteLevel:
			g.completeLevel()
			return
		}
	}

	if g.levelGoalMet() && !g.sched.Pending(EventCompleteLevel) {
		g.sched.Add(g.elapsed+ms(g.cfg.Progression.GraceMS), EventCompleteLevel)
		g.logger.Debug("level goal met", "level", g.state.Level)
	}
}

// levelGoalMet reports whether the current level's completion condition holds.
func (g *Game) levelGoalMet() bool {
	switch g.state.Level {
	case 1:
		return g.state.Keys >= g.cfg.Progression.KeysRequired
	case 2:
		return g.level.allCollected(KindQuantum)
	case 3:
		b, ok := g.level.Boss()
		return ok && b.Health <= 0
	case 4:
		return g.level.allCollected(KindHolo)
	default:
		return false
	}
}

// completeLevel awards the completion bonus and advances to the next level,
// or ends the run after the last one.
func (g *Game) completeLevel() {
	g.state.Score += g.cfg.Scoring.LevelComplete
	g.logger.Info("level complete", "level", g.state.Level, "score", g.state.Score)

	if g.state.Level >= g.lastLevel() {
		g.finish(ScreenWon)
		return
	}
	g.loadLevel(g.state.Level + 1)
	g.save()
}

// finish moves to a terminal screen and records the run once.
func (g *Game) finish(s Screen) {
	g.state.Screen = s
	g.state.Paused = false
	g.sched.Reset()

	if g.recorded || g.scores == nil {
		return
	}
	g.recorded = true
	r := Result{
		Score:   g.state.Score,
		Level:   g.state.Level,
		Bananas: g.state.Bananas,
		Won:     s == ScreenWon,
		Player:  g.slot,
	}
	if err := g.scores.RecordScore(r); err != nil {
		g.logger.Warn("cannot record score", "err", err)
	}
}
