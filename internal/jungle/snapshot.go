package jungle

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Slices are owned by the snapshot and may be kept after the next Step.
type Snapshot struct {
	Frame uint64
	State State

	LevelName    string
	WorldW       float64
	WorldH       float64
	Remaining    int
	BossHealth   int
	BossMax      int
	EnergyMax    float64
	Platforms    []Platform
	Collectibles []Collectible
	Enemies      []Enemy
}

// Snapshot returns the current frame's render data.
func (g *Game) Snapshot() Snapshot {
	lv := g.level.clone()
	s := Snapshot{
		Frame:        g.frame,
		State:        g.state,
		LevelName:    lv.Name,
		WorldW:       g.cfg.World.Width,
		WorldH:       g.cfg.World.Height,
		Remaining:    lv.Remaining(),
		EnergyMax:    g.cfg.Energy.Max,
		Platforms:    lv.Platforms,
		Collectibles: lv.Collectibles,
		Enemies:      lv.Enemies,
	}
	if b, ok := lv.Boss(); ok {
		s.BossHealth = b.Health
		s.BossMax = b.MaxHealth
	}
	return s
}
