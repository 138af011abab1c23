package jungle

import (
	"math"

	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/core"
)

// LevelCount is the number of hand-built levels.
const LevelCount = 4

const (
	pickupSize = 16
	groundH    = 20
)

// LevelInfo describes a level for menus and listings.
type LevelInfo struct {
	Number int
	Name   string
	Goal   string
}

var levelInfos = [LevelCount]LevelInfo{
	{1, "Vine Canyon", "collect 3 ancient keys"},
	{2, "Quantum Temple", "collect every quantum fragment"},
	{3, "Boss Battle", "defeat the temporal guardian"},
	{4, "Future Jungle", "collect every holographic key"},
}

// Levels returns the level catalog in play order.
func Levels() []LevelInfo {
	out := make([]LevelInfo, LevelCount)
	copy(out, levelInfos[:])
	return out
}

// ValidLevel reports whether n names a level.
func ValidLevel(n int) bool {
	return n >= 1 && n <= LevelCount
}

// Level holds the entities of the level being played. It is rebuilt on every
// level transition.
type Level struct {
	Number       int
	Name         string
	Platforms    []Platform
	Collectibles []Collectible
	Enemies      []Enemy
}

// BuildLevel constructs level n. The layout depends only on n and the world
// size, so two calls with the same arguments produce equal levels.
// n outside 1..LevelCount builds level 1.
func BuildLevel(n int, world config.WorldConfig, boss config.BossConfig) *Level {
	if !ValidLevel(n) {
		n = 1
	}
	lv := &Level{Number: n, Name: levelInfos[n-1].Name}

	switch n {
	case 1:
		lv.Platforms = append(lv.Platforms, ground(world))
		for i := range 5 {
			x := 100 + float64(i)*100
			y := 300 - float64(i)*40
			lv.Platforms = append(lv.Platforms, solid(x, y, 80, 16))
		}
		for i := range 10 {
			lv.Collectibles = append(lv.Collectibles, pickup(KindBanana, 120+float64(i)*50, 260))
		}
		for i := range 3 {
			lv.Collectibles = append(lv.Collectibles, pickup(KindKey, 200+float64(i)*120, 200))
		}
		lv.Enemies = append(lv.Enemies,
			bandit(300, 340, 2, 1),
			bandit(500, 280, 1.5, -1),
		)

	case 2:
		for i := range 8 {
			fi := float64(i)
			lv.Platforms = append(lv.Platforms, Platform{
				Rect:    core.NewRect(fi*80, 350-math.Sin(fi)*50, 70, 16),
				Variant: Quantum{Phase: fi * 0.5, BaseY: 350},
			})
		}
		for i := range 8 {
			lv.Collectibles = append(lv.Collectibles, pickup(KindQuantum, 50+float64(i)*70, 300))
		}
		for i := range 3 {
			fi := float64(i)
			lv.Enemies = append(lv.Enemies, drifter(
				core.NewRect(150+fi*150, 200+math.Sin(fi)*50, 32, 32),
				math.Sin(fi)*2, math.Cos(fi),
				Glitch{Alpha: 1},
			))
		}

	case 3:
		lv.Platforms = append(lv.Platforms, ground(world))
		for i := range 4 {
			fi := float64(i)
			lv.Platforms = append(lv.Platforms, solid(40+fi*150, 310-fi*55, 90, 16))
		}
		lv.Enemies = append(lv.Enemies, Enemy{
			Rect:  core.NewRect(320, 100, 80, 80),
			Dir:   1,
			Brain: Boss{Health: boss.Health, MaxHealth: boss.Health, Phase: 1},
		})

	case 4:
		for i := range 10 {
			lv.Platforms = append(lv.Platforms, Platform{
				Rect:    core.NewRect(float64(i)*65, 350-float64(i%3)*60, 60, 16),
				Variant: Holographic{Alpha: 0.8},
			})
		}
		for i := range 6 {
			lv.Collectibles = append(lv.Collectibles, pickup(KindHolo, 80+float64(i)*80, 320-float64(i%2)*40))
		}
		for i := range 4 {
			fi := float64(i)
			lv.Enemies = append(lv.Enemies, drifter(
				core.NewRect(100+fi*120, 150+math.Sin(fi)*40, 28, 28),
				math.Cos(fi)*1.5, math.Sin(fi)*1.5,
				Drone{},
			))
		}
	}
	return lv
}

func ground(world config.WorldConfig) Platform {
	return solid(0, world.Height-groundH, world.Width, groundH)
}

func solid(x, y, w, h float64) Platform {
	return Platform{Rect: core.NewRect(x, y, w, h), Variant: Solid{}}
}

func pickup(kind CollectibleKind, x, y float64) Collectible {
	return Collectible{Rect: core.NewRect(x, y, pickupSize, pickupSize), Kind: kind}
}

func bandit(x, y, vx float64, dir int) Enemy {
	return Enemy{
		Rect:  core.NewRect(x, y, 24, 32),
		VX:    vx,
		Dir:   dir,
		Brain: Bandit{MinX: 100, MaxX: 500},
	}
}

func drifter(r core.Rect, vx, vy float64, b Brain) Enemy {
	dir := core.Sign(vx)
	if dir == 0 {
		dir = 1
	}
	return Enemy{Rect: r, VX: vx, VY: vy, Dir: dir, Brain: b}
}

// Remaining counts uncollected collectibles.
func (l *Level) Remaining() int {
	n := 0
	for _, c := range l.Collectibles {
		if !c.Collected {
			n++
		}
	}
	return n
}

// allCollected reports whether the level has items of kind and all are taken.
func (l *Level) allCollected(kind CollectibleKind) bool {
	seen := false
	for _, c := range l.Collectibles {
		if c.Kind != kind {
			continue
		}
		seen = true
		if !c.Collected {
			return false
		}
	}
	return seen
}

func (l *Level) bossIndex() int {
	for i, e := range l.Enemies {
		if _, ok := e.Brain.(Boss); ok {
			return i
		}
	}
	return -1
}

// Boss returns the level boss, if any.
func (l *Level) Boss() (Boss, bool) {
	if i := l.bossIndex(); i >= 0 {
		return l.Enemies[i].Brain.(Boss), true
	}
	return Boss{}, false
}

// clone deep-copies the entity slices.
func (l *Level) clone() Level {
	out := *l
	out.Platforms = append([]Platform(nil), l.Platforms...)
	out.Collectibles = append([]Collectible(nil), l.Collectibles...)
	out.Enemies = append([]Enemy(nil), l.Enemies...)
	return out
}
