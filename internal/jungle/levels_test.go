package jungle

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/jungle-quest/internal/config"
)

func TestBuildLevelContents(t *testing.T) {
	cfg := config.DefaultJungleConfig()

	tests := []struct {
		level        int
		name         string
		platforms    int
		collectibles map[CollectibleKind]int
		enemies      int
	}{
		{1, "Vine Canyon", 6, map[CollectibleKind]int{KindBanana: 10, KindKey: 3}, 2},
		{2, "Quantum Temple", 8, map[CollectibleKind]int{KindQuantum: 8}, 3},
		{3, "Boss Battle", 5, map[CollectibleKind]int{}, 1},
		{4, "Future Jungle", 10, map[CollectibleKind]int{KindHolo: 6}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lv := BuildLevel(tc.level, cfg.World, cfg.Boss)
			if lv.Number != tc.level || lv.Name != tc.name {
				t.Errorf("level = %d %q", lv.Number, lv.Name)
			}
			if len(lv.Platforms) != tc.platforms {
				t.Errorf("platforms = %d, expected %d", len(lv.Platforms), tc.platforms)
			}
			if len(lv.Enemies) != tc.enemies {
				t.Errorf("enemies = %d, expected %d", len(lv.Enemies), tc.enemies)
			}
			counts := make(map[CollectibleKind]int)
			for _, c := range lv.Collectibles {
				counts[c.Kind]++
				if c.W != 16 || c.H != 16 {
					t.Errorf("collectible size = %vx%v, expected 16x16", c.W, c.H)
				}
			}
			if !reflect.DeepEqual(counts, tc.collectibles) {
				t.Errorf("collectibles = %v, expected %v", counts, tc.collectibles)
			}
		})
	}
}

func TestBuildLevelDeterministic(t *testing.T) {
	cfg := config.DefaultJungleConfig()
	for n := 1; n <= LevelCount; n++ {
		a := BuildLevel(n, cfg.World, cfg.Boss)
		b := BuildLevel(n, cfg.World, cfg.Boss)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("level %d differs between builds", n)
		}
	}
}

func TestBuildLevelInvalidDefaultsToOne(t *testing.T) {
	cfg := config.DefaultJungleConfig()
	for _, n := range []int{-1, 0, 5, 99} {
		if lv := BuildLevel(n, cfg.World, cfg.Boss); lv.Number != 1 {
			t.Errorf("BuildLevel(%d) built level %d", n, lv.Number)
		}
	}
}

func TestBossLevel(t *testing.T) {
	cfg := config.DefaultJungleConfig()
	lv := BuildLevel(3, cfg.World, cfg.Boss)

	b, ok := lv.Boss()
	if !ok {
		t.Fatal("level 3 has no boss")
	}
	if b.Health != 100 || b.MaxHealth != 100 || b.Phase != 1 {
		t.Errorf("boss = %+v", b)
	}
	e := lv.Enemies[lv.bossIndex()]
	if e.X != 320 || e.Y != 100 || e.W != 80 || e.H != 80 {
		t.Errorf("boss body = %+v", e.Rect)
	}
	if _, ok := BuildLevel(1, cfg.World, cfg.Boss).Boss(); ok {
		t.Error("level 1 should not have a boss")
	}
}

func TestLevelCatalog(t *testing.T) {
	levels := Levels()
	if len(levels) != LevelCount {
		t.Fatalf("Levels() = %d entries", len(levels))
	}
	for i, l := range levels {
		if l.Number != i+1 || l.Name == "" || l.Goal == "" {
			t.Errorf("catalog entry %d = %+v", i, l)
		}
	}
	levels[0].Name = "changed"
	if Levels()[0].Name == "changed" {
		t.Error("Levels() exposes internal storage")
	}
}
