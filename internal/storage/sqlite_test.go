package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.junglequest/jungle.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".junglequest", "jungle.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	store := openTestStore(t)
	want := jungle.Progress{Score: 2350, Lives: 2, Level: 3, Bananas: 9, Keys: 3}

	if err := store.SaveProgress("default", want); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	got, err := store.LoadProgress("default")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if got != want {
		t.Errorf("LoadProgress() = %+v, expected %+v", got, want)
	}

	// saving again replaces the slot
	want.Level = 4
	if err := store.SaveProgress("default", want); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	got, _ = store.LoadProgress("default")
	if got.Level != 4 {
		t.Errorf("slot not replaced, level = %d", got.Level)
	}
}

func TestProgressSlotsAreIndependent(t *testing.T) {
	store := openTestStore(t)
	store.SaveProgress("alice", jungle.Progress{Score: 10, Lives: 3, Level: 1})
	store.SaveProgress("bob", jungle.Progress{Score: 20, Lives: 1, Level: 2})

	alice, _ := store.LoadProgress("alice")
	bob, _ := store.LoadProgress("bob")
	if alice.Score != 10 || bob.Score != 20 {
		t.Errorf("alice = %+v bob = %+v", alice, bob)
	}

	slots, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots() failed: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("Slots() = %d entries, expected 2", len(slots))
	}
}

func TestLoadProgressMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadProgress("nobody")
	if !errors.Is(err, ErrNoProgress) {
		t.Errorf("LoadProgress() error = %v, expected ErrNoProgress", err)
	}
	if !errors.Is(err, jungle.ErrNoProgress) {
		t.Error("ErrNoProgress should match the game's sentinel")
	}
}

func TestLoadProgressCorrupt(t *testing.T) {
	store := openTestStore(t)

	future, err := msgpack.Marshal(progressRecord{Version: 99, Level: 2})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte{0xc1, 0x00, 0xff}},
		{"unknown version", future},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.db.Exec("INSERT OR REPLACE INTO progress (slot, data) VALUES (?, ?)", tc.name, tc.data); err != nil {
				t.Fatal(err)
			}
			_, err := store.LoadProgress(tc.name)
			if err == nil {
				t.Fatal("LoadProgress() accepted a corrupt record")
			}
			if errors.Is(err, ErrNoProgress) {
				t.Error("corrupt record reported as missing")
			}
		})
	}

	slots, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots() failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("Slots() listed %d corrupt records", len(slots))
	}
}

func TestClearProgress(t *testing.T) {
	store := openTestStore(t)
	store.SaveProgress("default", jungle.Progress{Lives: 3, Level: 2})

	if err := store.ClearProgress("default"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	if _, err := store.LoadProgress("default"); !errors.Is(err, ErrNoProgress) {
		t.Errorf("slot still present after clear: %v", err)
	}
	if err := store.ClearProgress("default"); err != nil {
		t.Errorf("clearing an empty slot failed: %v", err)
	}
}

func TestScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []jungle.Result{
		{Score: 100, Level: 1, Player: "alice"},
		{Score: 4200, Level: 4, Bananas: 10, Won: true, Player: "bob"},
		{Score: 50, Level: 1},
	} {
		if err := store.RecordScore(r); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 4200 || !scores[0].Won || scores[0].Player != "bob" || scores[0].Bananas != 10 {
		t.Errorf("top entry = %+v", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted: %d, %d", scores[1].Score, scores[2].Score)
	}
	if scores[2].Player != jungle.DefaultSlot {
		t.Errorf("anonymous run stored as %q", scores[2].Player)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 25 {
		store.SaveScore(ScoreEntry{Player: "p", Score: i * 10, Level: 1})
	}

	tests := []struct {
		limit, want int
	}{
		{5, 5},
		{0, 10}, // default
		{100, 25},
	}
	for _, tc := range tests {
		scores, err := store.TopScores(tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) = %d entries, expected %d", tc.limit, len(scores), tc.want)
		}
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil || stats.Runs != 0 || stats.HighScore != 0 {
		t.Fatalf("GetStats() on empty store = %+v, %v", stats, err)
	}

	store.RecordScore(jungle.Result{Score: 300, Level: 1})
	store.RecordScore(jungle.Result{Score: 900, Level: 4, Won: true})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.HighScore != 900 || stats.AvgScore != 600 {
		t.Errorf("stats = %+v", stats)
	}

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if stats, _ := store.GetStats(); stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("stats after clear = %+v", stats)
	}
}

func TestGameSavesThroughStore(t *testing.T) {
	store := openTestStore(t)
	g := jungle.New(config.DefaultJungleConfig(), jungle.WithStore(store), jungle.WithSlot("carol"))
	g.SelectLevel(2)

	p, err := store.LoadProgress("carol")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.Level != 2 || p.Lives != 3 {
		t.Errorf("saved progress = %+v", p)
	}

	other := jungle.New(config.DefaultJungleConfig(), jungle.WithStore(store), jungle.WithSlot("carol"))
	other.Continue()
	if other.State().Level != 2 {
		t.Errorf("continued on level %d, expected 2", other.State().Level)
	}
}
