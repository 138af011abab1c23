package jungle

import (
	"testing"
	"time"

	"github.com/vovakirdan/jungle-quest/internal/core"
)

// collectKeys walks the player over the three level 1 keys.
func (h *harness) collectKeys(t *testing.T) {
	t.Helper()
	for _, c := range h.game.level.Collectibles {
		if c.Kind != KindKey {
			continue
		}
		h.game.state.Player.X = c.X
		h.game.state.Player.Y = c.Y - 10
		h.game.state.Player.VX = 0
		h.game.state.Player.VY = 0
		h.step()
	}
	if h.game.state.Keys != 3 {
		t.Fatalf("keys = %d after walking over them", h.game.state.Keys)
	}
}

func TestLevelOneCompletesAfterGrace(t *testing.T) {
	h := newHarness(t)
	h.game.NewGame()
	h.collectKeys(t)
	scoreBefore := h.game.state.Score
	if scoreBefore != 300 {
		t.Fatalf("score after keys = %d, expected 300", scoreBefore)
	}

	// still inside the grace delay
	for range 30 {
		h.standOnGround()
		h.step()
	}
	if h.game.state.Level != 1 {
		t.Fatalf("level changed to %d before the grace delay elapsed", h.game.state.Level)
	}

	var changed bool
	for range 40 {
		h.standOnGround()
		if res := h.step(); res.LevelChanged {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("no level change reported within the grace delay")
	}
	if h.game.state.Level != 2 || h.game.Screen() != ScreenPlaying {
		t.Fatalf("level = %d screen = %v, expected playing level 2", h.game.state.Level, h.game.Screen())
	}
	if h.game.state.Score != scoreBefore+1000 {
		t.Errorf("score = %d, expected %d", h.game.state.Score, scoreBefore+1000)
	}
	if got := h.store.slots[DefaultSlot]; got.Level != 2 || got.Score != 1300 {
		t.Errorf("saved progress = %+v, expected level 2 score 1300", got)
	}
	p := h.game.state.Player
	if p.X != 50 || p.Y != 300 || p.VX != 0 || p.VY != 0 || p.Airborne {
		t.Errorf("player not reset to spawn: %+v", p)
	}
}

func TestCompletionScheduledOnce(t *testing.T) {
	h := newHarness(t)
	h.game.NewGame()
	h.collectKeys(t)

	for range 10 {
		h.standOnGround()
		h.step()
	}
	n := 0
	for _, e := range h.game.sched.events {
		if e.Kind == EventCompleteLevel {
			n++
		}
	}
	if n != 1 {
		t.Errorf("pending completions = %d, expected 1", n)
	}
}

func TestLevelTwoCompletion(t *testing.T) {
	h := newHarness(t)
	h.game.SelectLevel(2)
	for i := range h.game.level.Collectibles[:7] {
		h.game.level.Collectibles[i].Collected = true
	}
	h.step()
	if h.game.sched.Pending(EventCompleteLevel) {
		t.Fatal("completion scheduled with a fragment left")
	}

	h.game.level.Collectibles[7].Collected = true
	h.step()
	if !h.game.sched.Pending(EventCompleteLevel) {
		t.Fatal("completion not scheduled after the last fragment")
	}
}

func TestBossDefeatCompletesLevel(t *testing.T) {
	h := newHarness(t)
	h.game.SelectLevel(3)
	h.setBoss(t, func(b *Boss) { b.Health = 0 })

	h.clock.Advance(time.Second)
	h.step()
	h.clock.Advance(time.Second)
	h.step()

	if h.game.state.Level != 4 {
		t.Errorf("level = %d, expected 4 after the boss falls", h.game.state.Level)
	}
}

func TestFinalLevelWins(t *testing.T) {
	h := newHarness(t)
	h.game.SelectLevel(4)
	h.game.state.Score = 500
	for i := range h.game.level.Collectibles {
		h.game.level.Collectibles[i].Collected = true
	}

	h.step()
	h.clock.Advance(1100 * time.Millisecond)
	res := h.step()

	if h.game.Screen() != ScreenWon {
		t.Fatalf("screen = %v, expected won", h.game.Screen())
	}
	if h.game.state.Level != 4 {
		t.Errorf("level = %d, expected to stay at 4", h.game.state.Level)
	}
	if h.game.state.Score != 1500 {
		t.Errorf("score = %d, expected 1500", h.game.state.Score)
	}
	if !res.Finished || res.LevelChanged {
		t.Errorf("result = %+v, expected finished without level change", res)
	}
	if len(h.store.results) != 1 || !h.store.results[0].Won {
		t.Errorf("results = %+v, expected one winning run", h.store.results)
	}
}

func TestTerminalScreensFreeze(t *testing.T) {
	h := newHarness(t)
	h.game.NewGame()
	h.game.state.Lives = 0
	h.game.pendingGameOver = true
	h.step()
	if h.game.Screen() != ScreenGameOver {
		t.Fatalf("screen = %v", h.game.Screen())
	}

	before := h.game.State()
	frames := h.game.Frame()
	h.step()
	if h.game.State() != before || h.game.Frame() != frames {
		t.Error("Step changed a finished game")
	}

	h.step(core.ActionRestart)
	if h.game.Screen() != ScreenPlaying || h.game.state.Lives != 3 || h.game.state.Score != 0 {
		t.Errorf("restart did not start a new game: %+v", h.game.State())
	}
}

func TestSelectLevel(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {0, 1}, {5, 1}, {-3, 1},
	}
	for _, tc := range tests {
		h := newHarness(t)
		h.game.SelectLevel(tc.in)
		if h.game.state.Level != tc.want || h.game.Screen() != ScreenPlaying {
			t.Errorf("SelectLevel(%d): level %d screen %v", tc.in, h.game.state.Level, h.game.Screen())
		}
		if h.game.state.Score != 0 || h.game.state.Lives != 3 {
			t.Errorf("SelectLevel(%d) should start fresh: %+v", tc.in, h.game.State())
		}
	}
}

func TestContinue(t *testing.T) {
	tests := []struct {
		name    string
		saved   *Progress
		loadErr error
		want    Progress
	}{
		{
			name:  "saved run",
			saved: &Progress{Score: 2400, Lives: 2, Level: 3, Bananas: 7, Keys: 3},
			want:  Progress{Score: 2400, Lives: 2, Level: 3, Bananas: 7, Keys: 3},
		},
		{
			name:  "no lives left",
			saved: &Progress{Score: 100, Lives: -4, Level: 2},
			want:  Progress{Score: 100, Lives: 3, Level: 2},
		},
		{
			name:  "level out of range",
			saved: &Progress{Score: 100, Lives: 1, Level: 9},
			want:  Progress{Score: 100, Lives: 1, Level: 1},
		},
		{
			name: "nothing saved",
			want: Progress{Lives: 3, Level: 1},
		},
		{
			name:    "corrupt record",
			loadErr: errBroken,
			want:    Progress{Lives: 3, Level: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			if tc.saved != nil {
				h.store.slots[DefaultSlot] = *tc.saved
			}
			h.store.loadErr = tc.loadErr

			h.game.Continue()

			if got := h.game.Progress(); got != tc.want {
				t.Errorf("progress = %+v, expected %+v", got, tc.want)
			}
			if h.game.Screen() != ScreenPlaying {
				t.Errorf("screen = %v, expected playing", h.game.Screen())
			}
			if h.game.level.Number != tc.want.Level {
				t.Errorf("built level %d, expected %d", h.game.level.Number, tc.want.Level)
			}
		})
	}
}

func TestSaveFailureIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.store.saveErr = errBroken

	h.game.NewGame()
	if h.store.saves != 1 {
		t.Errorf("saves attempted = %d, expected 1", h.store.saves)
	}
	if h.game.Screen() != ScreenPlaying {
		t.Errorf("screen = %v, a failed save should not stop the game", h.game.Screen())
	}
}

func TestReturnToMenu(t *testing.T) {
	h := newHarness(t)
	h.game.NewGame()
	h.step(core.ActionPause)
	h.game.ReturnToMenu()

	if h.game.Screen() != ScreenMenu || h.game.state.Paused {
		t.Errorf("screen = %v paused = %v", h.game.Screen(), h.game.state.Paused)
	}
	frames := h.game.Frame()
	h.step()
	if h.game.Frame() != frames {
		t.Error("menu screen ran the pipeline")
	}
}
