package jungle

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/core"
)

const frame = 16 * time.Millisecond

// cueLog records played cues.
type cueLog struct {
	cues []Cue
}

func (c *cueLog) Play(cue Cue) { c.cues = append(c.cues, cue) }

func (c *cueLog) count(cue Cue) int {
	n := 0
	for _, x := range c.cues {
		if x == cue {
			n++
		}
	}
	return n
}

// panickyCues simulates a lost audio device.
type panickyCues struct{}

func (panickyCues) Play(Cue) { panic("device lost") }

// memStore is an in-memory ProgressStore and ScoreRecorder.
type memStore struct {
	slots   map[string]Progress
	results []Result
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{slots: make(map[string]Progress)}
}

func (m *memStore) SaveProgress(slot string, p Progress) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.slots[slot] = p
	return nil
}

func (m *memStore) LoadProgress(slot string) (Progress, error) {
	if m.loadErr != nil {
		return Progress{}, m.loadErr
	}
	p, ok := m.slots[slot]
	if !ok {
		return Progress{}, ErrNoProgress
	}
	return p, nil
}

func (m *memStore) RecordScore(r Result) error {
	m.results = append(m.results, r)
	return nil
}

var errBroken = errors.New("broken record")

type harness struct {
	game  *Game
	clock *core.ManualClock
	cues  *cueLog
	store *memStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock: core.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		cues:  &cueLog{},
		store: newMemStore(),
	}
	h.game = New(config.DefaultJungleConfig(),
		WithClock(h.clock),
		WithCuePlayer(h.cues),
		WithStore(h.store),
		WithScores(h.store),
	)
	return h
}

// step advances the clock by one frame and steps the game.
func (h *harness) step(actions ...core.Action) StepResult {
	h.clock.Advance(frame)
	return h.game.Step(core.NewInputFrame(actions...))
}

// steps runs n idle frames.
func (h *harness) steps(n int) {
	for range n {
		h.step()
	}
}

// standOnGround puts the player at rest on level 1 or 3 ground, left of every enemy.
func (h *harness) standOnGround() {
	h.game.state.Player.X = 0
	h.game.state.Player.Y = 340
	h.game.state.Player.VX = 0
	h.game.state.Player.VY = 0
	h.game.state.Player.Airborne = false
}

func (h *harness) boss(t *testing.T) *Enemy {
	t.Helper()
	i := h.game.level.bossIndex()
	if i < 0 {
		t.Fatal("level has no boss")
	}
	return &h.game.level.Enemies[i]
}

func (h *harness) setBoss(t *testing.T, fn func(*Boss)) {
	t.Helper()
	e := h.boss(t)
	b := e.Brain.(Boss)
	fn(&b)
	e.Brain = b
}
