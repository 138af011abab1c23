package jungle

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/core"
)

// DefaultSlot is the save slot used when none is configured.
const DefaultSlot = "default"

// Game is one Jungle Quest session. It owns the state, the current level and
// the schedule of deferred effects. A Game is not safe for concurrent use;
// the platform drives it from a single loop.
type Game struct {
	cfg    config.JungleConfig
	logger *log.Logger
	clock  core.Clock
	cues   CuePlayer
	store  ProgressStore
	scores ScoreRecorder
	slot   string

	state State
	level *Level
	sched Schedule

	last    time.Time     // clock reading at the previous Step
	elapsed time.Duration // unpaused playing time, drives timers and events
	frame   uint64

	pendingGameOver bool
	recorded        bool // final score already handed to the ScoreRecorder
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock sets the wall-time source.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithCuePlayer sets the sound cue sink.
func WithCuePlayer(p CuePlayer) Option {
	return func(g *Game) {
		if p != nil {
			g.cues = p
		}
	}
}

// WithStore enables saving and continuing progress.
func WithStore(s ProgressStore) Option {
	return func(g *Game) { g.store = s }
}

// WithScores enables recording finished runs.
func WithScores(r ScoreRecorder) Option {
	return func(g *Game) { g.scores = r }
}

// WithSlot selects the save slot.
func WithSlot(slot string) Option {
	return func(g *Game) {
		if slot != "" {
			g.slot = slot
		}
	}
}

// New creates a session on the main menu.
func New(cfg config.JungleConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
		clock:  core.SystemClock{},
		cues:   silentCues{},
		slot:   DefaultSlot,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.last = g.clock.Now()
	g.start(1, Progress{Lives: cfg.Player.Lives})
	g.state.Screen = ScreenMenu
	return g
}

// StepResult summarizes one call to Step.
type StepResult struct {
	State        State
	LevelChanged bool // a new level was built this frame
	Finished     bool // the run ended this frame (game over or won)
}

// Step advances the session by one frame. Outside of ScreenPlaying, and while
// paused, no pipeline stage runs.
func (g *Game) Step(in core.InputFrame) StepResult {
	now := g.clock.Now()
	dt := max(0, now.Sub(g.last))
	g.last = now

	if in.Has(core.ActionRestart) && g.state.Screen.Terminal() {
		g.NewGame()
		return StepResult{State: g.state, LevelChanged: true}
	}
	if g.state.Screen != ScreenPlaying {
		return StepResult{State: g.state}
	}

	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return StepResult{State: g.state}
	}

	g.elapsed += dt
	g.frame++
	level := g.state.Level

	// Input and physics
	if integratePlayer(&g.state.Player, in, g.cfg.Physics, g.cfg.World) {
		g.play(CueJump)
	}

	// Behavior
	g.updateEnemies(g.elapsed.Seconds())
	g.updateScenery()

	// Resource
	g.updateEnergy(in)

	// Collision
	landOnPlatforms(&g.state.Player, g.level.Platforms)
	g.collectPickups()
	g.resolveContacts()
	g.resolveBoss(float64(dt) / float64(time.Millisecond))

	// Progression
	g.progress()

	return StepResult{
		State:        g.state,
		LevelChanged: g.state.Level != level && g.state.Screen == ScreenPlaying,
		Finished:     g.state.Screen.Terminal(),
	}
}

// NewGame starts a fresh run on level 1 and saves it.
func (g *Game) NewGame() {
	g.start(1, Progress{Lives: g.cfg.Player.Lives})
	g.logger.Info("new game", "slot", g.slot)
	g.save()
}

// SelectLevel starts a fresh run on level n. Unknown levels start level 1.
func (g *Game) SelectLevel(n int) {
	if !ValidLevel(n) || n > g.lastLevel() {
		g.logger.Warn("invalid level, starting level 1", "level", n)
		n = 1
	}
	g.start(n, Progress{Lives: g.cfg.Player.Lives})
	g.logger.Info("level selected", "level", n, "slot", g.slot)
	g.save()
}

// Continue resumes the saved run in the current slot. A missing or unreadable
// save starts a new game instead.
func (g *Game) Continue() {
	if g.store == nil {
		g.NewGame()
		return
	}

	p, err := g.store.LoadProgress(g.slot)
	if err != nil {
		if errors.Is(err, ErrNoProgress) {
			g.logger.Debug("no saved progress", "slot", g.slot)
		} else {
			g.logger.Warn("cannot load progress, starting new game", "slot", g.slot, "err", err)
		}
		g.NewGame()
		return
	}

	if p.Lives <= 0 {
		p.Lives = g.cfg.Player.Lives
	}
	if !ValidLevel(p.Level) || p.Level > g.lastLevel() {
		g.logger.Warn("saved level out of range, using level 1", "level", p.Level)
		p.Level = 1
	}
	p.Score = max(0, p.Score)
	p.Bananas = max(0, p.Bananas)
	p.Keys = max(0, p.Keys)

	g.start(p.Level, p)
	g.logger.Info("continue", "slot", g.slot, "level", p.Level, "score", p.Score)
}

// ReturnToMenu leaves the current run without saving.
func (g *Game) ReturnToMenu() {
	g.state.Screen = ScreenMenu
	g.state.Paused = false
	g.sched.Reset()
	g.pendingGameOver = false
}

// start resets the session to the beginning of level n with the given progress.
func (g *Game) start(n int, p Progress) {
	g.state = State{
		Score:    p.Score,
		Lives:    p.Lives,
		Bananas:  p.Bananas,
		Keys:     p.Keys,
		Energy:   core.ClampF(g.cfg.Energy.Start, 0, g.cfg.Energy.Max),
		Timeline: TimelinePresent,
		Screen:   ScreenPlaying,
	}
	g.recorded = false
	g.last = g.clock.Now()
	g.loadLevel(n)
}

// loadLevel replaces the current level and puts the player on the spawn point.
func (g *Game) loadLevel(n int) {
	g.level = BuildLevel(n, g.cfg.World, g.cfg.Boss)
	g.state.Level = g.level.Number
	g.state.Player = Player{
		X: g.cfg.Player.SpawnX,
		Y: g.cfg.Player.SpawnY,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.sched.Reset()
	g.pendingGameOver = false
}

func (g *Game) lastLevel() int {
	return core.Clamp(g.cfg.Progression.Levels, 1, LevelCount)
}

// Progress returns the persisted view of the current state.
func (g *Game) Progress() Progress {
	return Progress{
		Score:   g.state.Score,
		Lives:   g.state.Lives,
		Level:   g.state.Level,
		Bananas: g.state.Bananas,
		Keys:    g.state.Keys,
	}
}

func (g *Game) save() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveProgress(g.slot, g.Progress()); err != nil {
		g.logger.Warn("cannot save progress", "slot", g.slot, "err", err)
	}
}

// play forwards a cue, shielding the simulation from a misbehaving player.
func (g *Game) play(c Cue) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("cue player panicked", "cue", c, "panic", r)
		}
	}()
	g.cues.Play(c)
}

// State returns a copy of the session state.
func (g *Game) State() State {
	return g.state
}

// Screen returns the current top-level screen.
func (g *Game) Screen() Screen {
	return g.state.Screen
}

// Slot returns the save slot name.
func (g *Game) Slot() string {
	return g.slot
}

// Frame returns the number of simulated frames since the session was created.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Elapsed returns the unpaused playing time.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.JungleConfig {
	return g.cfg
}
