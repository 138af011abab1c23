package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-quest/internal/audio"
	"github.com/vovakirdan/jungle-quest/internal/jungle"
	"github.com/vovakirdan/jungle-quest/internal/platform/tui"
)

var (
	flagLevel    int
	flagContinue bool
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start playing right away",
	Long: `Start a run without going through the main menu.

Controls:
  A/D, Left/Right  - Run
  W, Up, Space     - Jump
  1                - Quantum scan (highlights collectibles)
  2                - Time jump (1994 -> 2026 -> 2048)
  3                - Entangle (bonus for pairs of remaining items)
  P                - Pause
  Esc/B            - Back to menu (when paused or the run is over)
  R                - Restart (after game over or victory)
  Q/Ctrl+C         - Quit

Examples:
  junglequest play
  junglequest play --level 3
  junglequest play --continue
  junglequest play --difficulty easy --mute
  junglequest play --config ./my-jungle.yaml`,
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the main menu",
	Long:  `Open the main menu to continue, start a new game, pick a level or view high scores.`,
	RunE:  runMenu,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level (1-4)")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Resume the saved run")
	playCmd.MarkFlagsMutuallyExclusive("level", "continue")

	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	opts := tui.Options{Start: tui.StartNew}
	switch {
	case flagContinue:
		opts.Start = tui.StartContinue
	case flagLevel != 0:
		if !jungle.ValidLevel(flagLevel) {
			return fmt.Errorf("level must be between 1 and %d, got %d", jungle.LevelCount, flagLevel)
		}
		opts.Start = tui.StartLevel
		opts.Level = flagLevel
	}
	return runSession(opts)
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runSession(tui.Options{Start: tui.StartMenu})
}

// runSession wires config, storage, audio and logging into one local app run.
func runSession(opts tui.Options) error {
	logger, closeLog := newFileLogger(flagLogFile)
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if !flagMute {
		player := audio.NewPlayer(logger)
		if err := player.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
		if player.Enabled() {
			defer player.Close()
			opts.Cues = player
		}
	}

	opts.Config = cfg
	opts.Runtime = runtimeConfig()
	opts.Store = store
	opts.Logger = logger
	opts.Slot = jungle.DefaultSlot

	logger.Info("session starting", "start", opts.Start, "level", opts.Level)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
