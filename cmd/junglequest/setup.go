package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/core"
	"github.com/vovakirdan/jungle-quest/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// newFileLogger logs to path while the TUI owns the terminal. The returned
// closer must be called on exit. An unusable path disables logging.
func newFileLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "junglequest",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// loadGameConfig resolves the tuning file and applies the difficulty preset.
func loadGameConfig(logger *log.Logger) (config.JungleConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.JungleConfig{}, err
	}

	cfg, source, err := config.LoadJungleWithSource(flagConfig)
	if err != nil {
		return config.JungleConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Info("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}

// openStore opens the database, returning nil when it is unavailable so the
// game can run without saves.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, saves disabled", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
