// Package storage provides SQLite-based persistence for save slots and high
// scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

// ErrNoProgress is returned by LoadProgress when the slot was never saved.
var ErrNoProgress = jungle.ErrNoProgress

// progressVersion is bumped when progressRecord changes incompatibly.
const progressVersion = 1

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	Level     int
	Bananas   int
	Won       bool
	CreatedAt time.Time
}

// SlotInfo describes a saved slot.
type SlotInfo struct {
	Slot      string
	Progress  jungle.Progress
	UpdatedAt time.Time
}

// progressRecord is the msgpack layout of a save slot blob.
type progressRecord struct {
	Version int `msgpack:"v"`
	Score   int `msgpack:"score"`
	Lives   int `msgpack:"lives"`
	Level   int `msgpack:"level"`
	Bananas int `msgpack:"bananas"`
	Keys    int `msgpack:"keys"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			slot TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			bananas INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProgress stores p in slot, replacing any previous record.
func (s *Store) SaveProgress(slot string, p jungle.Progress) error {
	data, err := msgpack.Marshal(progressRecord{
		Version: progressVersion,
		Score:   p.Score,
		Lives:   p.Lives,
		Level:   p.Level,
		Bananas: p.Bananas,
		Keys:    p.Keys,
	})
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO progress (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		slot, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// LoadProgress reads the record in slot. It returns ErrNoProgress when the
// slot is empty and a decode error when the blob is unreadable.
func (s *Store) LoadProgress(slot string) (jungle.Progress, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM progress WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return jungle.Progress{}, ErrNoProgress
	}
	if err != nil {
		return jungle.Progress{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return decodeProgress(slot, data)
}

func decodeProgress(slot string, data []byte) (jungle.Progress, error) {
	var rec progressRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return jungle.Progress{}, fmt.Errorf("storage: corrupt progress in slot %q: %w", slot, err)
	}
	if rec.Version != progressVersion {
		return jungle.Progress{}, fmt.Errorf("storage: slot %q has unsupported version %d", slot, rec.Version)
	}
	return jungle.Progress{
		Score:   rec.Score,
		Lives:   rec.Lives,
		Level:   rec.Level,
		Bananas: rec.Bananas,
		Keys:    rec.Keys,
	}, nil
}

// ClearProgress deletes the record in slot. Clearing an empty slot is not an error.
func (s *Store) ClearProgress(slot string) error {
	if _, err := s.db.Exec("DELETE FROM progress WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// Slots lists every saved slot, most recently updated first. Unreadable
// records are skipped.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query("SELECT slot, data, updated_at FROM progress ORDER BY updated_at DESC, slot")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var (
			info      SlotInfo
			data      []byte
			updatedAt any
		)
		if err := rows.Scan(&info.Slot, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p, err := decodeProgress(info.Slot, data)
		if err != nil {
			continue
		}
		info.Progress = p
		info.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return slots, nil
}

// RecordScore implements jungle.ScoreRecorder.
func (s *Store) RecordScore(r jungle.Result) error {
	player := r.Player
	if player == "" {
		player = jungle.DefaultSlot
	}
	_, err := s.SaveScore(ScoreEntry{
		Player:  player,
		Score:   r.Score,
		Level:   r.Level,
		Bananas: r.Bananas,
		Won:     r.Won,
	})
	return err
}

// SaveScore records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, score, level, bananas, won) VALUES (?, ?, ?, ?, ?)",
		e.Player, e.Score, e.Level, e.Bananas, e.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, level, bananas, won, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Level, &e.Bananas, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes every recorded score.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores`,
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ jungle.ProgressStore = (*Store)(nil)
	_ jungle.ScoreRecorder = (*Store)(nil)
)
