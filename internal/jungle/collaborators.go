package jungle

import "errors"

// Cue is a named one-shot sound event.
type Cue string

const (
	CueJump    Cue = "jump"
	CueCollect Cue = "collect"
	CueHit     Cue = "hit"
)

// CuePlayer plays sound cues. Play must not block the caller for long.
type CuePlayer interface {
	Play(c Cue)
}

type silentCues struct{}

func (silentCues) Play(Cue) {}

// ErrNoProgress is returned by a ProgressStore when a slot has never been saved.
var ErrNoProgress = errors.New("no saved progress")

// ProgressStore persists one progress record per named slot.
type ProgressStore interface {
	SaveProgress(slot string, p Progress) error
	LoadProgress(slot string) (Progress, error)
}

// ScoreRecorder keeps finished runs.
type ScoreRecorder interface {
	RecordScore(r Result) error
}
