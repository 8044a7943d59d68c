package field

import (
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
)

// Field owns the notes falling down the playfield
type Field interface {
	// Spawn creates the notes due at now, ok is false when no energy sample exists
	Spawn(now time.Duration, energy float64, ok bool) []*game.Note

	// Advance moves every note down and returns the ones that fell off the bottom
	Advance(now time.Duration) []*game.Note

	Notes() []*game.Note
	Replace(notes []*game.Note)

	// Reset drops every note and restarts the spawn cadence at now
	Reset(now time.Duration)
}

type Settings struct {
	Interval    time.Duration // Time between cadence notes
	High        float64       // Energy that spawns a beat note
	Low         float64       // Energy that rearms the beat trigger
	Speed       float64       // Distance a note falls per update
	Depth       float64       // Bottom edge of the playfield
	Bounce      time.Duration // How long a beat note stays emphasized
	BounceScale float64
}

func DefaultSettings() Settings {
	return Settings{
		Interval:    650 * time.Millisecond,
		High:        0.3,
		Low:         0.2,
		Speed:       5,
		Depth:       600,
		Bounce:      100 * time.Millisecond,
		BounceScale: 1.5,
	}
}
