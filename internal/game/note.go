package game

import (
	"time"
)

type Note struct {
	Lane    Lane
	Created time.Duration // Playback time the note was spawned at
	Beat    bool          // Spawned by an energy spike rather than the cadence

	// This is state
	Y           float64       // Distance fallen from the top of the playfield
	Scale       float64       // Render scale, above 1 while bouncing
	BounceUntil time.Duration // Playback time the bounce ends
}

func (note *Note) Emphasized() bool {
	return note.Scale > 1
}

// Band is an inclusive range of playfield positions
type Band struct {
	Low, High float64
}

func (b Band) Contains(y float64) bool {
	return y >= b.Low && y <= b.High
}
