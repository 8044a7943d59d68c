package input

import (
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
)

// Latch turns bare key presses into press and release pairs. A lane stays
// held until hold has passed without another press, key repeat keeps it held.
type Latch struct {
	hold  time.Duration
	until [game.NLanes]time.Time
	held  game.KeyState
}

func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold}
}

// Press holds lane and reports whether it was released before
func (l *Latch) Press(lane game.Lane, now time.Time) bool {
	if !lane.Valid() {
		return false
	}
	l.until[lane] = now.Add(l.hold)
	if l.held[lane] {
		return false
	}
	l.held[lane] = true
	return true
}

// Expire releases and returns every lane whose hold ran out by now
func (l *Latch) Expire(now time.Time) []game.Lane {
	var released []game.Lane
	for i := range l.held {
		if l.held[i] && !now.Before(l.until[i]) {
			l.held[i] = false
			released = append(released, game.Lane(i))
		}
	}
	return released
}

func (l *Latch) Reset() {
	l.held = game.KeyState{}
}
