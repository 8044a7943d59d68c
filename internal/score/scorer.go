package score

import (
	"git.lost.host/meutraa/notefall/internal/game"
)

type Scorer interface {
	// Record the instantaneous state of a lane key, false if the lane does not exist
	SetKeyState(lane game.Lane, pressed bool) bool
	Keys() game.KeyState

	// Split notes into those still falling and those hit this tick
	CheckHits(notes []*game.Note) (remaining, hit []*game.Note)

	// Release every lane
	Reset()
}

// DefaultZone is the hit zone of a 600 unit deep playfield
var DefaultZone = game.Band{Low: 550, High: 600}
