package input

import (
	"git.lost.host/meutraa/notefall/internal/game"
)

type Control uint8

const (
	None Control = iota
	Quit
	Start
	VolumeUp
	VolumeDown
)

// Event is either a lane key changing state or a control key press
type Event struct {
	Control Control
	Lane    game.Lane
	Pressed bool
	Err     error
}

func (e Event) IsLane() bool {
	return e.Control == None && nil == e.Err
}

type Source interface {
	Events() <-chan Event

	// Whether the source reports key releases, if not presses must be latched
	Releases() bool

	Close() error
}

// Lanes maps a key rune to the lane it plays
type Lanes func(r rune) (game.Lane, bool)
