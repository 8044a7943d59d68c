package game

import (
	"time"
)

type Judgement uint8

const (
	Hit Judgement = iota
	Miss
)

func (j Judgement) String() string {
	switch j {
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	}
	return "Unknown"
}

// Tick is what a single update did to the playfield
type Tick struct {
	Spawned []*Note
	Hits    []*Note
	Misses  []*Note
}

func (t Tick) Judged() int {
	return len(t.Hits) + len(t.Misses)
}

type State uint8

const (
	Idle State = iota
	Running
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Ended:
		return "Ended"
	}
	return "Unknown"
}

// Frame is a read-only copy of everything needed to draw a session
type Frame struct {
	Notes    []Note
	Keys     KeyState
	Score    int
	Misses   int
	Elapsed  time.Duration
	Energy   float64
	EnergyOK bool // Energy holds a real sample
	State    State
}
