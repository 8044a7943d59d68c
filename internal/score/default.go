package score

import (
	"git.lost.host/meutraa/notefall/internal/game"
)

type DefaultScorer struct {
	zone game.Band
	keys game.KeyState
}

func New(zone game.Band) *DefaultScorer {
	return &DefaultScorer{zone: zone}
}

func (s *DefaultScorer) SetKeyState(lane game.Lane, pressed bool) bool {
	return s.keys.Set(lane, pressed)
}

func (s *DefaultScorer) Keys() game.KeyState {
	return s.keys
}

func (s *DefaultScorer) Reset() {
	s.keys = game.KeyState{}
}

func (s *DefaultScorer) hittable(note *game.Note) bool {
	return s.zone.Contains(note.Y) && s.keys.Pressed(note.Lane)
}

// Key state cannot change within a tick, so every note of a held lane
// inside the zone is consumed together
func (s *DefaultScorer) CheckHits(notes []*game.Note) ([]*game.Note, []*game.Note) {
	remaining := make([]*game.Note, 0, len(notes))
	var hit []*game.Note
	for _, note := range notes {
		if s.hittable(note) {
			hit = append(hit, note)
			continue
		}
		remaining = append(remaining, note)
	}
	return remaining, hit
}
