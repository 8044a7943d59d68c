package field

import (
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
)

type DefaultField struct {
	settings Settings
	rng      *rand.Rand

	notes       []*game.Note
	lastSpawn   time.Duration
	beatHandled bool // Set while the energy stays above Low after a beat note
}

func New(settings Settings, rng *rand.Rand) *DefaultField {
	return &DefaultField{
		settings: settings,
		rng:      rng,
	}
}

func (f *DefaultField) newNote(now time.Duration) *game.Note {
	note := &game.Note{
		Lane:    game.Lane(f.rng.Intn(game.NLanes)),
		Created: now,
		Scale:   1,
	}
	f.notes = append(f.notes, note)
	return note
}

func (f *DefaultField) Spawn(now time.Duration, energy float64, ok bool) []*game.Note {
	var spawned []*game.Note

	if now-f.lastSpawn > f.settings.Interval {
		spawned = append(spawned, f.newNote(now))
		f.lastSpawn = now
	}

	// A missing sample skips the beat trigger for this tick only
	if !ok || math.IsNaN(energy) {
		return spawned
	}

	if energy > f.settings.High && !f.beatHandled {
		note := f.newNote(now)
		note.Beat = true
		note.BounceUntil = now + f.settings.Bounce
		spawned = append(spawned, note)
		f.beatHandled = true
	}
	if energy < f.settings.Low {
		f.beatHandled = false
	}

	return spawned
}

func (f *DefaultField) Advance(now time.Duration) []*game.Note {
	var missed []*game.Note
	kept := make([]*game.Note, 0, len(f.notes))
	for _, note := range f.notes {
		note.Y += f.settings.Speed
		if now < note.BounceUntil {
			note.Scale = f.settings.BounceScale
		} else {
			note.Scale = 1
		}

		// A note sitting exactly on the edge is still in the hit zone
		if note.Y > f.settings.Depth {
			missed = append(missed, note)
			continue
		}
		kept = append(kept, note)
	}
	f.notes = kept
	return missed
}

func (f *DefaultField) Notes() []*game.Note {
	return f.notes
}

func (f *DefaultField) Replace(notes []*game.Note) {
	f.notes = notes
}

func (f *DefaultField) Reset(now time.Duration) {
	f.notes = nil
	f.lastSpawn = now
	f.beatHandled = false
}
