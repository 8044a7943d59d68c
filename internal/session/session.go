package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/notefall/internal/field"
	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/score"
)

var (
	ErrNotIdle    = errors.New("session is not idle")
	ErrNotRunning = errors.New("session is not running")
)

// Track is the music being played, it doubles as the clock and energy source
type Track interface {
	Play() error
	Position() time.Duration

	// Energy of the most recent audio window, false until the first window is full
	Energy() (float64, bool)

	Close() error
}

type Loader func(ctx context.Context) (Track, error)

// Surface receives a frame to draw
type Surface interface {
	Draw(frame game.Frame)
}

type Settings struct {
	Reward    int // Points per hit note
	MissLimit int // Misses that end the session
}

func DefaultSettings() Settings {
	return Settings{
		Reward:    10,
		MissLimit: 15,
	}
}

type Session struct {
	settings Settings
	field    field.Field
	scorer   score.Scorer

	state  game.State
	score  int
	misses int
	track  Track
}

func New(settings Settings, f field.Field, s score.Scorer) *Session {
	return &Session{
		settings: settings,
		field:    f,
		scorer:   s,
	}
}

// Start loads the track and begins playing, a failed load leaves the session idle
func (s *Session) Start(ctx context.Context, load Loader) error {
	if s.state != game.Idle {
		return ErrNotIdle
	}

	track, err := load(ctx)
	if nil != err {
		return fmt.Errorf("unable to load track: %w", err)
	}
	if err := ctx.Err(); nil != err {
		track.Close()
		return err
	}
	if err := track.Play(); nil != err {
		track.Close()
		return fmt.Errorf("unable to play track: %w", err)
	}

	s.track = track
	s.score = 0
	s.misses = 0
	s.scorer.Reset()
	s.field.Reset(track.Position())
	s.state = game.Running
	log.Println("session started")
	return nil
}

func (s *Session) Update() game.Tick {
	var tick game.Tick
	if s.state != game.Running {
		return tick
	}

	now := s.track.Position()
	energy, ok := s.track.Energy()

	tick.Spawned = s.field.Spawn(now, energy, ok)

	tick.Misses = s.field.Advance(now)
	s.misses += len(tick.Misses)

	remaining, hits := s.scorer.CheckHits(s.field.Notes())
	s.field.Replace(remaining)
	tick.Hits = hits
	s.score += len(hits) * s.settings.Reward

	if s.misses >= s.settings.MissLimit {
		log.Printf("session ended after %v misses with score %v\n", s.misses, s.score)
		s.end()
	}
	return tick
}

func (s *Session) end() {
	s.state = game.Ended
	if nil != s.track {
		if err := s.track.Close(); nil != err {
			log.Println("unable to close track", err)
		}
	}
}

// Stop ends a running session early
func (s *Session) Stop() error {
	if s.state != game.Running {
		return ErrNotRunning
	}
	s.end()
	return nil
}

// Reset returns an ended session to idle so it can be started again
func (s *Session) Reset() {
	if s.state == game.Running {
		s.end()
	}
	s.track = nil
	s.state = game.Idle
}

func (s *Session) SetKeyState(lane game.Lane, pressed bool) {
	if !s.scorer.SetKeyState(lane, pressed) {
		log.Println("ignoring key state for lane", lane)
	}
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Misses() int {
	return s.misses
}

func (s *Session) State() game.State {
	return s.state
}

func (s *Session) Frame() game.Frame {
	notes := s.field.Notes()
	frame := game.Frame{
		Notes:  make([]game.Note, len(notes)),
		Keys:   s.scorer.Keys(),
		Score:  s.score,
		Misses: s.misses,
		State:  s.state,
	}
	for i, n := range notes {
		frame.Notes[i] = *n
	}
	if nil != s.track {
		frame.Elapsed = s.track.Position()
		frame.Energy, frame.EnergyOK = s.track.Energy()
	}
	return frame
}

func (s *Session) Render(surface Surface) {
	surface.Draw(s.Frame())
}
