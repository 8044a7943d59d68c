package testdata

import (
	"context"
	"errors"
	"time"
)

var ErrLoad = errors.New("track failed to load")

// Track is a scripted stand-in for a playing song
type Track struct {
	Now       time.Duration
	Level     float64
	Available bool
	PlayErr   error
	Finished  bool

	Playing bool
	Closed  int
	Gain    float64
}

func (t *Track) Play() error {
	if nil != t.PlayErr {
		return t.PlayErr
	}
	t.Playing = true
	return nil
}

func (t *Track) Position() time.Duration {
	return t.Now
}

func (t *Track) Energy() (float64, bool) {
	return t.Level, t.Available
}

func (t *Track) Close() error {
	t.Playing = false
	t.Closed++
	return nil
}

func (t *Track) Done() bool {
	return t.Finished
}

func (t *Track) SetGain(gain float64) {
	t.Gain = gain
}

// Step moves the clock forward by one frame
func (t *Track) Step(d time.Duration) {
	t.Now += d
}

type Loader struct {
	Track *Track
	Err   error
	Calls int
}

// Load satisfies the session loader signature
func (l *Loader) Load(ctx context.Context) (*Track, error) {
	l.Calls++
	if nil != l.Err {
		return nil, l.Err
	}
	return l.Track, nil
}
