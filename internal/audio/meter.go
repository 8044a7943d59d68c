package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
)

// WindowSize is the number of frames each energy reading covers
const WindowSize = 256

// Meter passes audio through untouched while measuring it.
// Energy is the sum of squared mono samples over the last full window.
type Meter struct {
	Streamer beep.Streamer

	mu       sync.Mutex
	rate     beep.SampleRate
	streamed int // Frames passed through so far

	sum    float64
	filled int
	energy float64
	ready  bool
	done   bool
}

func NewMeter(s beep.Streamer, rate beep.SampleRate) *Meter {
	return &Meter{Streamer: s, rate: rate}
}

func (m *Meter) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = m.Streamer.Stream(samples)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range samples[:n] {
		mono := (s[0] + s[1]) / 2
		m.sum += mono * mono
		m.filled++
		if m.filled == WindowSize {
			m.energy = m.sum
			m.ready = true
			m.sum = 0
			m.filled = 0
		}
	}
	m.streamed += n
	if !ok {
		m.done = true
	}
	return n, ok
}

// Done reports whether the underlying audio has run out
func (m *Meter) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

func (m *Meter) Err() error {
	return m.Streamer.Err()
}

// Energy of the last full window, false until one has been measured
func (m *Meter) Energy() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.energy, m.ready
}

// Position is the playback time of the audio streamed so far
func (m *Meter) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate.D(m.streamed)
}
