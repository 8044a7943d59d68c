package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

// constant streams the same stereo sample a fixed number of times
type constant struct {
	left, right float64
	remaining   int
}

func (c *constant) Stream(samples [][2]float64) (n int, ok bool) {
	if c.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if c.remaining == 0 {
			break
		}
		samples[i] = [2]float64{c.left, c.right}
		c.remaining--
		n++
	}
	return n, true
}

func (c *constant) Err() error {
	return nil
}

func TestMeterWarmsUp(t *testing.T) {
	m := NewMeter(&constant{left: 0.5, right: 0.5, remaining: 10000}, beep.SampleRate(44100))

	if _, ok := m.Energy(); ok {
		t.Log("energy before any audio")
		t.Fail()
	}

	buf := make([][2]float64, WindowSize-1)
	m.Stream(buf)
	if _, ok := m.Energy(); ok {
		t.Log("energy before a full window")
		t.Fail()
	}

	m.Stream(buf[:1])
	energy, ok := m.Energy()
	if !ok || math.Abs(energy-WindowSize*0.25) > 1e-9 {
		t.Log("energy", energy, ok)
		t.Fail()
	}
}

func TestMeterMixesToMono(t *testing.T) {
	// Opposite channels cancel out
	m := NewMeter(&constant{left: 0.8, right: -0.8, remaining: WindowSize}, beep.SampleRate(44100))
	m.Stream(make([][2]float64, WindowSize))
	energy, ok := m.Energy()
	if !ok || energy != 0 {
		t.Log("energy", energy, ok)
		t.Fail()
	}
}

func TestMeterPassesAudioThrough(t *testing.T) {
	m := NewMeter(&constant{left: 0.1, right: 0.2, remaining: 100}, beep.SampleRate(1000))
	buf := make([][2]float64, 64)
	total := 0
	for {
		n, ok := m.Stream(buf)
		if !ok {
			break
		}
		for _, s := range buf[:n] {
			if s[0] != 0.1 || s[1] != 0.2 {
				t.Log("sample changed", s)
				t.Fail()
			}
		}
		total += n
	}
	if total != 100 || m.Position() != 100*time.Millisecond {
		t.Log("streamed", total, "position", m.Position())
		t.Fail()
	}
	if !m.Done() {
		t.Log("drained meter not done")
		t.Fail()
	}
}

func BenchmarkMeter(b *testing.B) {
	m := NewMeter(&constant{left: 0.3, right: 0.1, remaining: math.MaxInt32}, beep.SampleRate(44100))
	buf := make([][2]float64, 512)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		m.Stream(buf)
	}
}
