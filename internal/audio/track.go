package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// The speaker can only be initialised once per process, later tracks are
// resampled to whatever rate the first one opened it with
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/60))
	})
	return speakerRate, speakerErr
}

type Track struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	meter    *Meter
	volume   *effects.Volume
	ctrl     *beep.Ctrl

	mu     sync.Mutex
	gain   float64
	closed bool
}

func Open(file string, gain float64) (*Track, error) {
	streamer, format, err := Decode(file)
	if nil != err {
		return nil, err
	}

	t := &Track{
		streamer: streamer,
		format:   format,
		meter:    NewMeter(streamer, format.SampleRate),
	}
	t.volume = &effects.Volume{Streamer: t.meter, Base: 2}
	t.ctrl = &beep.Ctrl{Streamer: t.volume}
	t.setGain(gain)
	return t, nil
}

func (t *Track) Play() error {
	rate, err := initSpeaker(t.format.SampleRate)
	if nil != err {
		return err
	}
	var s beep.Streamer = t.ctrl
	if rate != t.format.SampleRate {
		s = beep.Resample(4, t.format.SampleRate, rate, s)
	}
	speaker.Play(s)
	return nil
}

func (t *Track) Position() time.Duration {
	return t.meter.Position()
}

func (t *Track) Energy() (float64, bool) {
	return t.meter.Energy()
}

func (t *Track) Done() bool {
	return t.meter.Done()
}

func (t *Track) Duration() time.Duration {
	return t.format.SampleRate.D(t.streamer.Len())
}

func (t *Track) Gain() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gain
}

// SetGain changes the linear gain, clamped to [0, 1]
func (t *Track) SetGain(gain float64) {
	speaker.Lock()
	defer speaker.Unlock()
	t.setGain(gain)
}

func (t *Track) setGain(gain float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gain = math.Max(0, math.Min(1, gain))
	t.volume.Silent, t.volume.Volume = volumeFor(t.gain)
}

// volumeFor converts a linear gain to the base 2 exponent beep expects
func volumeFor(gain float64) (bool, float64) {
	if gain <= 0 {
		return true, 0
	}
	return false, math.Log2(gain)
}

func (t *Track) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
	return t.streamer.Close()
}
