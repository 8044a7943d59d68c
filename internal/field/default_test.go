package field

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
)

func newField(settings Settings) *DefaultField {
	f := New(settings, rand.New(rand.NewSource(1)))
	f.Reset(0)
	return f
}

// The beat trigger never fires when the cadence is this long
func beatOnly() Settings {
	s := DefaultSettings()
	s.Interval = time.Hour
	return s
}

type cadenceStep struct {
	Now      time.Duration
	Expected int
}

var cadenceSteps = []cadenceStep{
	{Now: 300 * time.Millisecond, Expected: 0},
	{Now: 600 * time.Millisecond, Expected: 0},
	{Now: 601 * time.Millisecond, Expected: 1},
	{Now: 900 * time.Millisecond, Expected: 0},
	{Now: 10 * time.Second, Expected: 1},
	{Now: 10*time.Second + 600*time.Millisecond, Expected: 0},
	{Now: 10*time.Second + 601*time.Millisecond, Expected: 1},
}

func TestCadenceSpawnsOncePerInterval(t *testing.T) {
	s := DefaultSettings()
	s.Interval = 600 * time.Millisecond
	f := newField(s)

	for _, step := range cadenceSteps {
		spawned := f.Spawn(step.Now, 0, false)
		if len(spawned) != step.Expected {
			t.Log("now     ", step.Now)
			t.Log("spawned ", len(spawned))
			t.Log("expected", step.Expected)
			t.Fail()
		}
		for _, note := range spawned {
			if note.Beat || note.Y != 0 || note.Created != step.Now {
				t.Log("bad cadence note", *note)
				t.Fail()
			}
		}
	}
}

func TestBeatTriggerDebounces(t *testing.T) {
	f := newField(beatOnly())

	count := 0
	now := time.Duration(0)
	tick := func(energy float64, ok bool) {
		now += 16 * time.Millisecond
		count += len(f.Spawn(now, energy, ok))
	}

	for i := 0; i < 10; i++ {
		tick(0.35, true)
	}
	if count != 1 {
		t.Log("sustained energy spawned", count)
		t.Fail()
	}

	// Between the thresholds the trigger stays disarmed
	tick(0.25, true)
	tick(0.35, true)
	if count != 1 {
		t.Log("rearmed above low threshold", count)
		t.Fail()
	}

	tick(0.1, true)
	for i := 0; i < 10; i++ {
		tick(0.35, true)
	}
	if count != 2 {
		t.Log("after dropping below low threshold", count)
		t.Fail()
	}
}

func TestMissingEnergySkipsBeatTrigger(t *testing.T) {
	f := newField(beatOnly())

	if n := len(f.Spawn(time.Millisecond, 0.9, false)); n != 0 {
		t.Log("spawned without a sample", n)
		t.Fail()
	}
	if n := len(f.Spawn(2*time.Millisecond, math.NaN(), true)); n != 0 {
		t.Log("spawned on NaN", n)
		t.Fail()
	}
	if n := len(f.Spawn(3*time.Millisecond, 0.9, true)); n != 1 {
		t.Fail()
	}

	// An unavailable sample must not rearm the trigger
	f.Spawn(4*time.Millisecond, 0, false)
	if n := len(f.Spawn(5*time.Millisecond, 0.9, true)); n != 0 {
		t.Log("rearmed by a missing sample", n)
		t.Fail()
	}
}

func TestBothTriggersInOneTick(t *testing.T) {
	s := DefaultSettings()
	s.Interval = 600 * time.Millisecond
	f := newField(s)

	spawned := f.Spawn(time.Second, 0.5, true)
	if len(spawned) != 2 {
		t.Log("spawned", len(spawned))
		t.FailNow()
	}
	if spawned[0].Beat || !spawned[1].Beat {
		t.Log("expected cadence note then beat note")
		t.Fail()
	}
	if len(f.Notes()) != 2 {
		t.Fail()
	}
}

func TestBeatNoteBounces(t *testing.T) {
	f := newField(beatOnly())

	spawned := f.Spawn(time.Second, 0.5, true)
	if len(spawned) != 1 {
		t.FailNow()
	}
	note := spawned[0]
	if note.BounceUntil != time.Second+100*time.Millisecond {
		t.Log("bounce until", note.BounceUntil)
		t.Fail()
	}

	f.Advance(time.Second + 50*time.Millisecond)
	if !note.Emphasized() || note.Scale != 1.5 {
		t.Log("scale while bouncing", note.Scale)
		t.Fail()
	}
	f.Advance(time.Second + 100*time.Millisecond)
	if note.Emphasized() {
		t.Log("scale after bounce", note.Scale)
		t.Fail()
	}
}

func TestAdvanceRetiresPastDepth(t *testing.T) {
	f := newField(DefaultSettings())
	edge := &game.Note{Lane: game.LaneA, Y: 595, Scale: 1}
	past := &game.Note{Lane: game.LaneS, Y: 596, Scale: 1}
	top := &game.Note{Lane: game.LaneD, Scale: 1}
	f.Replace([]*game.Note{edge, past, top})

	missed := f.Advance(0)
	if len(missed) != 1 || missed[0] != past {
		t.Log("missed", missed)
		t.Fail()
	}
	notes := f.Notes()
	if len(notes) != 2 || notes[0] != edge || notes[1] != top {
		t.Log("remaining", notes)
		t.Fail()
	}
	if edge.Y != 600 || top.Y != 5 {
		t.Log("positions", edge.Y, top.Y)
		t.Fail()
	}
}

func TestPositionsIncreaseUntilMissed(t *testing.T) {
	s := DefaultSettings()
	s.Interval = 50 * time.Millisecond
	f := newField(s)

	last := map[*game.Note]float64{}
	misses := 0
	for i := 1; i <= 500; i++ {
		now := time.Duration(i) * 16 * time.Millisecond
		for _, note := range f.Spawn(now, 0, false) {
			if note.Y != 0 || !note.Lane.Valid() {
				t.Log("bad spawn", *note)
				t.Fail()
			}
			last[note] = note.Y
		}
		for _, note := range f.Advance(now) {
			if note.Y <= s.Depth {
				t.Log("missed inside the playfield", note.Y)
				t.Fail()
			}
			delete(last, note)
			misses++
		}
		for _, note := range f.Notes() {
			if note.Y <= last[note] {
				t.Log("note did not fall", note.Y, last[note])
				t.Fail()
			}
			last[note] = note.Y
		}
	}
	if misses == 0 {
		t.Log("no note ever reached the bottom")
		t.Fail()
	}
}

func TestSpawnUsesEveryLane(t *testing.T) {
	s := DefaultSettings()
	s.Interval = 0
	f := newField(s)

	var seen [game.NLanes]int
	for i := 1; i <= 400; i++ {
		for _, note := range f.Spawn(time.Duration(i), 0, false) {
			seen[note.Lane]++
		}
	}
	for lane, n := range seen {
		if n == 0 {
			t.Log("lane never used", game.Lane(lane))
			t.Fail()
		}
	}
}

func BenchmarkAdvance(b *testing.B) {
	f := newField(DefaultSettings())
	notes := make([]*game.Note, 64)
	for i := range notes {
		notes[i] = &game.Note{Lane: game.Lane(i % game.NLanes)}
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for _, note := range notes {
			note.Y = 0
		}
		f.Replace(notes)
		f.Advance(0)
	}
}
