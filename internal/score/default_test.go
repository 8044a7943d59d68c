package score

import (
	"testing"

	"git.lost.host/meutraa/notefall/internal/game"
)

type hitTest struct {
	Note    game.Note
	Pressed bool
	Hit     bool
}

var hitTests = []hitTest{
	{Note: game.Note{Lane: game.LaneA, Y: 549}, Pressed: true, Hit: false},
	{Note: game.Note{Lane: game.LaneA, Y: 550}, Pressed: true, Hit: true},
	{Note: game.Note{Lane: game.LaneS, Y: 575}, Pressed: true, Hit: true},
	{Note: game.Note{Lane: game.LaneD, Y: 600}, Pressed: true, Hit: true},
	{Note: game.Note{Lane: game.LaneF, Y: 575}, Pressed: false, Hit: false},
	{Note: game.Note{Lane: game.LaneF, Y: 10}, Pressed: false, Hit: false},
}

func TestCheckHits(t *testing.T) {
	for _, test := range hitTests {
		scorer := New(DefaultZone)
		scorer.SetKeyState(test.Note.Lane, test.Pressed)
		note := test.Note

		remaining, hit := scorer.CheckHits([]*game.Note{&note})
		if (len(hit) == 1) != test.Hit || len(hit)+len(remaining) != 1 {
			t.Log("note    ", test.Note)
			t.Log("pressed ", test.Pressed)
			t.Log("hit     ", len(hit))
			t.Log("expected", test.Hit)
			t.Fail()
		}
	}
}

func TestCheckHitsOnlyPressedLane(t *testing.T) {
	scorer := New(DefaultZone)
	scorer.SetKeyState(game.LaneS, true)

	a := &game.Note{Lane: game.LaneA, Y: 560}
	s := &game.Note{Lane: game.LaneS, Y: 560}
	remaining, hit := scorer.CheckHits([]*game.Note{a, s})
	if len(hit) != 1 || hit[0] != s {
		t.Log("hit", hit)
		t.Fail()
	}
	if len(remaining) != 1 || remaining[0] != a {
		t.Log("remaining", remaining)
		t.Fail()
	}
}

func TestCheckHitsConsumesStackedNotes(t *testing.T) {
	scorer := New(DefaultZone)
	scorer.SetKeyState(game.LaneD, true)

	notes := []*game.Note{
		{Lane: game.LaneD, Y: 555},
		{Lane: game.LaneD, Y: 100},
		{Lane: game.LaneD, Y: 590},
	}
	remaining, hit := scorer.CheckHits(notes)
	if len(hit) != 2 || hit[0] != notes[0] || hit[1] != notes[2] {
		t.Log("hit", hit)
		t.Fail()
	}
	if len(remaining) != 1 || remaining[0] != notes[1] {
		t.Log("remaining", remaining)
		t.Fail()
	}

	// Hit notes are gone, a second pass finds nothing more
	_, again := scorer.CheckHits(remaining)
	if len(again) != 0 {
		t.Fail()
	}
}

func TestSetKeyState(t *testing.T) {
	scorer := New(DefaultZone)
	if scorer.SetKeyState(game.Lane(7), true) {
		t.Log("accepted invalid lane")
		t.Fail()
	}
	if scorer.Keys() != (game.KeyState{}) {
		t.Fail()
	}

	scorer.SetKeyState(game.LaneF, true)
	if !scorer.Keys().Pressed(game.LaneF) {
		t.Fail()
	}
	scorer.Reset()
	if scorer.Keys().Pressed(game.LaneF) {
		t.Log("reset kept key pressed")
		t.Fail()
	}
}

func BenchmarkCheckHits(b *testing.B) {
	scorer := New(DefaultZone)
	scorer.SetKeyState(game.LaneA, true)
	notes := make([]*game.Note, 64)
	for i := range notes {
		notes[i] = &game.Note{Lane: game.Lane(i % game.NLanes), Y: float64(i * 10)}
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		scorer.CheckHits(notes)
	}
}
