package game

import (
	"strings"
	"testing"
)

func TestSimLog_NilIsSafe(t *testing.T) {
	var sl *SimLog
	sl.Add(1, "--", CatPower, "out", "", 0)
	sl.AddVerbose(1, "--", CatPower, "remaining", "", 0)
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "P0", CatInput, "routed", "", 0)
	if quiet.Len() != 0 {
		t.Fatal("verbose entry recorded on a quiet log")
	}
	ts := NewTestSession(WithVerboseLog())
	ts.Press(0.5, InputSample{X: 1})
	if !ts.Log.HasEntry(CatInput, "routed", "(+1,+0)") {
		t.Fatalf("routed sample missing:\n%s", ts.Log.Format())
	}
	if !ts.Log.HasEntry(CatPower, "remaining", "") {
		t.Fatal("per-tick power reading missing")
	}
}

func TestSimLog_SinceAndRange(t *testing.T) {
	sl := NewSimLog(false)
	for i := 1; i <= 5; i++ {
		sl.Add(i, "--", CatDoor, "toggle", "left open", 0)
	}
	if got := len(sl.Since(3)); got != 2 {
		t.Fatalf("Since(3) = %d entries, want 2", got)
	}
	if sl.Since(9) != nil {
		t.Fatal("Since past the end should be empty")
	}
	out := sl.FormatRange(2, 3)
	if strings.Count(out, "\n") != 2 || !strings.Contains(out, "[T=002]") {
		t.Fatalf("FormatRange:\n%s", out)
	}
	if e, ok := sl.LastOf(CatDoor, "toggle"); !ok || e.Tick != 5 {
		t.Fatalf("LastOf = %+v, %v", e, ok)
	}
}

func TestInputSample_String(t *testing.T) {
	got := InputSample{X: -1, Grab: true, Crouch: true}.String()
	if got != "(-1,+0) -G--C" {
		t.Fatalf("String = %q", got)
	}
}

func TestSimLog_Query(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "A0", CatTask, "assign", "left_door", 0)
	sl.Add(2, "A1", CatTask, "assign", "cameras", 0)
	sl.Add(3, "A0", CatAid, "attach", "door", 0)
	sl.Add(4, "--", CatDoor, "toggle", "right closed", 0)

	tests := []struct {
		name string
		q    Query
		want int
	}{
		{"everything", Query{}, 4},
		{"category", Query{Category: CatTask}, 2},
		{"actor", Query{Actor: "A0"}, 2},
		{"value substring", Query{Category: CatTask, Contains: "door"}, 1},
		{"from tick", Query{From: 3}, 2},
		{"closed range", Query{From: 2, To: 3}, 2},
		{"no match", Query{Key: "detach"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sl.Count(tt.q); got != tt.want {
				t.Fatalf("Count = %d, want %d", got, tt.want)
			}
			if got := len(sl.Select(tt.q)); got != tt.want {
				t.Fatalf("Select = %d entries, want %d", got, tt.want)
			}
		})
	}
}
