package office

import (
	"strings"
	"testing"

	"github.com/Garsondee/night-shift/internal/game"
)

func TestSecurityFeed_WrapsOldestFirst(t *testing.T) {
	f := NewSecurityFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, "--", game.CatDoor, "toggle")
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("len = %d, want %d", len(got), feedMaxEntries)
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("range = %d..%d", got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestSecurityFeed_PullForwardsOnlyNewEvents(t *testing.T) {
	log := game.NewSimLog(true)
	log.Add(1, "--", game.CatDoor, "toggle", "left closed", 0)
	log.Add(1, "P0", game.CatInput, "routed", "(+0,+0) -----", 0)
	log.Add(2, "A1", game.CatAid, "attach", "door", 2)

	f := NewSecurityFeed()
	if n := f.Pull(log); n != 2 {
		t.Fatalf("first pull = %d, want 2 (input skipped)", n)
	}
	if n := f.Pull(log); n != 0 {
		t.Fatalf("second pull = %d, want 0", n)
	}
	log.Add(3, "--", game.CatPower, "out", "after 3.0s", 0)
	if n := f.Pull(log); n != 1 {
		t.Fatalf("third pull = %d, want 1", n)
	}
	last := f.Recent()[len(f.Recent())-1]
	if last.Category != game.CatPower || !strings.HasPrefix(last.Message, "out ") {
		t.Fatalf("last = %+v", last)
	}
	if f.Pull(nil) != 0 {
		t.Fatal("nil log")
	}
}

func TestSecurityFeed_Reset(t *testing.T) {
	log := game.NewSimLog(false)
	log.Add(1, "--", game.CatDoor, "toggle", "left", 0)
	f := NewSecurityFeed()
	f.Pull(log)
	f.Reset()
	if len(f.Recent()) != 0 {
		t.Fatal("reset feed should be empty")
	}
	if f.Pull(game.NewSimLog(false)) != 0 {
		t.Fatal("a fresh log has nothing to forward")
	}
}
