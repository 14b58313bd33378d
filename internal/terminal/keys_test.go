package terminal

import (
	"testing"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestActionForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Action
		ok   bool
	}{
		{runeKey('a'), ActLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActRight, true},
		{runeKey('W'), ActUp, true},
		{runeKey(' '), ActGrab, true},
		{runeKey('f'), ActThrow, true},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActSwitch, true},
		{runeKey('m'), ActMap, true},
		{runeKey('z'), 0, false},
	}
	for _, tt := range tests {
		got, ok := ActionForKey(tt.ev)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("%v: got %d,%v want %d,%v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestLatch_HoldsThenExpires(t *testing.T) {
	var l Latch
	l.Press(ActRight, 10)
	l.Press(ActGrab, 10)
	if got := l.Sample(10); got != (game.InputSample{X: 1, Grab: true}) {
		t.Fatalf("tick 10 = %s", got)
	}
	if got := l.Sample(10 + holdTicks - 1); got.X != 1 {
		t.Fatalf("still held on the last tick, got %s", got)
	}
	if got := l.Sample(10 + holdTicks); !got.Zero() {
		t.Fatalf("expired, got %s", got)
	}
}

func TestLatch_OppositeCancels(t *testing.T) {
	var l Latch
	l.Press(ActLeft, 0)
	l.Press(ActRight, 1)
	if got := l.Sample(2); got.X != 1 {
		t.Fatalf("latest direction wins, got %s", got)
	}
	l.Press(ActUp, 2)
	l.Press(ActDown, 3)
	if got := l.Sample(3); got.Y != -1 {
		t.Fatalf("got %s", got)
	}
	l.Release()
	if !l.Sample(3).Zero() {
		t.Fatal("release drops everything")
	}
}
