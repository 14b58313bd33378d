package terminal

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T, cfg game.Config, opts night.Options) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	term, err := New(screen, cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return term, screen
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestTerminal_DrawsOffice(t *testing.T) {
	term, screen := newTestTerminal(t, game.DefaultConfig(), night.DefaultOptions())
	term.Step()
	term.Draw()
	out := screenText(screen)
	drain := fmt.Sprintf("drain %.2f/s", term.World().DrainPerSecond())
	for _, want := range []string{"12 AM", "POWER", "@", "light L=0 R=0", drain} {
		if !strings.Contains(out, want) {
			t.Fatalf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestTerminal_SpaceOpensMonitor(t *testing.T) {
	term, screen := newTestTerminal(t, game.DefaultConfig(), night.DefaultOptions())
	if !term.HandleEvent(runeKey(' ')) {
		t.Fatal("space is not quit")
	}
	term.Step()
	if !term.World().Session().InCameraMode() {
		t.Fatal("space at the desk should open the monitor")
	}
	term.Draw()
	if out := screenText(screen); !strings.Contains(out, "MONITOR") || !strings.Contains(out, "> CAM 1A") {
		t.Fatalf("monitor not drawn:\n%s", out)
	}
}

func TestTerminal_QuitAndPauseVeto(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.StartPower = 0
	term, _ := newTestTerminal(t, cfg, night.DefaultOptions())
	term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if term.World().Paused() || term.status != "no pausing in the dark" {
		t.Fatalf("paused=%v status=%q", term.World().Paused(), term.status)
	}
	if term.HandleEvent(runeKey('q')) {
		t.Fatal("q quits")
	}
	if term.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c quits")
	}
}

func TestTerminal_RestartOnlyWhenDone(t *testing.T) {
	opts := night.DefaultOptions()
	opts.NightSeconds = 0.5
	opts.Levels = map[game.AgentKind]int{}
	term, screen := newTestTerminal(t, game.DefaultConfig(), opts)
	first := term.World()
	term.HandleEvent(runeKey('r'))
	if term.World() != first {
		t.Fatal("r does nothing mid-night")
	}
	for i := 0; i < night.TicksPerSecond && !first.Done(); i++ {
		term.Step()
	}
	term.Draw()
	if out := screenText(screen); !strings.Contains(out, "You made it") {
		t.Fatalf("verdict not drawn:\n%s", out)
	}
	term.HandleEvent(runeKey('r'))
	if term.World() == first || term.nights != 2 {
		t.Fatal("r starts the next night once this one is decided")
	}
}

func TestPollEvents_StopsWhenNobodyReads(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event) // never read
	done := make(chan struct{})
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	go func() {
		pollEvents(ctx, screen, events)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller stayed blocked after the context was cancelled")
	}
}

func TestPollEvents_ClosesOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	events := make(chan tcell.Event, 1)
	go pollEvents(context.Background(), screen, events)
	screen.Fini()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("expected the channel to close, got an event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not close the channel after Fini")
	}
}
