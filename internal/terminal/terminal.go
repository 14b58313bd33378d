package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/gdamore/tcell/v2"
)

var toneStyles = map[Tone]tcell.Style{
	ToneNormal: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	ToneDim:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	ToneWarn:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	ToneLit:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	ToneCamera: tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// Terminal plays a night in a tcell screen.
type Terminal struct {
	screen tcell.Screen
	cfg    game.Config
	opts   night.Options
	world  *night.World
	nights int

	latch  Latch
	tick   int
	status string
}

// New starts the first night on an initialised screen.
func New(screen tcell.Screen, cfg game.Config, opts night.Options) (*Terminal, error) {
	t := &Terminal{screen: screen, cfg: cfg, opts: opts}
	if err := t.startNight(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Terminal) World() *night.World { return t.world }

func (t *Terminal) startNight() error {
	opts := t.opts
	if opts.Seed == 0 {
		opts.Seed = t.cfg.Seed
	}
	opts.Seed += int64(t.nights)
	w, err := night.NewWorld(t.cfg, opts, nil)
	if err != nil {
		return fmt.Errorf("start night %d: %w", t.nights+1, err)
	}
	t.world = w
	t.nights++
	t.latch.Release()
	t.status = ""
	return nil
}

// HandleEvent applies one terminal event. It returns false when the player
// quits.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		if ev.Key() == tcell.KeyEscape {
			if !t.world.Pause() {
				t.status = "no pausing in the dark"
			}
			return true
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') && t.world.Done() {
			if err := t.startNight(); err != nil {
				t.status = err.Error()
			}
			return true
		}
		if a, ok := ActionForKey(ev); ok {
			t.latch.Press(a, t.tick)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Step advances the night one tick with the held controls.
func (t *Terminal) Step() {
	t.world.Step(1.0/night.TicksPerSecond, t.latch.Sample(t.tick))
	t.tick++
}

// Draw renders the current state.
func (t *Terminal) Draw() {
	t.screen.Clear()
	for y, line := range Render(t.world, t.status) {
		x := 0
		for _, r := range line.Text {
			t.screen.SetContent(x, y, r, nil, toneStyles[line.Tone])
			x++
		}
	}
	t.screen.Show()
}

// Run drives the night at the simulation rate until the player quits or
// ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / night.TicksPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, t.screen, events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.Step()
			t.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or ctx is
// done. A send blocked on a full channel gives up once ctx is done.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
