package office

import (
	"fmt"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	// statusTicks is how long a status message stays on screen.
	statusTicks = 3 * night.TicksPerSecond

	debugReportTicks = 400
)

// Host is the ebiten window around a night.World. It samples the keyboard
// into the guard's raw input and draws the office, the monitor and the feed.
type Host struct {
	width  int
	height int

	cfg   game.Config
	opts  night.Options
	world *night.World
	night int

	audio *SoundManager
	fonts *Fonts
	feed  *SecurityFeed

	keys KeyState
	copy func(string) error

	status     string
	statusLeft int

	summaries []night.RunSummary
}

// New starts the first night. audio may be nil for a silent window.
func New(cfg game.Config, opts night.Options, audio *SoundManager) (*Host, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	h := &Host{
		width:  screenWidth,
		height: screenHeight,
		cfg:    cfg,
		opts:   opts,
		audio:  audio,
		fonts:  fonts,
		feed:   NewSecurityFeed(),
		keys:   ebiten.IsKeyPressed,
		copy:   clipboard.WriteAll,
	}
	if err := h.startNight(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Host) World() *night.World           { return h.world }
func (h *Host) Feed() *SecurityFeed           { return h.feed }
func (h *Host) Status() string                { return h.status }
func (h *Host) Summaries() []night.RunSummary { return h.summaries }

func (h *Host) startNight() error {
	var sink game.AudioSink
	if h.audio != nil {
		sink = h.audio
	}
	opts := h.opts
	if opts.Seed == 0 {
		opts.Seed = h.cfg.Seed
	}
	opts.Seed += int64(h.night)
	w, err := night.NewWorld(h.cfg, opts, sink)
	if err != nil {
		return fmt.Errorf("start night %d: %w", h.night+1, err)
	}
	h.world = w
	h.night++
	h.feed.Reset()
	h.feed.Pull(w.Session().Log)
	return nil
}

func (h *Host) setStatus(msg string) {
	h.status = msg
	h.statusLeft = statusTicks
}

func (h *Host) Update() error {
	h.handleKeys()
	h.advance(SampleKeys(h.keys))
	return nil
}

// handleKeys processes the host-level keys (edge-triggered).
func (h *Host) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		h.copyDebugReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && h.world.Done() {
		if err := h.restart(); err != nil {
			h.setStatus(err.Error())
		}
	}
}

// advance steps the world one tick with the guard's raw input and forwards
// new session events to the feed.
func (h *Host) advance(raw game.InputSample) {
	if h.statusLeft > 0 {
		h.statusLeft--
		if h.statusLeft == 0 {
			h.status = ""
		}
	}
	wasDone := h.world.Done()
	h.world.Step(1.0/night.TicksPerSecond, raw)
	h.feed.Pull(h.world.Session().Log)
	if !wasDone && h.world.Done() {
		h.summaries = append(h.summaries, h.world.Summary())
	}
}

func (h *Host) togglePause() {
	if !h.world.Pause() {
		h.setStatus("no pausing in the dark")
		return
	}
	if h.audio != nil {
		h.audio.SetMuted(h.world.Paused())
	}
}

func (h *Host) copyDebugReport() {
	report := h.world.DebugReport(debugReportTicks)
	if err := h.copy(report); err != nil {
		h.setStatus(fmt.Sprintf("clipboard: %v", err))
		return
	}
	h.setStatus("debug report copied")
}

func (h *Host) restart() error {
	if h.audio != nil {
		h.audio.SetMuted(false)
	}
	return h.startNight()
}

func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}
