package night

import (
	"fmt"
	"strings"

	"github.com/Garsondee/night-shift/internal/game"
)

// reportWindowTicks is the default sliding window for recent-behaviour reports (~30s at 40TPS).
const reportWindowTicks = 1200

// Snapshot is the state of the night at one tick.
type Snapshot struct {
	Tick         int
	Power        float64
	Consumers    int
	Darkness     float64
	InCameraMode bool
	DoorsClosed  int
	LightsLit    int

	Roaming  int
	AtDoor   int
	InOffice int
}

// Reporter collects periodic snapshots and summarises them over a sliding
// window.
type Reporter struct {
	history     []Snapshot
	windowTicks int
}

// NewReporter creates a reporter with the given window size.
func NewReporter(windowTicks int) *Reporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &Reporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the world.
func (r *Reporter) Collect(w *World) {
	s := w.Session()
	snap := Snapshot{
		Tick:         s.TickCount(),
		Power:        s.Power.Remaining,
		Consumers:    s.Consumers(),
		Darkness:     s.DarknessFactor(),
		InCameraMode: s.InCameraMode(),
	}
	for _, side := range []game.Side{game.SideLeft, game.SideRight} {
		if !s.DoorOpen(side) {
			snap.DoorsClosed++
		}
	}
	if s.LeftLightCounter() > 0 {
		snap.LightsLit++
	}
	if s.RightLightCounter() > 0 {
		snap.LightsLit++
	}
	for _, a := range w.Agents() {
		switch a.State {
		case StateRoaming:
			snap.Roaming++
		case StateAtDoor:
			snap.AtDoor++
		case StateInOffice, StateCaught:
			snap.InOffice++
		}
	}
	r.history = append(r.history, snap)
}

// Latest returns the most recent snapshot, or nil.
func (r *Reporter) Latest() *Snapshot {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns every snapshot collected.
func (r *Reporter) History() []Snapshot {
	return r.history
}

// WindowSummary averages the snapshots inside the recent window.
func (r *Reporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []Snapshot
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	wr := &WindowReport{
		FromTick:    window[len(window)-1].Tick,
		ToTick:      window[0].Tick,
		SampleCount: len(window),
		PowerStart:  window[len(window)-1].Power,
		PowerEnd:    window[0].Power,
	}
	camera := 0
	for _, snap := range window {
		wr.AvgConsumers += float64(snap.Consumers)
		wr.AvgDoorsClosed += float64(snap.DoorsClosed)
		wr.AvgLightsLit += float64(snap.LightsLit)
		wr.AvgAtDoor += float64(snap.AtDoor)
		wr.MaxDarkness = max(wr.MaxDarkness, snap.Darkness)
		if snap.InCameraMode {
			camera++
		}
	}
	wr.AvgConsumers /= n
	wr.AvgDoorsClosed /= n
	wr.AvgLightsLit /= n
	wr.AvgAtDoor /= n
	wr.CameraPct = float64(camera) / n * 100
	return wr
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	PowerStart, PowerEnd float64
	MaxDarkness          float64

	AvgConsumers   float64
	AvgDoorsClosed float64
	AvgLightsLit   float64
	AvgAtDoor      float64
	CameraPct      float64
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Night Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  power: %.2f -> %.2f  max_darkness=%.2f\n", wr.PowerStart, wr.PowerEnd, wr.MaxDarkness)
	fmt.Fprintf(&sb, "  consumers=%.1f  doors_closed=%.1f  lights_lit=%.1f\n",
		wr.AvgConsumers, wr.AvgDoorsClosed, wr.AvgLightsLit)
	fmt.Fprintf(&sb, "  at_door=%.1f  camera=%.0f%% (%s)\n", wr.AvgAtDoor, wr.CameraPct, vigilanceLabel(wr.CameraPct))
	return sb.String()
}

func vigilanceLabel(cameraPct float64) string {
	switch {
	case cameraPct >= 50:
		return "glued to the monitor"
	case cameraPct >= 15:
		return "watchful"
	case cameraPct > 0:
		return "glancing"
	default:
		return "blind"
	}
}
