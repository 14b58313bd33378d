package night

import (
	"fmt"
	"strings"

	"github.com/Garsondee/night-shift/internal/game"
)

// DebugReport renders the state of the night and the log of the last
// lastTicks ticks. Hosts copy it to the clipboard.
func (w *World) DebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	s := w.session
	toTick := s.TickCount()
	fromTick := max(0, toTick-lastTicks+1)

	var b strings.Builder
	fmt.Fprintf(&b, "--- Night Shift debug report ---\n")
	fmt.Fprintf(&b, "seed=%d tick_range=[%d..%d] ticks=%d clock=%s outcome=%s\n\n",
		w.opts.Seed, fromTick, toTick, toTick-fromTick+1, w.Hour(), w.outcome)

	b.WriteString("== Office ==\n")
	fmt.Fprintf(&b, "power=%.2f/%.0f (%d%%) consumers=%d out=%v since_out=%.2fs darkness=%.3f\n",
		s.Power.Remaining, s.Power.Capacity, s.Power.Percent(), s.Consumers(),
		s.OutOfPower(), s.SinceOutOfPower(), s.DarknessFactor())
	for _, side := range []game.Side{game.SideLeft, game.SideRight} {
		d := s.Doors.Side(side)
		state := "closed"
		if d.Open {
			state = "open"
		}
		fmt.Fprintf(&b, "%-5s door=%-6s light=%d\n", side, state, d.LightCounter)
	}
	cam := "off"
	if s.InCameraMode() {
		cam = fmt.Sprintf("on %s (%s) selecting=%v", s.CurrentCamera(), s.CurrentCamera().CamLabel(), s.Viewing.Selecting)
	}
	fmt.Fprintf(&b, "camera=%s guard_x=%.2f guard_tile=%v\n\n", cam, w.guard.XFrac, w.GuardTile())

	b.WriteString("== Animatronics ==\n")
	if len(w.agents) == 0 {
		b.WriteString("(none)\n")
	}
	for _, a := range w.agents {
		aid := "none"
		if x := s.Threat.Aid(a.ID); x != nil {
			aid = x.Kind().String()
		}
		g := a.Guidance
		fmt.Fprintf(&b, "%-3s %-8s lvl=%-2d %-9s at=%-22s task=%-10s aid=%-7s pursue=%v/%d moves=%d retreats=%d\n",
			a.ID.Label(), a.Kind, a.Level, a.State, a.Location(), s.TaskOf(a.ID), aid,
			g.PursuePlayer, g.PersistCounter, a.moves, a.retreats)
	}

	b.WriteString("\n== Jumpscare ==\n")
	fmt.Fprintf(&b, "phase=%s kind=%s timer=%.2f/%.2f death_cues_suppressed=%d\n\n",
		s.Jumpscare.Phase(), s.CurrentJumpscare(), s.Jumpscare.Timer(), s.Jumpscare.Duration(),
		s.Jumpscare.SuppressedDeathCues())

	b.WriteString("== Log ==\n")
	logText := s.Log.FormatRange(fromTick, toTick)
	if logText == "" {
		b.WriteString("(no events in range)\n")
	} else {
		b.WriteString(logText)
	}
	if wr := w.reporter.WindowSummary(); wr != nil {
		b.WriteByte('\n')
		b.WriteString(wr.Format())
	}
	return b.String()
}
