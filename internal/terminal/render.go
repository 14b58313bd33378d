package terminal

import (
	"fmt"
	"strings"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
)

// feedLines is how many recent log events are shown under the office.
const feedLines = 8

// Line is one row of the text view with its tone.
type Line struct {
	Text string
	Tone Tone
}

// Tone picks a line's colour.
type Tone int

const (
	ToneNormal Tone = iota
	ToneDim
	ToneWarn
	ToneLit
	ToneCamera
)

var kindGlyphs = map[game.AgentKind]rune{
	game.KindBear:    'B',
	game.KindRabbit:  'R',
	game.KindChicken: 'C',
	game.KindFox:     'F',
}

// Render draws the night as text rows.
func Render(w *night.World, status string) []Line {
	s := w.Session()
	var out []Line
	add := func(tone Tone, format string, args ...any) {
		out = append(out, Line{Text: fmt.Sprintf(format, args...), Tone: tone})
	}

	powerTone := ToneNormal
	if s.Power.Percent() < 20 {
		powerTone = ToneWarn
	}
	add(powerTone, "%s  POWER %3d%%  usage %s  drain %.2f/s",
		w.Hour(), s.Power.Percent(), strings.Repeat("#", 1+s.Consumers()), w.DrainPerSecond())
	if status != "" {
		add(ToneCamera, "%s", status)
	} else {
		add(ToneDim, "a/d move  space light/monitor  f door  tab mode  esc pause  q quit")
	}
	out = append(out, Line{})

	switch {
	case w.Done():
		out = append(out, renderVerdict(w)...)
	case s.CurrentJumpscare() != game.KindNone:
		add(ToneWarn, "!!! %s !!!", strings.ToUpper(s.CurrentJumpscare().String()))
	case s.InCameraMode():
		out = append(out, renderMonitor(w)...)
	default:
		out = append(out, renderOffice(w)...)
	}
	if w.Paused() {
		add(ToneCamera, "-- PAUSED --")
	}

	out = append(out, Line{})
	log := s.Log
	for _, e := range log.Since(max(0, log.Len()-feedLines)) {
		add(ToneDim, "%s", e.String())
	}
	return out
}

func renderOffice(w *night.World) []Line {
	s := w.Session()
	o := w.Office()
	v := w.View()
	rows := make([][]rune, o.TileHeight())
	for y := range rows {
		rows[y] = make([]rune, o.TileWidth())
		for x := range rows[y] {
			if o.Solid(game.Tile{X: x, Y: y}) {
				rows[y][x] = '#'
			} else {
				rows[y][x] = '.'
			}
		}
	}
	for _, side := range []game.Side{game.SideLeft, game.SideRight} {
		d := o.Doorway(side)
		if s.DoorOpen(side) {
			rows[d.Y][d.X] = ' '
		} else {
			rows[d.Y][d.X] = '|'
		}
	}
	for _, a := range w.Agents() {
		if a.State == night.StateInOffice || a.State == night.StateCaught {
			rows[a.Tile.Y][a.Tile.X] = kindGlyphs[a.Kind]
		}
	}
	gt := w.GuardTile()
	rows[gt.Y][gt.X] = '@'

	hall := func(lit, occupied bool, side game.Side) string {
		if !lit {
			return "   "
		}
		for _, a := range w.Agents() {
			if occupied && a.State == night.StateAtDoor && a.DoorSide() == side {
				return fmt.Sprintf("*%c*", kindGlyphs[a.Kind])
			}
		}
		return "***"
	}
	out := make([]Line, 0, len(rows)+1)
	for y, r := range rows {
		left, right := "   ", "   "
		tone := ToneNormal
		if y == o.DoorwayRow() {
			left = hall(v.LeftLit, v.AgentAtLeft, game.SideLeft)
			right = hall(v.RightLit, v.AgentAtRight, game.SideRight)
			if v.LeftLit || v.RightLit {
				tone = ToneLit
			}
		}
		out = append(out, Line{Text: left + string(r) + right, Tone: tone})
	}
	out = append(out, Line{
		Text: fmt.Sprintf("   light L=%d R=%d", s.LeftLightCounter(), s.RightLightCounter()),
		Tone: ToneDim,
	})
	return out
}

func renderMonitor(w *night.World) []Line {
	s := w.Session()
	v := w.View()
	graph := s.Viewing.Graph()
	mode := "browsing"
	if s.Viewing.Selecting {
		mode = "selecting"
	}
	out := []Line{{Text: fmt.Sprintf("MONITOR [%s]", mode), Tone: ToneCamera}}
	for _, l := range graph.Cameras() {
		mark := "  "
		tone := ToneDim
		if l == s.CurrentCamera() {
			mark = "> "
			tone = ToneCamera
		}
		out = append(out, Line{Text: fmt.Sprintf("%sCAM %-2s %s", mark, l.CamLabel(), l), Tone: tone})
	}
	if len(v.OnCamera) > 0 {
		names := make([]string, len(v.OnCamera))
		for i, k := range v.OnCamera {
			names[i] = k.String()
		}
		out = append(out, Line{Text: "on camera: " + strings.Join(names, ", "), Tone: ToneWarn})
	}
	return out
}

func renderVerdict(w *night.World) []Line {
	title := Line{Text: "6 AM. You made it.", Tone: ToneCamera}
	if w.Outcome() == night.OutcomeCaught {
		title = Line{Text: fmt.Sprintf("Caught by the %s.", w.CaughtBy()), Tone: ToneWarn}
	}
	out := []Line{title}
	for _, l := range strings.Split(strings.TrimRight(w.Summary().Format(), "\n"), "\n") {
		out = append(out, Line{Text: l})
	}
	return append(out, Line{Text: "r for the next night, q to quit", Tone: ToneDim})
}
