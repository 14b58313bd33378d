package office

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudHeight = 56
	hallWidth = 80
	mapCell   = 58
)

var (
	colBackground = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	colFloor      = color.RGBA{R: 34, G: 32, B: 40, A: 255}
	colFloorTile  = color.RGBA{R: 44, G: 42, B: 52, A: 255}
	colWall       = color.RGBA{R: 70, G: 66, B: 78, A: 255}
	colWallLight  = color.RGBA{R: 96, G: 92, B: 104, A: 200}
	colDoorShut   = color.RGBA{R: 150, G: 60, B: 50, A: 255}
	colHallDark   = color.RGBA{R: 6, G: 6, B: 8, A: 255}
	colHallLit    = color.RGBA{R: 230, G: 210, B: 120, A: 160}
	colGuard      = color.RGBA{R: 80, G: 140, B: 255, A: 255}
	colCamBox     = color.RGBA{R: 28, G: 40, B: 32, A: 255}
	colCamEdge    = color.RGBA{R: 60, G: 110, B: 70, A: 200}
	colCamCurrent = color.RGBA{R: 120, G: 240, B: 140, A: 255}
	colText       = color.RGBA{R: 220, G: 220, B: 210, A: 255}
	colDim        = color.RGBA{R: 130, G: 130, B: 120, A: 255}
	colWarn       = color.RGBA{R: 255, G: 90, B: 70, A: 255}
)

// kindColors tints each animatronic.
var kindColors = map[game.AgentKind]color.RGBA{
	game.KindBear:    {R: 150, G: 100, B: 60, A: 255},
	game.KindRabbit:  {R: 110, G: 120, B: 220, A: 255},
	game.KindChicken: {R: 235, G: 210, B: 70, A: 255},
	game.KindFox:     {R: 220, G: 80, B: 50, A: 255},
}

// cameraCells places each camera on the monitor's map grid, roughly
// following the facility floor plan.
var cameraCells = map[game.Location][2]int{
	game.MainEntrance:    {3, 0},
	game.Backstage:       {7, 0},
	game.PartyRoomA:      {0, 2},
	game.PirateCove:      {4, 2},
	game.PartyRoomC:      {9, 2},
	game.ShowStage:       {7, 3},
	game.PartyRoomB:      {0, 4},
	game.PlayArea:        {4, 4},
	game.DiningArea:      {7, 4},
	game.PartyRoomD:      {9, 4},
	game.Kitchen:         {7, 6},
	game.Storage:         {4, 7},
	game.RestroomHallCam: {1, 9},
	game.BackHall:        {6, 9},
	game.You:             {4, 9},
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	w := h.world
	s := w.Session()

	areaW := h.width - feedPanelWidth
	if s.InCameraMode() {
		h.drawMonitor(screen, areaW)
	} else {
		h.drawOffice(screen, areaW)
	}

	// Darkness fades the whole view, HUD included.
	if d := w.Darkness(); d > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(areaW), float32(h.height),
			color.RGBA{A: uint8(math.Min(235, d*235))}, false)
	}
	h.drawHUD(screen, areaW)

	if k := s.CurrentJumpscare(); k != game.KindNone && !w.Done() {
		h.drawJumpscare(screen, areaW, k)
	}
	if w.Done() {
		h.drawVerdict(screen, areaW)
	} else if w.Paused() {
		vector.DrawFilledRect(screen, 0, 0, float32(areaW), float32(h.height), color.RGBA{A: 150}, false)
		drawCentred(screen, h.fonts.Big, "PAUSED", areaW/2, h.height/2-40, colText)
		drawCentred(screen, h.fonts.HUD, "Esc to resume", areaW/2, h.height/2+20, colDim)
	}

	h.feed.Draw(screen, h.fonts.Small, areaW, h.height)
}

// officeLayout returns the tile size and the top-left of the office grid.
func (h *Host) officeLayout(areaW int) (ts, ox, oy float32) {
	o := h.world.Office()
	availW := float32(areaW - 2*hallWidth - 40)
	availH := float32(h.height - hudHeight - 40)
	ts = float32(math.Floor(math.Min(float64(availW)/float64(o.TileWidth()), float64(availH)/float64(o.TileHeight()))))
	gw := ts * float32(o.TileWidth())
	gh := ts * float32(o.TileHeight())
	ox = (float32(areaW) - gw) / 2
	oy = float32(hudHeight) + (float32(h.height-hudHeight)-gh)/2
	return ts, ox, oy
}

func (h *Host) drawOffice(screen *ebiten.Image, areaW int) {
	w := h.world
	s := w.Session()
	o := w.Office()
	ts, ox, oy := h.officeLayout(areaW)

	for y := 0; y < o.TileHeight(); y++ {
		for x := 0; x < o.TileWidth(); x++ {
			px := ox + float32(x)*ts
			py := oy + float32(y)*ts
			if o.Solid(game.Tile{X: x, Y: y}) {
				vector.DrawFilledRect(screen, px, py, ts, ts, colWall, false)
				vector.StrokeLine(screen, px, py, px+ts, py, 0.5, colWallLight, false)
				continue
			}
			vector.DrawFilledRect(screen, px, py, ts, ts, colFloor, false)
			vector.StrokeRect(screen, px, py, ts, ts, 0.5, colFloorTile, false)
		}
	}

	view := w.View()
	for _, side := range []game.Side{game.SideLeft, game.SideRight} {
		d := o.Doorway(side)
		dx := ox + float32(d.X)*ts
		dy := oy + float32(d.Y)*ts
		hx := ox - hallWidth
		if side == game.SideRight {
			hx = ox + ts*float32(o.TileWidth())
		}
		lit := view.LeftLit
		occupied := view.AgentAtLeft
		if side == game.SideRight {
			lit = view.RightLit
			occupied = view.AgentAtRight
		}
		hall := colHallDark
		if lit {
			hall = colHallLit
		}
		vector.DrawFilledRect(screen, hx, dy-ts*2, hallWidth, ts*5, hall, false)
		vector.StrokeRect(screen, hx, dy-ts*2, hallWidth, ts*5, 1, colWall, false)
		if occupied {
			for _, a := range w.Agents() {
				if a.State == night.StateAtDoor && a.DoorSide() == side {
					vector.DrawFilledCircle(screen, hx+hallWidth/2, dy+ts/2, ts*0.9, kindColors[a.Kind], true)
				}
			}
		}
		if !s.DoorOpen(side) {
			vector.DrawFilledRect(screen, dx, dy-ts, ts, ts*3, colDoorShut, false)
		}
		label := "L"
		if side == game.SideRight {
			label = "R"
		}
		drawCentred(screen, h.fonts.Small, fmt.Sprintf("%s light %d", label, s.Doors.Side(side).LightCounter),
			int(hx+hallWidth/2), int(dy+ts*3)+4, colDim)
	}

	for _, a := range w.Agents() {
		if a.State != night.StateInOffice && a.State != night.StateCaught {
			continue
		}
		cx := ox + float32(a.Tile.X)*ts + ts/2
		cy := oy + float32(a.Tile.Y)*ts + ts/2
		vector.DrawFilledCircle(screen, cx, cy, ts*0.45, kindColors[a.Kind], true)
	}

	gt := w.GuardTile()
	gx := ox + float32(w.Guard().XFrac*float64(o.TileWidth()-1))*ts + ts/2
	gy := oy + float32(gt.Y)*ts + ts/2
	vector.DrawFilledCircle(screen, gx, gy, ts*0.4, colGuard, true)
	vector.StrokeCircle(screen, gx, gy, ts*0.4, 1.5, colText, true)
}

func (h *Host) drawMonitor(screen *ebiten.Image, areaW int) {
	s := h.world.Session()
	graph := s.Viewing.Graph()
	mapW := 10 * mapCell
	ox := float32((areaW - mapW) / 2)
	oy := float32(hudHeight + 30)
	centre := func(l game.Location) (float32, float32) {
		c := cameraCells[l]
		return ox + float32(c[0]*mapCell) + mapCell/2, oy + float32(c[1]*mapCell) + mapCell/2
	}

	vector.DrawFilledRect(screen, ox-20, oy-20, float32(mapW+40), float32(10*mapCell+40), color.RGBA{R: 8, G: 14, B: 10, A: 255}, false)
	for _, l := range graph.Cameras() {
		x0, y0 := centre(l)
		for _, d := range []game.Direction{game.Up, game.Down, game.Left, game.Right} {
			if n := graph.Neighbor(l, d); n != game.Nowhere && n > l {
				x1, y1 := centre(n)
				vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, colCamEdge, false)
			}
		}
	}
	viewed := h.world.View()
	for _, l := range graph.Cameras() {
		cx, cy := centre(l)
		box := float32(mapCell - 14)
		vector.DrawFilledRect(screen, cx-box/2, cy-box/2, box, box/1.6, colCamBox, false)
		edge := colCamEdge
		if l == s.CurrentCamera() {
			edge = colCamCurrent
		}
		vector.StrokeRect(screen, cx-box/2, cy-box/2, box, box/1.6, 2, edge, false)
		drawCentred(screen, h.fonts.Small, "CAM "+l.CamLabel(), int(cx), int(cy-box/2)+4, edge)
	}
	yx, yy := centre(game.You)
	drawCentred(screen, h.fonts.Small, "YOU", int(yx), int(yy), colGuard)

	mode := "browsing"
	if s.Viewing.Selecting {
		mode = "selecting"
	}
	cur := s.CurrentCamera()
	info := fmt.Sprintf("CAM %s  %s  [%s]", cur.CamLabel(), strings.ToUpper(cur.String()), mode)
	drawText(screen, h.fonts.HUD, info, int(ox), int(oy)+10*mapCell+24, colCamCurrent)
	if len(viewed.OnCamera) > 0 {
		names := make([]string, len(viewed.OnCamera))
		for i, k := range viewed.OnCamera {
			names[i] = k.String()
		}
		drawText(screen, h.fonts.HUD, "on camera: "+strings.Join(names, ", "), int(ox), int(oy)+10*mapCell+44, colWarn)
	}
}

func (h *Host) drawHUD(screen *ebiten.Image, areaW int) {
	w := h.world
	s := w.Session()
	vector.DrawFilledRect(screen, 0, 0, float32(areaW), hudHeight, color.RGBA{R: 14, G: 14, B: 20, A: 235}, false)
	vector.StrokeLine(screen, 0, hudHeight, float32(areaW), hudHeight, 1, color.RGBA{R: 60, G: 60, B: 90, A: 200}, false)

	powerCol := colText
	if s.Power.Percent() < 20 {
		powerCol = colWarn
	}
	drawText(screen, h.fonts.HUD, fmt.Sprintf("NIGHT %d   %s", h.night, w.Hour()), 12, 6, colText)
	drawText(screen, h.fonts.HUD, fmt.Sprintf("POWER %3d%%", s.Power.Percent()), 12, 28, powerCol)

	// One usage bar per consumer plus the base drain.
	bars := 1 + s.Consumers()
	for i := 0; i < bars; i++ {
		c := color.RGBA{R: 90, G: 200, B: 90, A: 255}
		if i >= 2 {
			c = color.RGBA{R: 230, G: 180, B: 60, A: 255}
		}
		if i >= 3 {
			c = colWarn
		}
		vector.DrawFilledRect(screen, float32(140+i*14), 31, 10, 14, c, false)
	}
	drawText(screen, h.fonts.Small, fmt.Sprintf("usage  %.2f/s", w.DrainPerSecond()), 140, 46-2, colDim)

	legend := "A/D move  Space light/monitor  F door  Tab mode  Esc pause  F9 copy report"
	drawText(screen, h.fonts.Small, legend, 260, 8, colDim)
	if h.status != "" {
		drawText(screen, h.fonts.HUD, h.status, 260, 28, colCamCurrent)
	}
}

func (h *Host) drawJumpscare(screen *ebiten.Image, areaW int, k game.AgentKind) {
	s := h.world.Session()
	// Flash at 8 Hz for the first half, then hold.
	t := s.Jumpscare.Timer()
	a := uint8(200)
	if t < s.Jumpscare.Duration()/2 && int(t*8)%2 == 1 {
		a = 90
	}
	tint := kindColors[k]
	tint.A = a
	vector.DrawFilledRect(screen, 0, 0, float32(areaW), float32(h.height), tint, false)
	drawCentred(screen, h.fonts.Big, strings.ToUpper(k.String()), areaW/2, h.height/2-30, colBackground)
}

func (h *Host) drawVerdict(screen *ebiten.Image, areaW int) {
	w := h.world
	vector.DrawFilledRect(screen, 0, 0, float32(areaW), float32(h.height), color.RGBA{A: 210}, false)
	title := "6 AM"
	col := colCamCurrent
	if w.Outcome() == night.OutcomeCaught {
		title = "CAUGHT BY THE " + strings.ToUpper(w.CaughtBy().String())
		col = colWarn
	}
	drawCentred(screen, h.fonts.Big, title, areaW/2, h.height/2-90, col)
	sum := w.Summary()
	lines := strings.Split(strings.TrimRight(sum.Format(), "\n"), "\n")
	for i, l := range lines {
		drawCentred(screen, h.fonts.Small, l, areaW/2, h.height/2+i*16, colText)
	}
	drawCentred(screen, h.fonts.HUD, "R for the next night", areaW/2, h.height/2+len(lines)*16+30, colDim)
}
