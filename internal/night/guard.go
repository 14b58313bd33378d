package night

import "github.com/Garsondee/night-shift/internal/game"

// View is what the guard can see from the office on a given tick. Door
// occupants are only visible while that side's light is on.
type View struct {
	Tick         int
	XFrac        float64
	Power        int
	OutOfPower   bool
	InCameraMode bool
	Camera       game.Location
	LeftLit      bool
	RightLit     bool
	LeftOpen     bool
	RightOpen    bool
	AgentAtLeft  bool
	AgentAtRight bool
	OnCamera     []game.AgentKind // animatronics at the viewed camera, camera mode only
}

// View builds the guard's view of the current tick.
func (w *World) View() View {
	s := w.session
	v := View{
		Tick:         s.TickCount(),
		XFrac:        w.guard.XFrac,
		Power:        s.Power.Percent(),
		OutOfPower:   s.OutOfPower(),
		InCameraMode: s.InCameraMode(),
		Camera:       s.CurrentCamera(),
		LeftLit:      s.LeftLightCounter() > 0,
		RightLit:     s.RightLightCounter() > 0,
		LeftOpen:     s.DoorOpen(game.SideLeft),
		RightOpen:    s.DoorOpen(game.SideRight),
	}
	for _, a := range w.agents {
		if a.State == StateAtDoor {
			if a.DoorSide() == game.SideLeft {
				v.AgentAtLeft = v.AgentAtLeft || v.LeftLit
			} else {
				v.AgentAtRight = v.AgentAtRight || v.RightLit
			}
		}
		if v.InCameraMode && a.State == StateRoaming && a.Location() == v.Camera {
			v.OnCamera = append(v.OnCamera, a.Kind)
		}
	}
	return v
}

// Where the guard stands to reach each side's light and door.
const (
	guardLeftSpot   = 0.38
	guardRightSpot  = 0.62
	guardCentreSpot = 0.5
	guardSpotSlack  = 0.04
)

type guardPhase uint8

const (
	phaseWalkLeft guardPhase = iota
	phaseLookLeft
	phaseWalkRight
	phaseLookRight
	phaseWalkCentre
	phaseCameras
)

// ScriptedGuard plays the night guard for headless runs. It sweeps left and
// right checking lights, shuts a door on anything standing in it, reopens
// empty doors to save power, and glances at the cameras every few sweeps.
type ScriptedGuard struct {
	CameraEvery int

	phase  guardPhase
	queue  []game.InputSample
	sweeps int
	closes int
	opens  int
}

// NewScriptedGuard returns a guard that checks the cameras every third sweep.
func NewScriptedGuard() *ScriptedGuard {
	return &ScriptedGuard{CameraEvery: 3}
}

// Closes is how many times the guard shut a door on a visitor.
func (g *ScriptedGuard) Closes() int { return g.closes }

// Opens is how many times the guard reopened an empty door.
func (g *ScriptedGuard) Opens() int { return g.opens }

// Next returns the raw sample for this tick.
func (g *ScriptedGuard) Next(v View) game.InputSample {
	if len(g.queue) > 0 {
		in := g.queue[0]
		g.queue = g.queue[1:]
		return in
	}
	switch g.phase {
	case phaseWalkLeft:
		if v.XFrac <= guardLeftSpot {
			g.phase = phaseLookLeft
			g.queue = append(g.queue, game.InputSample{})
			return game.InputSample{Grab: true}
		}
		return game.InputSample{X: -1}
	case phaseLookLeft:
		g.phase = phaseWalkRight
		return g.decide(v.LeftLit, v.AgentAtLeft, v.LeftOpen)
	case phaseWalkRight:
		if v.XFrac >= guardRightSpot {
			g.phase = phaseLookRight
			g.queue = append(g.queue, game.InputSample{})
			return game.InputSample{Grab: true}
		}
		return game.InputSample{X: 1}
	case phaseLookRight:
		g.sweeps++
		g.phase = phaseWalkLeft
		if g.CameraEvery > 0 && g.sweeps%g.CameraEvery == 0 {
			g.phase = phaseWalkCentre
		}
		return g.decide(v.RightLit, v.AgentAtRight, v.RightOpen)
	case phaseWalkCentre:
		switch {
		case v.XFrac > guardCentreSpot+guardSpotSlack:
			return game.InputSample{X: -1}
		case v.XFrac < guardCentreSpot-guardSpotSlack:
			return game.InputSample{X: 1}
		}
		g.phase = phaseCameras
		g.queue = append(g.queue,
			game.InputSample{},
			game.InputSample{Jump: true}, game.InputSample{},
			game.InputSample{Y: -1}, game.InputSample{},
			game.InputSample{X: -1}, game.InputSample{},
		)
		return game.InputSample{Grab: true}
	default: // phaseCameras
		g.phase = phaseWalkLeft
		if !v.InCameraMode {
			return game.InputSample{}
		}
		g.queue = append(g.queue, game.InputSample{})
		return game.InputSample{Grab: true}
	}
}

// decide throws the door when what the light shows disagrees with it.
func (g *ScriptedGuard) decide(lit, occupied, open bool) game.InputSample {
	if !lit {
		return game.InputSample{}
	}
	switch {
	case occupied && open:
		g.closes++
	case !occupied && !open:
		g.opens++
	default:
		return game.InputSample{}
	}
	g.queue = append(g.queue, game.InputSample{})
	return game.InputSample{Throw: true}
}
