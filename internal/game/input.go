package game

import "fmt"

// InputHistoryLen is how many routed samples are kept per player.
const InputHistoryLen = 10

// Soft fence: a player this far toward a room edge cannot push further out.
const (
	fenceLeft  = 0.3
	fenceRight = 0.7
)

// InputSample is one tick of a player's input. Axes are -1, 0 or 1 and
// positive Y is up.
type InputSample struct {
	X, Y   int
	Jump   bool
	Grab   bool
	Throw  bool
	Map    bool
	Crouch bool
}

// Zero reports whether the sample carries no input at all.
func (in InputSample) Zero() bool { return in == InputSample{} }

func (in InputSample) String() string {
	flags := []byte("-----")
	set := func(i int, on bool, c byte) {
		if on {
			flags[i] = c
		}
	}
	set(0, in.Jump, 'J')
	set(1, in.Grab, 'G')
	set(2, in.Throw, 'T')
	set(3, in.Map, 'M')
	set(4, in.Crouch, 'C')
	return fmt.Sprintf("(%+d,%+d) %s", in.X, in.Y, flags)
}

// InputHistory holds the most recent routed samples, newest first.
type InputHistory [InputHistoryLen]InputSample

// shift drops the oldest sample and frees slot 0 for the newest.
func (h *InputHistory) shift() {
	for i := len(h) - 1; i > 0; i-- {
		h[i] = h[i-1]
	}
	h[0] = InputSample{}
}

// PlayerID is the host's stable identifier for a player.
type PlayerID int

// Label returns the short log label, e.g. "P0".
func (id PlayerID) Label() string { return fmt.Sprintf("P%d", int(id)) }

// PlayerInfo is what the router needs to know about a player each tick.
type PlayerInfo struct {
	ID     PlayerID
	Number int     // 0 is the primary player
	XFrac  float64 // horizontal position as a fraction of room width

	NPC          bool
	Ghost        bool
	NoController bool
	Animatronic  bool // a player body driven by an agent
}

// Routable reports whether the router should handle this player at all.
func (p PlayerInfo) Routable() bool {
	return !p.NPC && !p.Ghost && !p.NoController && !p.Animatronic
}

// Primary reports whether p drives the cameras, lights and doors.
func (p PlayerInfo) Primary() bool { return p.Number == 0 }

// ControlPanel is what the router dispatches edge-triggered commands to.
type ControlPanel interface {
	InCameraMode() bool
	OutOfPower() bool
	ToggleCameraMode() bool
	SwitchCameraViewing()
	SelectCameraDirection(dir Direction) bool
	ArmLight(s Side) bool
	ToggleDoor(s Side) bool
}

// InputRouter turns raw per-player samples into the packages players act on.
type InputRouter struct {
	histories map[PlayerID]*InputHistory
	last      map[PlayerID]InputSample
	log       *SimLog
	tick      *int
}

// NewInputRouter returns a router with no players.
func NewInputRouter(log *SimLog, tick *int) *InputRouter {
	return &InputRouter{
		histories: make(map[PlayerID]*InputHistory),
		last:      make(map[PlayerID]InputSample),
		log:       log,
		tick:      tick,
	}
}

// History returns a copy of a player's routed history.
func (r *InputRouter) History(id PlayerID) InputHistory {
	if h, ok := r.histories[id]; ok {
		return *h
	}
	return InputHistory{}
}

// Last returns the raw sample last seen for a player.
func (r *InputRouter) Last(id PlayerID) InputSample {
	return r.last[id]
}

// PlayerDestroyed drops the player's history and edge state.
func (r *InputRouter) PlayerDestroyed(id PlayerID) {
	delete(r.histories, id)
	delete(r.last, id)
}

// Players returns how many players have router state.
func (r *InputRouter) Players() int { return len(r.histories) }

// Route shifts the player's history, builds this tick's package from raw,
// dispatches the primary player's commands to panel and returns the package.
func (r *InputRouter) Route(p PlayerInfo, raw InputSample, panel ControlPanel) InputSample {
	h, ok := r.histories[p.ID]
	if !ok {
		h = &InputHistory{}
		r.histories[p.ID] = h
	}
	h.shift()
	last := r.last[p.ID]

	var pkg InputSample
	if p.Primary() {
		pkg = r.routePrimary(p, raw, last, panel)
	} else {
		pkg = movementOnly(fence(p.XFrac, raw))
	}

	h[0] = pkg
	r.last[p.ID] = raw
	r.log.AddVerbose(*r.tick, p.ID.Label(), CatInput, "routed", pkg.String(), 0)
	return pkg
}

func (r *InputRouter) routePrimary(p PlayerInfo, cur, last InputSample, panel ControlPanel) InputSample {
	if panel.InCameraMode() {
		// The axes drive the cursor, so the body gets nothing.
		switch {
		case cur.Grab && !last.Grab:
			panel.ToggleCameraMode()
		case cur.Jump && !last.Jump:
			panel.SwitchCameraViewing()
		case cur.X > 0 && last.X <= 0 && cur.Y == 0:
			panel.SelectCameraDirection(Right)
		case cur.X < 0 && last.X >= 0 && cur.Y == 0:
			panel.SelectCameraDirection(Left)
		case cur.Y > 0 && last.Y <= 0 && cur.X == 0:
			panel.SelectCameraDirection(Up)
		case cur.Y < 0 && last.Y >= 0 && cur.X == 0:
			panel.SelectCameraDirection(Down)
		}
		return InputSample{}
	}

	pkg := fence(p.XFrac, cur)
	if panel.OutOfPower() {
		return movementOnly(pkg)
	}

	if cur.Grab {
		if s, ok := lightRegion(p.XFrac); ok {
			panel.ArmLight(s)
		} else if !last.Grab {
			panel.ToggleCameraMode()
		}
	}
	if cur.Throw && !last.Throw {
		if s, ok := doorRegion(p.XFrac); ok {
			panel.ToggleDoor(s)
		}
	}
	return pkg
}

// fence zeroes X for one tick when the player is pushing out past the soft
// fence. Nothing else in the sample changes.
func fence(xFrac float64, in InputSample) InputSample {
	if (in.X < 0 && xFrac <= fenceLeft) || (in.X > 0 && xFrac >= fenceRight) {
		in.X = 0
	}
	return in
}

// movementOnly strips the pick-up, throw and map actions.
func movementOnly(in InputSample) InputSample {
	in.Grab = false
	in.Throw = false
	in.Map = false
	return in
}
