package night

import "github.com/Garsondee/night-shift/internal/game"

// Routes each animatronic walks, from its starting camera to a door marker.
var routes = map[game.AgentKind][]game.Location{
	game.KindBear: {
		game.ShowStage, game.DiningArea, game.Kitchen, game.Storage, game.BackHall, game.RightDoor,
	},
	game.KindRabbit: {
		game.ShowStage, game.DiningArea, game.PlayArea, game.PartyRoomB, game.RestroomHallCam,
		game.RestroomHallFar, game.RestroomHallClose, game.LeftDoor,
	},
	game.KindChicken: {
		game.ShowStage, game.PartyRoomC, game.PartyRoomD, game.DiningArea, game.Kitchen, game.Storage,
		game.BackHall, game.RightDoor,
	},
	game.KindFox: {
		game.PirateCove, game.PlayArea, game.PartyRoomB, game.RestroomHallCam, game.LeftDoor,
	},
}

// Route returns the walk for kind, or nil.
func Route(kind game.AgentKind) []game.Location { return routes[kind] }

// AnimatronicState is where an animatronic is in its night.
type AnimatronicState uint8

const (
	StateRoaming  AnimatronicState = iota // walking the camera route
	StateAtDoor                           // waiting outside a door
	StateInOffice                         // inside the office, closing on the guard
	StateCaught                           // reported success
)

func (s AnimatronicState) String() string {
	switch s {
	case StateAtDoor:
		return "at_door"
	case StateInOffice:
		return "in_office"
	case StateCaught:
		return "caught"
	default:
		return "roaming"
	}
}

// Animatronic is one roaming agent in the headless world.
type Animatronic struct {
	ID    game.AgentID
	Kind  game.AgentKind
	Size  float64
	Level int // 0..20, chance in 20 of moving on each opportunity

	State    AnimatronicState
	step     int // index into the route
	Tile     game.Tile
	Guidance game.Guidance

	moveTimer  float64
	doorWaits  int
	moves      int
	retreats   int
	officeTime float64
}

// Location is the camera or door marker the animatronic is at. Inside the
// office it reports the guard's position.
func (a *Animatronic) Location() game.Location {
	switch a.State {
	case StateInOffice, StateCaught:
		return game.You
	}
	r := Route(a.Kind)
	if a.step >= len(r) {
		return game.Nowhere
	}
	return r[a.step]
}

// DoorSide is the door the animatronic's route ends at.
func (a *Animatronic) DoorSide() game.Side {
	r := Route(a.Kind)
	if len(r) > 0 && r[len(r)-1] == game.LeftDoor {
		return game.SideLeft
	}
	return game.SideRight
}

// Moves is the number of route steps taken so far.
func (a *Animatronic) Moves() int { return a.moves }

// Retreats is how often a closed door sent the animatronic back.
func (a *Animatronic) Retreats() int { return a.retreats }

// task is what the director should orient the animatronic toward: its door
// once it is one step away, the cameras otherwise.
func (a *Animatronic) task() game.AgentTask {
	r := Route(a.Kind)
	if a.State != StateRoaming || a.step+2 >= len(r) {
		if a.DoorSide() == game.SideLeft {
			return game.TaskLeftDoor
		}
		return game.TaskRightDoor
	}
	return game.TaskCameras
}

// defaultGuide is the animatronic's own steering before the director's
// override: only the bear keeps hunting in the dark.
func (a *Animatronic) defaultGuide(outOfPower bool) func(*game.Guidance) {
	return func(g *game.Guidance) {
		if g.PersistCounter > 0 {
			g.PersistCounter--
		}
		g.PursuePlayer = outOfPower && a.Kind == game.KindBear
	}
}

func (a *Animatronic) reset() {
	a.State = StateRoaming
	a.step = 0
	a.doorWaits = 0
	a.officeTime = 0
}
