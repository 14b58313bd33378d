package game

// Location identifies a camera node or a logical position in the facility.
//
// Facility layout (not to scale):
//
//	  ┌─────┐      ┌──┐
//	  │     │ ┌──┐ │4 │
//	┌─┤    3└─┘  └─┴─ ┴─┬─┐
//	│2A        1C       2C│
//	└─┤              1A ├─┘
//	┌─┤                 ├─┐
//	│2B       1D    1B  2D│
//	└─┤          ┌┬ ──┬─┴─┘
//	  │          ││5  │
//	  │          │└───┘
//	┌─┼ ┬┬──── ┬─┘
//	│   ││    7│
//	├─┤ │└──┬ ┬┘
//	│   │   │ │
//	└─┤ ├───┤ │
//	  │6  ○  8│
//	  │ ├───┴─┘
//	  └─┘
type Location uint8

const (
	Nowhere           Location = iota // no edge in this direction
	ShowStage                         // cam 1A
	DiningArea                        // cam 1B
	PirateCove                        // cam 1C
	PlayArea                          // cam 1D
	PartyRoomA                        // cam 2A
	PartyRoomB                        // cam 2B
	PartyRoomC                        // cam 2C
	PartyRoomD                        // cam 2D
	MainEntrance                      // cam 3
	Backstage                         // cam 4
	Kitchen                           // cam 5
	RestroomHallCam                   // cam 6
	RestroomHallFar                   // agent routing only
	RestroomHallClose                 // agent routing only
	Storage                           // cam 7
	BackHall                          // cam 8
	LeftDoor                          // logical marker, never a graph key
	RightDoor                         // logical marker, never a graph key
	You                               // logical marker, never a graph key
	locationCount
)

var locationNames = [locationCount]string{
	Nowhere:           "nowhere",
	ShowStage:         "show stage",
	DiningArea:        "dining area",
	PirateCove:        "pirate cove",
	PlayArea:          "play area",
	PartyRoomA:        "party room A",
	PartyRoomB:        "party room B",
	PartyRoomC:        "party room C",
	PartyRoomD:        "party room D",
	MainEntrance:      "main entrance",
	Backstage:         "backstage",
	Kitchen:           "kitchen",
	RestroomHallCam:   "restroom hall",
	RestroomHallFar:   "restroom hall (far)",
	RestroomHallClose: "restroom hall (close)",
	Storage:           "storage",
	BackHall:          "back hall",
	LeftDoor:          "left door",
	RightDoor:         "right door",
	You:               "you",
}

var locationCams = [locationCount]string{
	ShowStage:       "1A",
	DiningArea:      "1B",
	PirateCove:      "1C",
	PlayArea:        "1D",
	PartyRoomA:      "2A",
	PartyRoomB:      "2B",
	PartyRoomC:      "2C",
	PartyRoomD:      "2D",
	MainEntrance:    "3",
	Backstage:       "4",
	Kitchen:         "5",
	RestroomHallCam: "6",
	Storage:         "7",
	BackHall:        "8",
}

func (l Location) String() string {
	if l >= locationCount {
		return "unknown"
	}
	return locationNames[l]
}

// CamLabel returns the short camera label ("1A", "6", ...) or "" for
// locations that have no camera.
func (l Location) CamLabel() string {
	if l >= locationCount {
		return ""
	}
	return locationCams[l]
}

// Direction is one of the four camera-navigation directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// Connection holds the four outgoing edges of a camera node.
type Connection struct {
	Up    Location
	Down  Location
	Left  Location
	Right Location
}

// To returns the edge in direction d.
func (c Connection) To(d Direction) Location {
	switch d {
	case Up:
		return c.Up
	case Down:
		return c.Down
	case Left:
		return c.Left
	case Right:
		return c.Right
	default:
		return Nowhere
	}
}

// CameraGraph is the read-only camera adjacency for a session.
type CameraGraph struct {
	edges map[Location]Connection
}

// NewCameraGraph builds the facility camera graph.
func NewCameraGraph() *CameraGraph {
	return &CameraGraph{edges: map[Location]Connection{
		ShowStage:       {Up: Backstage, Down: DiningArea, Left: PirateCove, Right: PartyRoomC},
		DiningArea:      {Up: ShowStage, Down: Kitchen, Left: PlayArea, Right: PartyRoomD},
		PirateCove:      {Up: Nowhere, Down: PlayArea, Left: MainEntrance, Right: ShowStage},
		PlayArea:        {Up: PirateCove, Down: Storage, Left: PartyRoomB, Right: DiningArea},
		PartyRoomA:      {Up: Nowhere, Down: PartyRoomB, Left: Nowhere, Right: MainEntrance},
		PartyRoomB:      {Up: PartyRoomA, Down: RestroomHallCam, Left: Nowhere, Right: PlayArea},
		PartyRoomC:      {Up: Nowhere, Down: PartyRoomD, Left: ShowStage, Right: Nowhere},
		PartyRoomD:      {Up: PartyRoomC, Down: Nowhere, Left: DiningArea, Right: Nowhere},
		MainEntrance:    {Up: Nowhere, Down: PlayArea, Left: PartyRoomA, Right: PirateCove},
		Backstage:       {Up: Nowhere, Down: ShowStage, Left: MainEntrance, Right: Nowhere},
		Kitchen:         {Up: DiningArea, Down: Storage, Left: PlayArea, Right: Nowhere},
		RestroomHallCam: {Up: PartyRoomB, Down: Nowhere, Left: Nowhere, Right: BackHall},
		Storage:         {Up: PlayArea, Down: BackHall, Left: RestroomHallCam, Right: Kitchen},
		BackHall:        {Up: Storage, Down: Nowhere, Left: RestroomHallCam, Right: Nowhere},
	}}
}

// Neighbor returns the location reached from loc in direction dir, or
// Nowhere when no such edge exists. It never fails.
func (cg *CameraGraph) Neighbor(loc Location, dir Direction) Location {
	c, ok := cg.edges[loc]
	if !ok {
		return Nowhere
	}
	return c.To(dir)
}

// HasCamera reports whether loc is a key of the graph.
func (cg *CameraGraph) HasCamera(loc Location) bool {
	_, ok := cg.edges[loc]
	return ok
}

// Cameras returns every camera location in enum order.
func (cg *CameraGraph) Cameras() []Location {
	out := make([]Location, 0, len(cg.edges))
	for l := Location(0); l < locationCount; l++ {
		if _, ok := cg.edges[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
