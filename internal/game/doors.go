package game

// Side selects the left or right door/light pair.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	sideCount
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Horizontal bands, as a fraction of room width, that decide what the
// primary player's Grab and Throw actions reach.
const (
	lightBandLeft  = 0.425 // below: left light
	lightBandRight = 0.575 // at or above: right light; between: camera toggle
	doorBandLeft   = 0.45  // below: left door
	doorBandRight  = 0.55  // above: right door; between: nothing
)

// Default light duration bounds in ticks, inclusive.
const (
	DefaultLightMinTicks = 5
	DefaultLightMaxTicks = 20
)

// Rand is the random source used for light durations. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// DoorSide is one door and its light. A closed door blocks the doorway and
// draws power; sessions start with both doors closed.
type DoorSide struct {
	Open         bool
	LightCounter int // ticks left on an armed light; 0 means idle
}

// Lit reports whether the light is currently on.
func (d DoorSide) Lit() bool { return d.LightCounter > 0 }

// DoorLightController owns both door sides and gates new commands on power.
type DoorLightController struct {
	sides    [sideCount]DoorSide
	power    *PowerBudget
	rng      Rand
	minTicks int
	maxTicks int
}

// NewDoorLightController returns closed doors and idle lights.
func NewDoorLightController(power *PowerBudget, rng Rand, minTicks, maxTicks int) *DoorLightController {
	if minTicks < 1 {
		minTicks = 1
	}
	if maxTicks < minTicks {
		maxTicks = minTicks
	}
	return &DoorLightController{power: power, rng: rng, minTicks: minTicks, maxTicks: maxTicks}
}

// Side returns a copy of one side's state.
func (c *DoorLightController) Side(s Side) DoorSide {
	return c.sides[s]
}

// ArmLight lights side s for a random [min, max] tick duration. It is a
// no-op while the light is already on or the power is out, and returns
// whether the light was armed.
func (c *DoorLightController) ArmLight(s Side) bool {
	if c.power.OutOfPower {
		return false
	}
	d := &c.sides[s]
	if d.LightCounter != 0 {
		return false
	}
	d.LightCounter = c.minTicks + c.rng.Intn(c.maxTicks-c.minTicks+1)
	return true
}

// ToggleDoor flips side s. While the power is out the command is dropped.
// It returns whether the door moved.
func (c *DoorLightController) ToggleDoor(s Side) bool {
	if c.power.OutOfPower {
		return false
	}
	c.sides[s].Open = !c.sides[s].Open
	return true
}

// Tick decays every light by one tick. Power state does not matter here.
func (c *DoorLightController) Tick() {
	for i := range c.sides {
		if c.sides[i].LightCounter > 0 {
			c.sides[i].LightCounter--
		}
	}
}

// Consumers counts closed doors and lit lights for the power drain.
func (c *DoorLightController) Consumers() int {
	n := 0
	for _, d := range c.sides {
		if !d.Open {
			n++
		}
		if d.Lit() {
			n++
		}
	}
	return n
}

// lightRegion classifies a horizontal position for the Grab action.
// ok is false for the centre band, which toggles camera mode instead.
func lightRegion(xFrac float64) (s Side, ok bool) {
	switch {
	case xFrac < lightBandLeft:
		return SideLeft, true
	case xFrac < lightBandRight:
		return 0, false
	default:
		return SideRight, true
	}
}

// doorRegion classifies a horizontal position for the Throw action.
func doorRegion(xFrac float64) (s Side, ok bool) {
	switch {
	case xFrac < doorBandLeft:
		return SideLeft, true
	case xFrac > doorBandRight:
		return SideRight, true
	default:
		return 0, false
	}
}
