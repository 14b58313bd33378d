package game

import "math"

// darknessTimeConstant is the e-folding time, in seconds, of the fade to
// black after power runs out.
const darknessTimeConstant = 4.0

// PowerBudget tracks the facility's remaining power.
// OutOfPower is monotonic: once set it stays set for the session.
type PowerBudget struct {
	Capacity        float64
	Remaining       float64
	BaseDrain       float64 // per tick, always applied
	PerConsumer     float64 // per tick, per active consumer
	OutOfPower      bool
	SinceOutOfPower float64 // seconds since power ran out
}

// NewPowerBudget returns a full budget.
func NewPowerBudget(capacity, baseDrain, perConsumer float64) *PowerBudget {
	if capacity < 0 {
		capacity = 0
	}
	return &PowerBudget{
		Capacity:    capacity,
		Remaining:   capacity,
		BaseDrain:   baseDrain,
		PerConsumer: perConsumer,
		OutOfPower:  capacity == 0,
	}
}

// Tick drains one tick's worth of power. It returns true on the tick power
// first runs out. SinceOutOfPower only accrues on ticks after that one, so
// it reads 0 at the instant power is lost.
func (p *PowerBudget) Tick(dt float64, consumers int) bool {
	if p.OutOfPower {
		p.SinceOutOfPower += dt
		return false
	}
	if consumers < 0 {
		consumers = 0
	}
	p.Remaining -= p.BaseDrain + p.PerConsumer*float64(consumers)
	if p.Remaining <= 0 {
		p.Remaining = 0
		p.OutOfPower = true
		return true
	}
	return false
}

// Usage returns the drain per tick for the given consumer count.
func (p *PowerBudget) Usage(consumers int) float64 {
	return p.BaseDrain + p.PerConsumer*float64(consumers)
}

// Percent returns remaining power as 0..100, rounded down.
func (p *PowerBudget) Percent() int {
	if p.Capacity <= 0 {
		return 0
	}
	return int(math.Floor(p.Remaining / p.Capacity * 100))
}

// maxDarkness is the largest float64 below 1. The exponential fade rounds
// to 1.0 after about 150 s in the dark; it is held just under instead.
var maxDarkness = math.Nextafter(1, 0)

// DarknessFactor is 0 at the instant power is lost and rises toward 1,
// never reaching it. It is 0 while power is on.
func (p *PowerBudget) DarknessFactor() float64 {
	if !p.OutOfPower {
		return 0
	}
	return math.Min(maxDarkness, 1-math.Exp(-p.SinceOutOfPower/darknessTimeConstant))
}
