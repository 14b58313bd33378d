package game

import (
	"math"
	"testing"
)

func TestPowerBudget_DrainsBasePlusConsumers(t *testing.T) {
	p := NewPowerBudget(10, 0.5, 0.25)
	p.Tick(0.1, 2)
	if math.Abs(p.Remaining-9.0) > 1e-9 {
		t.Fatalf("remaining = %v, want 9", p.Remaining)
	}
	if p.OutOfPower {
		t.Fatal("should still have power")
	}
}

func TestPowerBudget_ClampsAndFlipsOnce(t *testing.T) {
	p := NewPowerBudget(1, 0.6, 0)
	if p.Tick(1, 0) {
		t.Fatal("first tick should not run out")
	}
	if !p.Tick(1, 0) {
		t.Fatal("second tick should report running out")
	}
	if p.Remaining != 0 || !p.OutOfPower {
		t.Fatalf("remaining=%v oop=%v, want 0/true", p.Remaining, p.OutOfPower)
	}
	if p.SinceOutOfPower != 0 {
		t.Fatalf("timer should read 0 at the instant power is lost, got %v", p.SinceOutOfPower)
	}
	if p.Tick(1, 0) {
		t.Fatal("running out is reported only once")
	}
	if p.SinceOutOfPower != 1 {
		t.Fatalf("timer = %v, want 1", p.SinceOutOfPower)
	}
}

func TestPowerBudget_OutOfPowerIsMonotonic(t *testing.T) {
	p := NewPowerBudget(0, 0, 0)
	if !p.OutOfPower {
		t.Fatal("empty budget starts out of power")
	}
	p.Remaining = 50 // nothing in the session refills, but even so
	p.Tick(1, 0)
	if !p.OutOfPower {
		t.Fatal("out of power must never revert")
	}
}

func TestDarknessFactor_Scenario(t *testing.T) {
	p := NewPowerBudget(0, 0, 0)
	p.SinceOutOfPower = 4
	want := 1 - math.Exp(-1)
	if got := p.DarknessFactor(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("darkness = %v, want %v", got, want)
	}
	if math.Abs(p.DarknessFactor()-0.632) > 0.001 {
		t.Fatalf("darkness = %v, want ~0.632", p.DarknessFactor())
	}
}

func TestDarknessFactor_StrictlyIncreasingAndBounded(t *testing.T) {
	p := NewPowerBudget(0, 0, 0)
	prev := -1.0
	// Quarter-second steps stay distinguishable in float64 up to ~135 s.
	for i := 0; i <= 480; i++ {
		p.SinceOutOfPower = float64(i) * 0.25
		d := p.DarknessFactor()
		if d < 0 || d >= 1 {
			t.Fatalf("darkness %v out of [0,1) at t=%v", d, p.SinceOutOfPower)
		}
		if d <= prev {
			t.Fatalf("darkness not increasing at t=%v: %v <= %v", p.SinceOutOfPower, d, prev)
		}
		prev = d
	}
	p.SinceOutOfPower = 0
	if p.DarknessFactor() != 0 {
		t.Fatal("darkness must be 0 at the instant power is lost")
	}
}

func TestDarknessFactor_LongBlackoutStaysBelowOne(t *testing.T) {
	p := NewPowerBudget(0, 0, 0)
	prev := 0.0
	for _, since := range []float64{120, 130, 130 + 1.0/60, 150, 160, 200, 300, 360, 3600} {
		p.SinceOutOfPower = since
		d := p.DarknessFactor()
		if d >= 1 {
			t.Fatalf("darkness reached 1 at t=%v", since)
		}
		if d < prev {
			t.Fatalf("darkness fell at t=%v: %v < %v", since, d, prev)
		}
		prev = d
	}
	if prev != math.Nextafter(1, 0) {
		t.Fatalf("long blackout darkness = %v, want the largest value below 1", prev)
	}
}

func TestDarknessFactor_ZeroWhilePowered(t *testing.T) {
	p := NewPowerBudget(10, 0, 0)
	p.SinceOutOfPower = 100
	if p.DarknessFactor() != 0 {
		t.Fatal("darkness only applies once power is out")
	}
}

func TestPowerBudget_Percent(t *testing.T) {
	p := NewPowerBudget(200, 0, 0)
	p.Remaining = 99.9
	if got := p.Percent(); got != 49 {
		t.Fatalf("percent = %d, want 49", got)
	}
}

func TestPowerBudget_Usage(t *testing.T) {
	p := NewPowerBudget(100, 0.01, 0.02)
	if got := p.Usage(0); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("idle usage = %v, want 0.01", got)
	}
	if got := p.Usage(3); math.Abs(got-0.07) > 1e-12 {
		t.Fatalf("usage with 3 consumers = %v, want 0.07", got)
	}
	before := p.Remaining
	p.Tick(1.0/40, 3)
	if got := before - p.Remaining; math.Abs(got-p.Usage(3)) > 1e-12 {
		t.Fatalf("tick drained %v, usage says %v", got, p.Usage(3))
	}
}
