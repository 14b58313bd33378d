package terminal

import (
	"github.com/Garsondee/night-shift/internal/game"
	"github.com/gdamore/tcell/v2"
)

// holdTicks is how long one key press counts as held. Terminals report
// presses and auto-repeat but never releases.
const holdTicks = 6

// Action is one control the guard can hold.
type Action int

const (
	ActLeft Action = iota
	ActRight
	ActUp
	ActDown
	ActGrab
	ActThrow
	ActSwitch
	ActMap
	actionCount
)

// ActionForKey maps a key event to a guard control.
func ActionForKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActLeft, true
	case tcell.KeyRight:
		return ActRight, true
	case tcell.KeyUp:
		return ActUp, true
	case tcell.KeyDown:
		return ActDown, true
	case tcell.KeyTab:
		return ActSwitch, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return ActLeft, true
		case 'd', 'D':
			return ActRight, true
		case 'w', 'W':
			return ActUp, true
		case 's', 'S':
			return ActDown, true
		case ' ', 'e', 'E':
			return ActGrab, true
		case 'f', 'F':
			return ActThrow, true
		case 'm', 'M':
			return ActMap, true
		}
	}
	return 0, false
}

// Latch turns key presses into held controls that expire after holdTicks.
type Latch struct {
	until [actionCount]int
}

// Press holds a for holdTicks from tick. Opposite directions cancel.
func (l *Latch) Press(a Action, tick int) {
	switch a {
	case ActLeft:
		l.until[ActRight] = 0
	case ActRight:
		l.until[ActLeft] = 0
	case ActUp:
		l.until[ActDown] = 0
	case ActDown:
		l.until[ActUp] = 0
	}
	l.until[a] = tick + holdTicks
}

// Release drops every held control.
func (l *Latch) Release() {
	l.until = [actionCount]int{}
}

func (l *Latch) held(a Action, tick int) bool { return tick < l.until[a] }

// Sample returns the raw input for tick.
func (l *Latch) Sample(tick int) game.InputSample {
	var in game.InputSample
	if l.held(ActLeft, tick) {
		in.X = -1
	}
	if l.held(ActRight, tick) {
		in.X = 1
	}
	if l.held(ActUp, tick) {
		in.Y = 1
	}
	if l.held(ActDown, tick) {
		in.Y = -1
	}
	in.Grab = l.held(ActGrab, tick)
	in.Throw = l.held(ActThrow, tick)
	in.Jump = l.held(ActSwitch, tick)
	in.Map = l.held(ActMap, tick)
	return in
}
