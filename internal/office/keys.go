package office

import (
	"github.com/Garsondee/night-shift/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyState reports whether a key is held. ebiten.IsKeyPressed in the game,
// a map in tests.
type KeyState func(ebiten.Key) bool

func anyPressed(pressed KeyState, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// SampleKeys maps the held keys to the guard's raw input. Edges are left to
// the session's input router, which remembers the previous sample.
//
//	A/D or arrows  move, or steer the camera cursor
//	W/S            steer the camera cursor
//	Space/E        hold at a side to light it, tap at the desk for the monitor
//	F              throw the nearest door
//	Tab            switch the monitor between browsing and selecting
//	M              map
//	C              crouch
func SampleKeys(pressed KeyState) game.InputSample {
	var in game.InputSample
	if anyPressed(pressed, ebiten.KeyA, ebiten.KeyArrowLeft) {
		in.X--
	}
	if anyPressed(pressed, ebiten.KeyD, ebiten.KeyArrowRight) {
		in.X++
	}
	if anyPressed(pressed, ebiten.KeyW, ebiten.KeyArrowUp) {
		in.Y++
	}
	if anyPressed(pressed, ebiten.KeyS, ebiten.KeyArrowDown) {
		in.Y--
	}
	in.Grab = anyPressed(pressed, ebiten.KeySpace, ebiten.KeyE)
	in.Throw = pressed(ebiten.KeyF)
	in.Jump = pressed(ebiten.KeyTab)
	in.Map = pressed(ebiten.KeyM)
	in.Crouch = pressed(ebiten.KeyC)
	return in
}
