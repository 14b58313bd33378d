package night

import "github.com/Garsondee/night-shift/internal/game"

// TicksPerSecond is the fixed simulation rate hosts step the world at.
const TicksPerSecond = 40

// RunNight plays one night with a ScriptedGuard until it is decided or
// maxTicks have passed. maxTicks <= 0 means no cap beyond the night length.
func RunNight(cfg game.Config, opts Options, maxTicks int) (*World, error) {
	w, err := NewWorld(cfg, opts, nil)
	if err != nil {
		return nil, err
	}
	guard := NewScriptedGuard()
	dt := 1.0 / TicksPerSecond
	for i := 0; !w.Done() && (maxTicks <= 0 || i < maxTicks); i++ {
		w.Step(dt, guard.Next(w.View()))
	}
	return w, nil
}
