package night

import "github.com/Garsondee/night-shift/internal/game"

// Aid weights: how strongly each lure pulls its agent toward the target.
const (
	cameraLureWeight = 0.5
	doorLureWeight   = 1.0
)

// Lure is the signaling aid the world attaches to an animatronic. It pulls
// the agent's hover choice toward a moving target tile, normally the guard.
type Lure struct {
	kind   game.AidKind
	weight float64
	target func() game.Tile
	agent  game.AgentID
	calls  int
}

// NewLure returns a lure of the given family aimed at target.
func NewLure(agent game.AgentID, kind game.AidKind, target func() game.Tile) *Lure {
	w := cameraLureWeight
	if kind == game.AidDoor {
		w = doorLureWeight
	}
	return &Lure{kind: kind, weight: w, target: target, agent: agent}
}

func (l *Lure) Kind() game.AidKind  { return l.kind }
func (l *Lure) Agent() game.AgentID { return l.agent }
func (l *Lure) Calls() int          { return l.calls }
func (l *Lure) Weight() float64     { return l.weight }
func (l *Lure) Target() game.Tile   { return l.target() }
func (l *Lure) String() string      { return l.kind.String() + " lure" }

// InfluenceHoverScore adds the weighted Manhattan distance to the target.
// Lower scores are preferred.
func (l *Lure) InfluenceHoverScore(t game.Tile, base float64) float64 {
	l.calls++
	tgt := l.target()
	return base + l.weight*float64(abs(t.X-tgt.X)+abs(t.Y-tgt.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
