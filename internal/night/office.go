package night

import (
	"container/heap"
	"math"

	"github.com/Garsondee/night-shift/internal/game"
)

// Default office size in tiles.
const (
	OfficeWidth  = 32
	OfficeHeight = 12
)

// Office is the encounter room's tile geometry. Walls run round the edge
// with one doorway on each side, and a desk sits against the back wall.
// It satisfies game.Room.
type Office struct {
	cols      int
	rows      int
	solid     []bool
	proximity []int // tiles to the nearest solid tile, -1 for solid tiles
}

// NewOffice builds a walled office of w×h tiles.
func NewOffice(w, h int) *Office {
	if w < 8 {
		w = 8
	}
	if h < 6 {
		h = 6
	}
	o := &Office{
		cols:  w,
		rows:  h,
		solid: make([]bool, w*h),
	}
	for x := 0; x < w; x++ {
		o.solid[x] = true
		o.solid[(h-1)*w+x] = true
	}
	for y := 0; y < h; y++ {
		o.solid[y*w] = true
		o.solid[y*w+w-1] = true
	}
	door := o.DoorwayRow()
	o.solid[door*w] = false
	o.solid[door*w+w-1] = false

	// Desk: a block against the back wall, centred.
	deskW := w / 4
	x0 := (w - deskW) / 2
	for y := h - 3; y < h-1; y++ {
		for x := x0; x < x0+deskW; x++ {
			o.solid[y*w+x] = true
		}
	}
	o.computeProximity()
	return o
}

func (o *Office) TileWidth() int  { return o.cols }
func (o *Office) TileHeight() int { return o.rows }

// InBounds reports whether t lies inside the grid.
func (o *Office) InBounds(t game.Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < o.cols && t.Y < o.rows
}

// Solid reports whether t is a wall or furniture. Out-of-bounds tiles are solid.
func (o *Office) Solid(t game.Tile) bool {
	if !o.InBounds(t) {
		return true
	}
	return o.solid[t.Y*o.cols+t.X]
}

// TerrainProximity is the number of steps from t to the nearest solid tile.
func (o *Office) TerrainProximity(t game.Tile) int {
	if !o.InBounds(t) {
		return 0
	}
	return o.proximity[t.Y*o.cols+t.X]
}

// DoorwayRow is the row both doorways are cut into.
func (o *Office) DoorwayRow() int { return o.rows / 2 }

// Doorway returns the doorway tile on side s.
func (o *Office) Doorway(s game.Side) game.Tile {
	if s == game.SideLeft {
		return game.Tile{X: 0, Y: o.DoorwayRow()}
	}
	return game.Tile{X: o.cols - 1, Y: o.DoorwayRow()}
}

// GuardTile maps the guard's horizontal fraction to the tile in front of the desk.
func (o *Office) GuardTile(xFrac float64) game.Tile {
	x := int(math.Round(xFrac * float64(o.cols-1)))
	x = max(1, min(o.cols-2, x))
	return game.Tile{X: x, Y: o.rows - 4}
}

// computeProximity runs a multi-source BFS out from every solid tile.
func (o *Office) computeProximity() {
	o.proximity = make([]int, len(o.solid))
	queue := make([]int, 0, len(o.solid))
	for i, s := range o.solid {
		if s {
			o.proximity[i] = -1
			queue = append(queue, i)
		} else {
			o.proximity[i] = math.MaxInt32
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		d := o.proximity[i]
		if d < 0 {
			d = 0
		}
		cx, cy := i%o.cols, i/o.cols
		for _, dir := range dirs4 {
			nx, ny := cx+dir[0], cy+dir[1]
			if nx < 0 || ny < 0 || nx >= o.cols || ny >= o.rows {
				continue
			}
			ni := ny*o.cols + nx
			if o.proximity[ni] > d+1 {
				o.proximity[ni] = d + 1
				queue = append(queue, ni)
			}
		}
	}
}

// --- A* pathfinding ---

type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int            { return len(ol) }
func (ol openList) Less(i, j int) bool  { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int)       { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x interface{}) { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() interface{}   { old := *ol; n := old[len(old)-1]; old[len(old)-1] = nil; *ol = old[:len(old)-1]; return n }

var dirs4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FindPath returns the tiles from start (exclusive) to goal (inclusive)
// using 4-way moves. Returns nil if no path exists.
func (o *Office) FindPath(start, goal game.Tile) []game.Tile {
	if o.Solid(start) || o.Solid(goal) {
		return nil
	}
	if start == goal {
		return []game.Tile{}
	}
	key := func(cx, cy int) int { return cy*o.cols + cx }
	heuristic := func(ax, ay int) float64 {
		return math.Abs(float64(ax-goal.X)) + math.Abs(float64(ay-goal.Y))
	}

	first := &pathNode{cx: start.X, cy: start.Y, h: heuristic(start.X, start.Y)}
	ol := &openList{first}
	heap.Init(ol)
	closed := make(map[int]bool)
	best := map[int]*pathNode{key(start.X, start.Y): first}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cx == goal.X && cur.cy == goal.Y {
			return buildPath(cur)
		}
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true
		for _, d := range dirs4 {
			nx, ny := cur.cx+d[0], cur.cy+d[1]
			if o.Solid(game.Tile{X: nx, Y: ny}) {
				continue
			}
			nk := key(nx, ny)
			if closed[nk] {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[nk]; ok && g >= prev.g {
				continue
			}
			n := &pathNode{cx: nx, cy: ny, g: g, h: heuristic(nx, ny), parent: cur}
			best[nk] = n
			heap.Push(ol, n)
		}
	}
	return nil
}

func buildPath(end *pathNode) []game.Tile {
	var rev []game.Tile
	for n := end; n.parent != nil; n = n.parent {
		rev = append(rev, game.Tile{X: n.cx, Y: n.cy})
	}
	out := make([]game.Tile, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}
	return out
}
