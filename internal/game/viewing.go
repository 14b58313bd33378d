package game

// ViewingState is the camera-mode cursor over a CameraGraph.
// Current is only meaningful while InCameraMode is true.
type ViewingState struct {
	graph        *CameraGraph
	InCameraMode bool
	Current      Location
	Selecting    bool // browsing the feed vs. confirming a switch
}

// NewViewingState starts outside camera mode with the cursor on the show stage.
func NewViewingState(graph *CameraGraph) *ViewingState {
	return &ViewingState{graph: graph, Current: ShowStage}
}

// Graph is the camera adjacency the cursor moves over.
func (v *ViewingState) Graph() *CameraGraph { return v.graph }

func (v *ViewingState) EnterCameraMode() { v.InCameraMode = true }
func (v *ViewingState) ExitCameraMode()  { v.InCameraMode = false }

// ToggleCameraMode flips camera mode and returns the new value.
func (v *ViewingState) ToggleCameraMode() bool {
	v.InCameraMode = !v.InCameraMode
	return v.InCameraMode
}

// SwitchSelecting flips the selecting sub-mode. What that looks like is up
// to the renderer.
func (v *ViewingState) SwitchSelecting() {
	v.Selecting = !v.Selecting
}

// SelectDirection moves the cursor along dir. A move into Nowhere is
// rejected and the cursor stays put. It returns whether the cursor moved.
func (v *ViewingState) SelectDirection(dir Direction) bool {
	next := v.graph.Neighbor(v.Current, dir)
	if next == Nowhere {
		return false
	}
	v.Current = next
	return true
}

// SelectAxes turns a directional sample into a move. Only single-axis input
// counts: both axes set (or neither) is no command at all.
func (v *ViewingState) SelectAxes(x, y int) bool {
	dir, ok := axisDirection(x, y)
	if !ok {
		return false
	}
	return v.SelectDirection(dir)
}

// axisDirection maps a single-axis sample to a direction. Positive y is up.
func axisDirection(x, y int) (Direction, bool) {
	switch {
	case x != 0 && y != 0:
		return 0, false
	case x > 0:
		return Right, true
	case x < 0:
		return Left, true
	case y > 0:
		return Up, true
	case y < 0:
		return Down, true
	default:
		return 0, false
	}
}
