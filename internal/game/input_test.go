package game

import "testing"

func TestRoute_CentreGrabEntersCameraMode(t *testing.T) {
	ts := NewTestSession()
	out := ts.Press(0.5, InputSample{Grab: true})
	if !ts.InCameraMode() {
		t.Fatal("grab in the centre band should enter camera mode")
	}
	if !out.Grab {
		t.Fatal("powered primary keeps its grab on the way in")
	}
	if ts.Audio.Count(CueCameraOn) != 1 {
		t.Fatalf("camera-on cue count = %d, want 1", ts.Audio.Count(CueCameraOn))
	}
}

func TestRoute_HeldGrabTogglesOnlyOnEdge(t *testing.T) {
	ts := NewTestSession()
	ts.Press(0.5, InputSample{Grab: true})
	ts.Press(0.5, InputSample{Grab: true})
	ts.Press(0.5, InputSample{Grab: true})
	if !ts.InCameraMode() {
		t.Fatal("holding grab must not toggle camera mode back off")
	}
}

func TestRoute_CameraModeGivesBodyNothing(t *testing.T) {
	ts := NewTestSession()
	ts.Tap(0.5, InputSample{Grab: true})
	out := ts.Press(0.5, InputSample{X: -1, Jump: true, Throw: true})
	if !out.Zero() {
		t.Fatalf("camera mode package = %s, want zero", out)
	}
}

func TestRoute_CameraNavigation(t *testing.T) {
	ts := NewTestSession()
	ts.Tap(0.5, InputSample{Grab: true})
	ts.Tap(0.5, InputSample{X: -1})
	if ts.CurrentCamera() != PirateCove {
		t.Fatalf("camera = %s, want pirate cove", ts.CurrentCamera())
	}
	// Holding the stick is one move, not one per tick.
	ts.Press(0.5, InputSample{Y: -1})
	ts.Press(0.5, InputSample{Y: -1})
	if ts.CurrentCamera() != PlayArea {
		t.Fatalf("camera = %s, want play area", ts.CurrentCamera())
	}
}

func TestRoute_DiagonalIsNoCommand(t *testing.T) {
	ts := NewTestSession()
	ts.Tap(0.5, InputSample{Grab: true})
	ts.Tap(0.5, InputSample{X: 1, Y: 1})
	ts.Tap(0.5, InputSample{X: -1, Y: -1})
	if ts.CurrentCamera() != ShowStage {
		t.Fatalf("camera moved to %s on diagonal input", ts.CurrentCamera())
	}
}

func TestRoute_GrabEdgeWinsOverDirection(t *testing.T) {
	ts := NewTestSession()
	ts.Tap(0.5, InputSample{Grab: true})
	ts.Press(0.5, InputSample{Grab: true, X: -1})
	if ts.InCameraMode() {
		t.Fatal("grab edge should have left camera mode")
	}
	if ts.CurrentCamera() != ShowStage {
		t.Fatalf("the direction in the same sample must be ignored, camera = %s", ts.CurrentCamera())
	}
}

func TestRoute_JumpSwitchesSelecting(t *testing.T) {
	ts := NewTestSession()
	ts.Tap(0.5, InputSample{Grab: true})
	ts.Tap(0.5, InputSample{Jump: true})
	if !ts.Viewing.Selecting {
		t.Fatal("jump in camera mode should switch the viewing sub-mode")
	}
}

func TestRoute_HeldGrabArmsSideLight(t *testing.T) {
	ts := NewTestSession(WithRandValues(3))
	ts.Press(0.1, InputSample{Grab: true})
	// armed for 8 ticks, then one tick of decay
	if got := ts.LeftLightCounter(); got != 7 {
		t.Fatalf("left light = %d, want 7", got)
	}
	if ts.InCameraMode() {
		t.Fatal("a side grab must not touch camera mode")
	}
	ts.Press(0.9, InputSample{Grab: true})
	if ts.RightLightCounter() == 0 {
		t.Fatal("right light should be armed")
	}
}

func TestRoute_ThrowTogglesDoorOnEdge(t *testing.T) {
	ts := NewTestSession()
	ts.Press(0.1, InputSample{Throw: true})
	ts.Press(0.1, InputSample{Throw: true})
	if !ts.DoorOpen(SideLeft) {
		t.Fatal("left door should have opened exactly once")
	}
	ts.Tap(0.5, InputSample{Throw: true})
	if ts.DoorOpen(SideRight) {
		t.Fatal("centre throw reaches no door")
	}
	ts.Tap(0.8, InputSample{Throw: true})
	if !ts.DoorOpen(SideRight) {
		t.Fatal("right door should have opened")
	}
}

func TestRoute_OutOfPowerStripsActions(t *testing.T) {
	ts := NewTestSession(WithStartPower(0))
	out := ts.Press(0.1, InputSample{X: 1, Throw: true, Grab: true, Map: true, Jump: true, Crouch: true})
	want := InputSample{X: 1, Jump: true, Crouch: true}
	if out != want {
		t.Fatalf("package = %s, want %s", out, want)
	}
	if ts.DoorOpen(SideLeft) || ts.LeftLightCounter() != 0 {
		t.Fatal("no command may reach the panel while out of power")
	}
}

func TestRoute_SoftFence(t *testing.T) {
	for _, tc := range []struct {
		x    float64
		in   int
		want int
	}{
		{0.2, -1, 0},
		{0.3, -1, 0},
		{0.31, -1, -1},
		{0.2, 1, 1},
		{0.7, 1, 0},
		{0.69, 1, 1},
		{0.9, -1, -1},
	} {
		ts := NewTestSession(WithStartPower(0))
		out := ts.Press(tc.x, InputSample{X: tc.in})
		if out.X != tc.want {
			t.Fatalf("x=%v in=%d: got %d, want %d", tc.x, tc.in, out.X, tc.want)
		}
	}
}

func TestRoute_SecondaryPlayerIsMovementOnly(t *testing.T) {
	ts := NewTestSession()
	p := PlayerInfo{ID: 7, Number: 1, XFrac: 0.5}
	out := ts.Step(1.0/40, []PlayerInput{{Player: p, Raw: InputSample{X: 1, Grab: true, Throw: true, Map: true, Jump: true}}})
	if out[0] != (InputSample{X: 1, Jump: true}) {
		t.Fatalf("secondary package = %s", out[0])
	}
	if ts.InCameraMode() {
		t.Fatal("only the primary player drives the panel")
	}
}

func TestRoute_HistoryNewestFirst(t *testing.T) {
	ts := NewTestSession(WithStartPower(0))
	for i := 0; i < InputHistoryLen+3; i++ {
		x := 0
		if i%2 == 0 {
			x = 1
		}
		ts.Press(0.5, InputSample{X: x})
	}
	h := ts.Input.History(ts.Primary.ID)
	// The last press (i=12) had x=1.
	if h[0].X != 1 || h[1].X != 0 {
		t.Fatalf("history head = %s, %s", h[0], h[1])
	}
	if len(h) != InputHistoryLen {
		t.Fatalf("history length %d", len(h))
	}
}

func TestStep_SkipsUnroutablePlayers(t *testing.T) {
	ts := NewTestSession()
	players := []PlayerInfo{
		{ID: 1, Number: 0, NPC: true},
		{ID: 2, Number: 0, Ghost: true},
		{ID: 3, Number: 0, NoController: true},
		{ID: 4, Number: 0, Animatronic: true},
	}
	var in []PlayerInput
	for _, p := range players {
		in = append(in, PlayerInput{Player: p, Raw: InputSample{Grab: true, X: 1}})
	}
	out := ts.Step(1.0/40, in)
	for i, o := range out {
		if !o.Zero() {
			t.Fatalf("player %d got %s", i, o)
		}
	}
	if ts.Input.Players() != 0 || ts.InCameraMode() {
		t.Fatal("unroutable players must not touch the router")
	}
}

func TestPlayerDestroyed_DropsEdgeState(t *testing.T) {
	ts := NewTestSession()
	ts.Press(0.5, InputSample{Grab: true})
	ts.PlayerDestroyed(ts.Primary.ID)
	if ts.Input.Players() != 0 {
		t.Fatal("router state should be dropped")
	}
	// Without the old sample the held grab reads as a new edge.
	ts.Press(0.5, InputSample{Grab: true})
	if ts.InCameraMode() {
		t.Fatal("a fresh grab edge should have left camera mode")
	}
}
