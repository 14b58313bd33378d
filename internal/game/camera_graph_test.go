package game

import "testing"

var allDirections = []Direction{Up, Down, Left, Right}

func TestNeighbor_ShowStageLeftIsPirateCove(t *testing.T) {
	cg := NewCameraGraph()
	if got := cg.Neighbor(ShowStage, Left); got != PirateCove {
		t.Fatalf("ShowStage left = %s, want %s", got, PirateCove)
	}
}

func TestNeighbor_UndefinedPairsReturnNowhere(t *testing.T) {
	cg := NewCameraGraph()
	for _, loc := range []Location{Nowhere, RestroomHallFar, RestroomHallClose, LeftDoor, RightDoor, You, Location(200)} {
		for _, d := range allDirections {
			if got := cg.Neighbor(loc, d); got != Nowhere {
				t.Fatalf("Neighbor(%s, %s) = %s, want nowhere", loc, d, got)
			}
		}
	}
	if got := cg.Neighbor(PartyRoomA, Left); got != Nowhere {
		t.Fatalf("PartyRoomA left = %s, want nowhere", got)
	}
}

func TestNeighbor_EdgesStayInsideGraph(t *testing.T) {
	cg := NewCameraGraph()
	cams := cg.Cameras()
	if len(cams) != 14 {
		t.Fatalf("expected 14 cameras, got %d", len(cams))
	}
	for _, loc := range cams {
		if loc.CamLabel() == "" {
			t.Fatalf("camera %s has no label", loc)
		}
		for _, d := range allDirections {
			next := cg.Neighbor(loc, d)
			if next != Nowhere && !cg.HasCamera(next) {
				t.Fatalf("%s %s leads to %s which is not a camera", loc, d, next)
			}
		}
	}
}

func TestNeighbor_MarkersAreNotKeys(t *testing.T) {
	cg := NewCameraGraph()
	for _, loc := range []Location{LeftDoor, RightDoor, You, Nowhere} {
		if cg.HasCamera(loc) {
			t.Fatalf("%s must not be a graph key", loc)
		}
	}
}

func TestSelectDirection_NowhereLeavesCursor(t *testing.T) {
	v := NewViewingState(NewCameraGraph())
	v.Current = PartyRoomA
	if v.SelectDirection(Left) {
		t.Fatal("move into nowhere should be rejected")
	}
	if v.Current != PartyRoomA {
		t.Fatalf("cursor moved to %s", v.Current)
	}
}

func TestSelectDirection_EveryUndefinedEdgeIsRejected(t *testing.T) {
	cg := NewCameraGraph()
	for _, loc := range cg.Cameras() {
		for _, d := range allDirections {
			v := NewViewingState(cg)
			v.Current = loc
			moved := v.SelectDirection(d)
			want := cg.Neighbor(loc, d)
			if want == Nowhere {
				if moved || v.Current != loc {
					t.Fatalf("%s %s: cursor changed to %s", loc, d, v.Current)
				}
				continue
			}
			if !moved || v.Current != want {
				t.Fatalf("%s %s: cursor=%s moved=%v, want %s", loc, d, v.Current, moved, want)
			}
		}
	}
}

func TestSelectAxes_BothAxesIsNoCommand(t *testing.T) {
	v := NewViewingState(NewCameraGraph())
	for _, xy := range [][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}, {0, 0}} {
		if v.SelectAxes(xy[0], xy[1]) {
			t.Fatalf("SelectAxes(%d,%d) should not move", xy[0], xy[1])
		}
		if v.Current != ShowStage {
			t.Fatalf("cursor moved to %s", v.Current)
		}
	}
	if !v.SelectAxes(0, -1) || v.Current != DiningArea {
		t.Fatalf("down from show stage should reach dining area, got %s", v.Current)
	}
}

func TestViewingState_SwitchSelectingOnlyFlips(t *testing.T) {
	v := NewViewingState(NewCameraGraph())
	v.SwitchSelecting()
	if !v.Selecting || v.InCameraMode || v.Current != ShowStage {
		t.Fatalf("unexpected state after switch: %+v", *v)
	}
	v.SwitchSelecting()
	if v.Selecting {
		t.Fatal("second switch should clear selecting")
	}
}
