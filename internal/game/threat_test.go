package game

import "testing"

func TestApplyTaskEffects_AttachesMatchingAid(t *testing.T) {
	ts := NewTestSession(
		WithAgent(1, KindBear, 1, TaskCameras),
		WithAgent(2, KindRabbit, 1, TaskLeftDoor),
		WithAgent(3, KindChicken, 1, TaskNone),
	)
	ts.RunTicks(1, 1.0/40)
	if got := ts.Threat.Aid(1); got == nil || got.Kind() != AidCameras {
		t.Fatalf("agent 1 aid = %v, want cameras", got)
	}
	if got := ts.Threat.Aid(2); got == nil || got.Kind() != AidDoor {
		t.Fatalf("agent 2 aid = %v, want door", got)
	}
	if ts.Threat.Aid(3) != nil {
		t.Fatal("an agent without a task gets no aid")
	}
	if len(ts.Aids.Requests) != 2 {
		t.Fatalf("requests = %v, want 2", ts.Aids.Requests)
	}
}

func TestApplyTaskEffects_AtMostOneAid(t *testing.T) {
	ts := NewTestSession(WithAgent(1, KindFox, 1, TaskRightDoor))
	ts.RunTicks(20, 1.0/40)
	if len(ts.Aids.Requests) != 1 {
		t.Fatalf("spawned %d aids, want 1", len(ts.Aids.Requests))
	}
	ts.AssignTask(1, TaskCameras)
	ts.RunTicks(1, 1.0/40)
	if len(ts.Aids.Requests) != 1 {
		t.Fatal("a task change must not attach a second aid")
	}
}

func TestApplyTaskEffects_RetriesWhenSpawnerRefuses(t *testing.T) {
	ts := NewTestSession(WithAgent(1, KindBear, 1, TaskLeftDoor))
	ts.Aids.Refuse = true
	ts.Aids.Requests = nil
	ts.Threat.DetachAid(1)
	ts.RunTicks(3, 1.0/40)
	if ts.Threat.Aid(1) != nil {
		t.Fatal("nothing should be attached while the spawner refuses")
	}
	if len(ts.Aids.Requests) != 3 {
		t.Fatalf("requests = %d, want one per tick", len(ts.Aids.Requests))
	}
	ts.Aids.Refuse = false
	ts.RunTicks(1, 1.0/40)
	if ts.Threat.Aid(1) == nil {
		t.Fatal("aid should attach once the spawner cooperates")
	}
}

func TestHoverBias_OutOfBoundsIsImpassable(t *testing.T) {
	ts := NewTestSession(WithRoomSize(10, 5), WithAgent(1, KindBear, 1, TaskLeftDoor))
	ts.RunTicks(1, 1.0/40)
	for _, tile := range []Tile{{-1, 2}, {10, 2}, {3, -1}, {3, 5}} {
		if got := ts.HoverBias(1, tile, nil); got != ImpassableScore {
			t.Fatalf("tile %v = %v, want impassable", tile, got)
		}
	}
}

func TestHoverBias_SolidAndFarTilesAreImpassable(t *testing.T) {
	ts := NewTestSession(WithRoomSize(10, 5), WithAgent(1, KindBear, 2, TaskRightDoor))
	ts.Aids.Score = 3.5
	ts.RunTicks(1, 1.0/40)
	ts.Room.SetSolid(Tile{1, 1})
	ts.Room.SetProximity(Tile{2, 2}, 13)
	ts.Room.SetProximity(Tile{3, 3}, 12)

	if got := ts.HoverBias(1, Tile{1, 1}, nil); got != ImpassableScore {
		t.Fatalf("solid tile = %v", got)
	}
	if got := ts.HoverBias(1, Tile{2, 2}, nil); got != ImpassableScore {
		t.Fatalf("tile past the proximity cutoff = %v", got)
	}
	if got := ts.HoverBias(1, Tile{3, 3}, nil); got != 3.5 {
		t.Fatalf("tile at the cutoff = %v, want the aid's 3.5", got)
	}
}

func TestHoverBias_FallsBackWithoutDoorTaskOrAid(t *testing.T) {
	ts := NewTestSession(
		WithAgent(1, KindBear, 1, TaskCameras),
		WithAgent(2, KindRabbit, 1, TaskLeftDoor),
	)
	ts.Aids.Refuse = true
	ts.RunTicks(1, 1.0/40)
	fallback := func(Tile) float64 { return 42 }
	if got := ts.HoverBias(1, Tile{-5, -5}, fallback); got != 42 {
		t.Fatalf("camera-tasked agent = %v, want fallback", got)
	}
	if got := ts.HoverBias(2, Tile{-5, -5}, fallback); got != 42 {
		t.Fatalf("door agent without aid = %v, want fallback", got)
	}
	if got := ts.HoverBias(99, Tile{0, 0}, fallback); got != 42 {
		t.Fatalf("unknown agent = %v, want fallback", got)
	}
}

func TestForcePlayerPursuit_OnlyWhilePowered(t *testing.T) {
	ts := NewTestSession(WithStartPower(1), WithDrain(0.5, 0), WithAgent(1, KindBear, 1, TaskNone))
	g := &Guidance{PersistCounter: 3}
	if !ts.Threat.ForcePlayerPursuit(g) {
		t.Fatal("override should apply while powered")
	}
	if !g.PursuePlayer || g.PersistCounter != pursuitPersistence {
		t.Fatalf("powered guidance = %+v", *g)
	}

	ts.RunTicks(2, 1.0/40)
	if !ts.OutOfPower() {
		t.Fatal("precondition: power should be out")
	}
	host := Guidance{PursuePlayer: false, PersistCounter: 3}
	if ts.Threat.ForcePlayerPursuit(&host) {
		t.Fatal("override must not apply without power")
	}
	if host.PursuePlayer || host.PersistCounter != 3 {
		t.Fatalf("host guidance changed: %+v", host)
	}
	if ts.Threat.ForcePlayerPursuit(nil) {
		t.Fatal("nil guidance must be ignored")
	}
}

func TestAgentDestroyed_ClearsSideTables(t *testing.T) {
	ts := NewTestSession(WithAgent(1, KindBear, 1, TaskLeftDoor))
	ts.RunTicks(1, 1.0/40)
	ts.AgentDestroyed(1)
	if ts.TaskOf(1) != TaskNone || ts.Threat.Aid(1) != nil || ts.Threat.Kind(1) != KindNone {
		t.Fatal("destroyed agent still has state")
	}
	if len(ts.Threat.Agents()) != 0 {
		t.Fatalf("agents = %v", ts.Threat.Agents())
	}
	if ts.AssignTask(1, TaskCameras) {
		t.Fatal("assigning to an unknown agent should fail")
	}
}

func TestAssignTask_LogsChanges(t *testing.T) {
	ts := NewTestSession(WithAgent(4, KindFox, 1, TaskCameras))
	ts.AssignTask(4, TaskCameras)
	ts.AssignTask(4, TaskRightDoor)
	if got := ts.Log.CountCategory(CatTask, "assign"); got != 2 {
		t.Fatalf("task log entries = %d, want 2", got)
	}
}
