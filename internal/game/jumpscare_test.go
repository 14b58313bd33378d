package game

import "testing"

func TestTrigger_OnlyFromIdle(t *testing.T) {
	j := NewJumpscareSequencer(2.5)
	if j.Trigger(KindNone) {
		t.Fatal("KindNone is not a jumpscare")
	}
	if !j.Trigger(KindRabbit) {
		t.Fatal("first trigger should succeed")
	}
	if j.Trigger(KindFox) {
		t.Fatal("second trigger must be ignored")
	}
	if j.Current() != KindRabbit {
		t.Fatalf("current = %s, want rabbit", j.Current())
	}
}

func TestJumpscareTick_EndsAtDuration(t *testing.T) {
	j := NewJumpscareSequencer(1)
	if j.Tick(5) {
		t.Fatal("idle sequencer never ends")
	}
	j.Trigger(KindBear)
	if j.Tick(0.5) {
		t.Fatal("ended too early")
	}
	if !j.Tick(0.5) {
		t.Fatal("should end once the timer reaches the duration")
	}
	if j.Phase() != JumpscareEnded || j.Tick(1) {
		t.Fatal("ended is terminal and reports only once")
	}
	if j.Trigger(KindFox) {
		t.Fatal("no way back to idle")
	}
	if j.Current() != KindBear {
		t.Fatalf("current = %s after end", j.Current())
	}
}

func TestNewJumpscareSequencer_DefaultDuration(t *testing.T) {
	if d := NewJumpscareSequencer(0).Duration(); d != DefaultJumpscareSeconds {
		t.Fatalf("duration = %v", d)
	}
}

func TestFilterDeathCue(t *testing.T) {
	j := NewJumpscareSequencer(1)
	if j.FilterDeathCue(CueDeath) != CueDeath {
		t.Fatal("idle sequencer lets the death cue through")
	}
	j.Trigger(KindChicken)
	if j.FilterDeathCue(CueDeath) != CueNone {
		t.Fatal("death cue should be vetoed")
	}
	if j.FilterDeathCue(CueDoor) != CueDoor {
		t.Fatal("other cues pass")
	}
	j.Tick(1)
	if j.FilterDeathCue(CueDeath) != CueNone {
		t.Fatal("still vetoed after the sequence ends")
	}
	if j.SuppressedDeathCues() != 2 {
		t.Fatalf("suppressed = %d, want 2", j.SuppressedDeathCues())
	}
}

func TestEnterGameOver_MutesOnlyWhenActive(t *testing.T) {
	j := NewJumpscareSequencer(1)
	p := &GameOverPrompt{GameOverMode: true, PlayGameOverSound: true}
	j.EnterGameOver(p)
	if !p.PlayGameOverSound {
		t.Fatal("idle sequencer leaves the sound alone")
	}
	j.Trigger(KindFox)
	j.EnterGameOver(p)
	if p.PlayGameOverSound {
		t.Fatal("game-over sound should be muted")
	}
}

func TestUpdatePrompt_RestoresFlagExactly(t *testing.T) {
	for _, active := range []bool{false, true} {
		for _, mode := range []bool{false, true} {
			j := NewJumpscareSequencer(1)
			if active {
				j.Trigger(KindBear)
			}
			p := &GameOverPrompt{GameOverMode: mode}
			var seen bool
			j.UpdatePrompt(p, func(p *GameOverPrompt) {
				seen = p.GameOverMode
				p.GameOverMode = !p.GameOverMode
			})
			if p.GameOverMode != mode {
				t.Fatalf("active=%v mode=%v: flag not restored", active, mode)
			}
			want := mode && !active
			if seen != want {
				t.Fatalf("active=%v mode=%v: update saw %v, want %v", active, mode, seen, want)
			}
		}
	}
}
