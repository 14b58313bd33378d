package office

import (
	"testing"
	"time"

	"github.com/Garsondee/night-shift/internal/game"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillator_FiniteDuration(t *testing.T) {
	osc := NewOscillator(440, 0, 100*time.Millisecond, WaveSquare, sampleRate)
	n, peak := drain(t, osc)
	if want := sampleRate.N(100 * time.Millisecond); n != want {
		t.Fatalf("samples = %d, want %d", n, want)
	}
	if peak > 0.31 || peak < 0.29 {
		t.Fatalf("square peak = %v, want 0.3", peak)
	}
}

func TestCueStreamer_EveryVoicedCue(t *testing.T) {
	for c, v := range cueVoices {
		s := CueStreamer(c)
		if s == nil {
			t.Fatalf("%s has no streamer", c)
		}
		n, _ := drain(t, s)
		if n != sampleRate.N(v.duration) {
			t.Fatalf("%s: samples = %d, want %d", c, n, sampleRate.N(v.duration))
		}
	}
	if CueStreamer(game.CueNone) != nil {
		t.Fatal("CueNone has no voice")
	}
}

func TestEnvelope_StartsSilent(t *testing.T) {
	osc := NewOscillator(100, 0, 50*time.Millisecond, WaveSquare, sampleRate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, sampleRate)
	buf := make([][2]float64, 1)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("first sample = %v, want 0 at the start of the attack", buf[0][0])
	}
}

func TestSoundManager_CountsWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager()
	sm.PlayCue(game.CueDoor)
	sm.PlayCue(game.CueDoor)
	sm.SetMuted(true)
	sm.PlayCue(game.CueJumpscare)
	if sm.Played(game.CueDoor) != 2 || sm.Played(game.CueJumpscare) != 1 {
		t.Fatalf("door=%d jumpscare=%d", sm.Played(game.CueDoor), sm.Played(game.CueJumpscare))
	}
	sm.Cleanup()
}
