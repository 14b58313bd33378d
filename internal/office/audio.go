package office

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// cueVoice describes how a cue is synthesised.
type cueVoice struct {
	freq     float64 // start frequency, Hz
	sweep    float64 // end frequency, Hz; 0 holds freq
	duration time.Duration
	wave     Wave
	volume   float64 // beep volume exponent, 0 is unity
}

var cueVoices = map[game.Cue]cueVoice{
	game.CueDoor:       {freq: 70, sweep: 40, duration: 350 * time.Millisecond, wave: WaveSquare, volume: -1},
	game.CueLight:      {freq: 120, duration: 250 * time.Millisecond, wave: WaveSaw, volume: -2.5},
	game.CueCameraOn:   {freq: 900, sweep: 1400, duration: 90 * time.Millisecond, wave: WaveSine, volume: -2},
	game.CueCameraOff:  {freq: 1400, sweep: 700, duration: 90 * time.Millisecond, wave: WaveSine, volume: -2},
	game.CueCameraBlip: {freq: 1800, duration: 40 * time.Millisecond, wave: WaveSquare, volume: -3},
	game.CuePowerDown:  {freq: 440, sweep: 30, duration: 1800 * time.Millisecond, wave: WaveSaw, volume: -1},
	game.CueJumpscare:  {freq: 600, sweep: 2400, duration: 1200 * time.Millisecond, wave: WaveNoise, volume: 0.5},
	game.CueDeath:      {freq: 200, sweep: 50, duration: 900 * time.Millisecond, wave: WaveSquare, volume: -0.5},
	game.CueGameOver:   {freq: 330, sweep: 110, duration: 1500 * time.Millisecond, wave: WaveSine, volume: -1},
}

// SoundManager plays session cues through the beep speaker. It is safe to
// call from the game loop while the speaker goroutine mixes.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[game.Cue]int
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		played: make(map[game.Cue]int),
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted stops new cues from reaching the speaker. Cues are still counted.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

// Played returns how many times a cue was requested.
func (sm *SoundManager) Played(c game.Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// PlayCue implements game.AudioSink.
func (sm *SoundManager) PlayCue(c game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[c]++
	if !sm.initialized || sm.muted {
		return
	}
	s := CueStreamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CueStreamer synthesises a cue, or returns nil for cues with no voice.
func CueStreamer(c game.Cue) beep.Streamer {
	v, ok := cueVoices[c]
	if !ok {
		return nil
	}
	osc := NewOscillator(v.freq, v.sweep, v.duration, v.wave, sampleRate)
	return &effects.Volume{
		Streamer: NewEnvelope(osc, v.duration, 10*time.Millisecond, v.duration/3, sampleRate),
		Base:     2,
		Volume:   v.volume,
	}
}

// oscillator generates a raw wave with an optional linear frequency sweep.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a finite wave streamer.
func NewOscillator(freq, sweep float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	if sweep <= 0 {
		sweep = freq
	}
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq))), // #nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			// Noise ring-modulated by the sweep so the scream has a pitch.
			val = (o.rng.Float64()*2 - 1) * math.Sin(2*math.Pi*o.phase)
		}
		samples[i][0] = val * 0.3
		samples[i][1] = val * 0.3

		t := float64(o.position) / float64(o.duration)
		f := o.freq + (o.sweep-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
