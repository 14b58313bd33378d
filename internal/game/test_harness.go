package game

// TestSession is a headless session harness used exclusively by tests.
// It wires a session to in-memory collaborators that record what the
// session asked of them.
type TestSession struct {
	*Session
	Room    *GridRoom
	Aids    *RecordingSpawner
	Audio   *RecordingAudio
	Rand    *SeqRand
	Primary PlayerInfo

	cfg    Config
	agents []testAgent
}

type testAgent struct {
	id   AgentID
	kind AgentKind
	size float64
	task AgentTask
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessOptConfig sessionOptionKind = iota // tuning and room size, applied first
	sessOptAgent                           // agents, applied after the session exists
)

// SessionOption is a builder function applied to a TestSession during construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*TestSession)
}

// WithConfig replaces the whole tuning.
func WithConfig(cfg Config) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.cfg = cfg
	}}
}

// WithStartPower sets the starting power. Drain is zero unless WithDrain is used.
func WithStartPower(p float64) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.cfg.StartPower = p
	}}
}

// WithDrain sets base and per-consumer drain per tick.
func WithDrain(base, perConsumer float64) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.cfg.BaseDrain = base
		ts.cfg.ConsumerDrain = perConsumer
	}}
}

// WithRandValues makes light durations draw from vals in order.
func WithRandValues(vals ...int) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Rand = &SeqRand{Values: vals}
	}}
}

// WithRoomSize sets the tile size of the fake room.
func WithRoomSize(w, h int) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Room = NewGridRoom(w, h)
	}}
}

// WithVerboseLog turns on per-tick log entries.
func WithVerboseLog() SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.cfg.VerboseLog = true
	}}
}

// WithAgent registers an agent with a task.
func WithAgent(id AgentID, kind AgentKind, size float64, task AgentTask) SessionOption {
	return SessionOption{sessOptAgent, func(ts *TestSession) {
		ts.agents = append(ts.agents, testAgent{id: id, kind: kind, size: size, task: task})
	}}
}

// NewTestSession constructs a TestSession in two passes: tuning first, then
// agents once the session exists.
func NewTestSession(opts ...SessionOption) *TestSession {
	ts := &TestSession{
		cfg:     DefaultConfig(),
		Room:    NewGridRoom(40, 20),
		Aids:    &RecordingSpawner{},
		Audio:   &RecordingAudio{},
		Rand:    &SeqRand{Values: []int{0}},
		Primary: PlayerInfo{ID: 0, Number: 0, XFrac: 0.5},
	}
	ts.cfg.BaseDrain = 0
	ts.cfg.ConsumerDrain = 0
	for _, o := range opts {
		if o.kind == sessOptConfig {
			o.fn(ts)
		}
	}
	ts.Session = NewSession(ts.cfg, Collaborators{
		Room:  ts.Room,
		Aids:  ts.Aids,
		Audio: ts.Audio,
		Rand:  ts.Rand,
	})
	for _, o := range opts {
		if o.kind == sessOptAgent {
			o.fn(ts)
		}
	}
	for _, a := range ts.agents {
		ts.AgentCreated(a.id, a.kind, a.size)
		ts.AssignTask(a.id, a.task)
	}
	return ts
}

// Press routes one primary-player sample at xFrac and runs a 1/40 s tick.
func (ts *TestSession) Press(xFrac float64, in InputSample) InputSample {
	p := ts.Primary
	p.XFrac = xFrac
	out := ts.Step(1.0/40, []PlayerInput{{Player: p, Raw: in}})
	return out[0]
}

// Tap presses in and then releases it, so the next press is a fresh edge.
func (ts *TestSession) Tap(xFrac float64, in InputSample) {
	ts.Press(xFrac, in)
	ts.Press(xFrac, InputSample{})
}

// RunTicks advances n idle ticks of dt seconds.
func (ts *TestSession) RunTicks(n int, dt float64) {
	for i := 0; i < n; i++ {
		ts.Tick(dt)
	}
}

// RunUntil advances up to maxTicks, stopping early once predicate holds.
// Returns the tick at which it held, or -1.
func (ts *TestSession) RunUntil(predicate func(*TestSession) bool, maxTicks int, dt float64) int {
	for i := 0; i < maxTicks; i++ {
		ts.Tick(dt)
		if predicate(ts) {
			return ts.TickCount()
		}
	}
	return -1
}

// --- In-memory collaborators ---

// SeqRand returns Values in order (each clamped into [0, n)), repeating the
// last one when it runs out.
type SeqRand struct {
	Values []int
	next   int
}

func (r *SeqRand) Intn(n int) int {
	if len(r.Values) == 0 || n <= 0 {
		return 0
	}
	i := r.next
	if i >= len(r.Values) {
		i = len(r.Values) - 1
	} else {
		r.next++
	}
	v := r.Values[i] % n
	if v < 0 {
		v += n
	}
	return v
}

// GridRoom is a tile room with explicit solid tiles and proximity values.
type GridRoom struct {
	W, H      int
	solid     map[Tile]bool
	proximity map[Tile]int
}

// NewGridRoom returns an open w×h room with proximity 0 everywhere.
func NewGridRoom(w, h int) *GridRoom {
	return &GridRoom{W: w, H: h, solid: map[Tile]bool{}, proximity: map[Tile]int{}}
}

func (r *GridRoom) TileWidth() int              { return r.W }
func (r *GridRoom) TileHeight() int             { return r.H }
func (r *GridRoom) Solid(t Tile) bool           { return r.solid[t] }
func (r *GridRoom) TerrainProximity(t Tile) int { return r.proximity[t] }
func (r *GridRoom) SetSolid(t Tile)             { r.solid[t] = true }
func (r *GridRoom) SetProximity(t Tile, p int)  { r.proximity[t] = p }

// ScoreAid is an aid whose influence is a fixed score.
type ScoreAid struct {
	AidKind AidKind
	Score   float64
	Calls   int
}

func (a *ScoreAid) Kind() AidKind { return a.AidKind }

func (a *ScoreAid) InfluenceHoverScore(_ Tile, base float64) float64 {
	a.Calls++
	return base + a.Score
}

// RecordingSpawner hands out ScoreAids and remembers every request.
// While Refuse is set it returns nil.
type RecordingSpawner struct {
	Requests []AidKind
	Refuse   bool
	Score    float64
}

func (s *RecordingSpawner) SpawnAid(_ AgentID, kind AidKind) Aid {
	s.Requests = append(s.Requests, kind)
	if s.Refuse {
		return nil
	}
	return &ScoreAid{AidKind: kind, Score: s.Score}
}

// RecordingAudio remembers every cue played.
type RecordingAudio struct {
	Cues []Cue
}

func (a *RecordingAudio) PlayCue(c Cue) { a.Cues = append(a.Cues, c) }

// Count returns how many times c was played.
func (a *RecordingAudio) Count(c Cue) int {
	n := 0
	for _, x := range a.Cues {
		if x == c {
			n++
		}
	}
	return n
}
