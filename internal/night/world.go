package night

import (
	"fmt"
	"math/rand"

	"github.com/Garsondee/night-shift/internal/game"
)

// CatAgent is the log category for animatronic movement in the world.
const CatAgent = "agent"

// Options tune the world around the session.
type Options struct {
	Seed         int64
	NightSeconds float64 // survive this long to win
	MoveInterval float64 // seconds between movement opportunities
	OfficeStep   float64 // seconds per tile inside the office
	GuardSpeed   float64 // room widths per second
	DoorPatience int     // opportunities spent at a closed door before retreating
	Levels       map[game.AgentKind]int
	ReportEvery  int // ticks between reporter snapshots
}

// DefaultOptions returns a six-hour night of six minutes.
func DefaultOptions() Options {
	return Options{
		NightSeconds: 360,
		MoveInterval: 4.97,
		OfficeStep:   0.25,
		GuardSpeed:   0.8,
		DoorPatience: 2,
		Levels: map[game.AgentKind]int{
			game.KindBear:    3,
			game.KindRabbit:  8,
			game.KindChicken: 8,
			game.KindFox:     5,
		},
		ReportEvery: 40,
	}
}

// World is a headless host: it owns the office geometry, the animatronics
// and the guard, and drives the session only through game.Hooks.
type World struct {
	cfg   game.Config
	opts  Options
	story game.Story
	room  string

	hooks   *game.Hooks
	session *game.Session // kept after the hooks drop it, for reports
	office  *Office
	rng     *rand.Rand
	audio   game.AudioSink

	agents []*Animatronic
	lures  map[game.AgentID]*Lure
	nextID game.AgentID
	guard  game.PlayerInfo

	reporter *Reporter

	cues          map[game.Cue]int
	elapsed       float64
	outcome       Outcome
	caughtBy      game.AgentKind
	endedTick     int
	prompt        game.GameOverPrompt
	promptsShown  int
	paused        bool
	pausesVetoed  int
	aidsRequested int
}

// NewWorld starts a night. audio may be nil.
func NewWorld(cfg game.Config, opts Options, audio game.AudioSink) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("night: %w", err)
	}
	def := DefaultOptions()
	if opts.NightSeconds <= 0 {
		opts.NightSeconds = def.NightSeconds
	}
	if opts.MoveInterval <= 0 {
		opts.MoveInterval = def.MoveInterval
	}
	if opts.OfficeStep <= 0 {
		opts.OfficeStep = def.OfficeStep
	}
	if opts.GuardSpeed <= 0 {
		opts.GuardSpeed = def.GuardSpeed
	}
	if opts.Levels == nil {
		opts.Levels = def.Levels
	}
	if opts.ReportEvery <= 0 {
		opts.ReportEvery = def.ReportEvery
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}

	w := &World{
		cfg:      cfg,
		opts:     opts,
		story:    game.Story{IsStorySession: true, Character: cfg.Character},
		room:     cfg.EncounterRoom,
		office:   NewOffice(OfficeWidth, OfficeHeight),
		rng:      rand.New(rand.NewSource(opts.Seed)), // #nosec G404 -- game only
		audio:    audio,
		lures:    make(map[game.AgentID]*Lure),
		guard:    game.PlayerInfo{ID: 0, Number: 0, XFrac: 0.5},
		reporter: NewReporter(0),
		cues:     make(map[game.Cue]int),
	}
	w.hooks = game.NewHooks(cfg, game.Collaborators{
		Room:    w.office,
		Aids:    w,
		Audio:   w,
		Rand:    w.rng,
		OnEnded: func(s *game.Session) { w.endedTick = s.TickCount() },
	})
	w.session = w.hooks.RoomLoaded(w.room, w.story)
	if w.session == nil {
		return nil, fmt.Errorf("night: room %q does not start an encounter", w.room)
	}
	for _, k := range []game.AgentKind{game.KindBear, game.KindRabbit, game.KindChicken, game.KindFox} {
		w.SpawnAgent(k, w.room)
	}
	return w, nil
}

func (w *World) Config() game.Config         { return w.cfg }
func (w *World) Options() Options            { return w.opts }
func (w *World) Hooks() *game.Hooks          { return w.hooks }
func (w *World) Session() *game.Session      { return w.session }
func (w *World) Office() *Office             { return w.office }
func (w *World) Agents() []*Animatronic      { return w.agents }
func (w *World) Guard() game.PlayerInfo      { return w.guard }
func (w *World) Reporter() *Reporter         { return w.reporter }
func (w *World) Outcome() Outcome            { return w.outcome }
func (w *World) CaughtBy() game.AgentKind    { return w.caughtBy }
func (w *World) Elapsed() float64            { return w.elapsed }
func (w *World) Done() bool                  { return w.outcome != OutcomeRunning }
func (w *World) Paused() bool                { return w.paused }
func (w *World) PausesVetoed() int           { return w.pausesVetoed }
func (w *World) Prompt() game.GameOverPrompt { return w.prompt }
func (w *World) PromptsShown() int           { return w.promptsShown }
func (w *World) CueCount(c game.Cue) int     { return w.cues[c] }
func (w *World) Hour() string                { return HourLabel(w.elapsed, w.opts.NightSeconds) }

// DrainPerSecond is the power the current consumers draw each second at
// the simulation rate.
func (w *World) DrainPerSecond() float64 {
	s := w.session
	return s.Power.Usage(s.Consumers()) * TicksPerSecond
}

// GuardTile is the tile the guard stands on.
func (w *World) GuardTile() game.Tile { return w.office.GuardTile(w.guard.XFrac) }

// SpawnAgent adds an animatronic to room. Agents are refused in any room
// the encounter does not allow.
func (w *World) SpawnAgent(kind game.AgentKind, room string) (*Animatronic, bool) {
	if !w.hooks.AgentRoomAllowed(true, w.story, room) || Route(kind) == nil {
		return nil, false
	}
	a := &Animatronic{ID: w.nextID, Kind: kind, Size: 1, Level: w.opts.Levels[kind]}
	w.nextID++
	w.agents = append(w.agents, a)
	w.hooks.AgentCreated(a.ID, a.Kind, a.Size)
	if s := w.hooks.Session(); s != nil {
		s.AssignTask(a.ID, a.task())
	}
	return a, true
}

// RemoveAgent destroys an animatronic and its aid.
func (w *World) RemoveAgent(id game.AgentID) {
	for i, a := range w.agents {
		if a.ID == id {
			w.agents = append(w.agents[:i], w.agents[i+1:]...)
			break
		}
	}
	delete(w.lures, id)
	w.hooks.AgentDestroyed(id)
}

// SpawnAid hands the session a lure aimed at the guard.
func (w *World) SpawnAid(agent game.AgentID, kind game.AidKind) game.Aid {
	w.aidsRequested++
	l := NewLure(agent, kind, w.GuardTile)
	w.lures[agent] = l
	return l
}

// PlayCue counts the cue and forwards it to the host mixer.
func (w *World) PlayCue(c game.Cue) {
	w.cues[c]++
	if w.audio != nil {
		w.audio.PlayCue(c)
	}
}

// Pause toggles the pause menu unless the session vetoes it. It returns
// whether the menu changed.
func (w *World) Pause() bool {
	toggled := false
	w.hooks.ShowPauseMenu(func() {
		w.paused = !w.paused
		toggled = true
	})
	if !toggled {
		w.pausesVetoed++
	}
	return toggled
}

// Darkness is the fade the renderer should apply.
func (w *World) Darkness() float64 {
	return w.hooks.DarkPalette(func() float64 { return 0 })
}

// Step routes the guard's raw input, runs every animatronic's update and
// ticks the session. It returns the package the guard acted on.
func (w *World) Step(dt float64, raw game.InputSample) game.InputSample {
	if w.Done() || w.paused {
		return game.InputSample{}
	}
	pkg := w.hooks.CheckInput(w.guard, w.room, raw, func() game.InputSample { return raw })
	w.guard.XFrac = min(1, max(0, w.guard.XFrac+float64(pkg.X)*w.opts.GuardSpeed*dt))

	out := w.session.OutOfPower()
	for _, a := range w.agents {
		w.hooks.PlayerGuideUpdate(&a.Guidance, a.defaultGuide(out))
		w.hooks.AgentUpdate(a.ID, func() { w.updateAgent(a, dt) })
	}

	ended := w.hooks.Tick(dt)
	w.elapsed += dt
	if w.session.TickCount()%w.opts.ReportEvery == 0 {
		w.reporter.Collect(w)
	}
	switch {
	case ended:
		w.finishCaught()
	case w.elapsed >= w.opts.NightSeconds && !w.session.Jumpscare.Active():
		w.finish(OutcomeSurvived)
	}
	return pkg
}

func (w *World) updateAgent(a *Animatronic, dt float64) {
	s := w.session
	if s.Jumpscare.Active() || a.State == StateCaught {
		return
	}
	if a.State == StateInOffice {
		a.officeTime += dt
		if a.officeTime < w.opts.OfficeStep {
			return
		}
		a.officeTime = 0
		w.stepInOffice(a)
		return
	}
	if !a.Guidance.PursuePlayer {
		return
	}
	a.moveTimer += dt
	if a.moveTimer < w.opts.MoveInterval {
		return
	}
	a.moveTimer = 0
	hunting := s.OutOfPower() && a.Kind == game.KindBear
	if !hunting && w.rng.Intn(20) >= a.Level {
		return
	}
	w.advance(a, hunting)
}

func (w *World) advance(a *Animatronic, hunting bool) {
	s := w.session
	r := Route(a.Kind)
	side := a.DoorSide()
	switch a.State {
	case StateRoaming:
		if hunting {
			a.step = len(r) - 1
		} else {
			a.step++
		}
		a.moves++
		if a.step >= len(r)-1 {
			a.step = len(r) - 1
			a.State = StateAtDoor
		}
		loc := a.Location()
		s.Log.Add(s.TickCount(), a.ID.Label(), CatAgent, "move", loc.String(), float64(loc))
	case StateAtDoor:
		if s.DoorOpen(side) || hunting {
			a.State = StateInOffice
			a.Tile = w.office.Doorway(side)
			s.Log.Add(s.TickCount(), a.ID.Label(), CatAgent, "enter", side.String(), 0)
			break
		}
		a.doorWaits++
		if a.doorWaits > w.opts.DoorPatience {
			a.retreats++
			a.reset()
			s.Log.Add(s.TickCount(), a.ID.Label(), CatAgent, "retreat", side.String(), float64(a.retreats))
		}
	}
	s.AssignTask(a.ID, a.task())
}

func (w *World) stepInOffice(a *Animatronic) {
	s := w.session
	goal := w.GuardTile()
	if abs(a.Tile.X-goal.X)+abs(a.Tile.Y-goal.Y) <= 1 {
		a.State = StateCaught
		s.ReportThreatSuccess(a.ID)
		s.Log.Add(s.TickCount(), a.ID.Label(), CatAgent, "reach", a.Kind.String(), 0)
		return
	}
	fallback := func(t game.Tile) float64 {
		if w.office.Solid(t) {
			return game.ImpassableScore
		}
		return float64(abs(t.X-goal.X) + abs(t.Y-goal.Y))
	}
	best := a.Tile
	bestScore := w.hooks.HoverScoreOfTile(a.ID, a.Tile, fallback)
	for _, d := range dirs4 {
		t := game.Tile{X: a.Tile.X + d[0], Y: a.Tile.Y + d[1]}
		if sc := w.hooks.HoverScoreOfTile(a.ID, t, fallback); sc < bestScore {
			best, bestScore = t, sc
		}
	}
	if best == a.Tile {
		if path := w.office.FindPath(a.Tile, goal); len(path) > 0 {
			best = path[0]
		}
	}
	a.Tile = best
}

func (w *World) finishCaught() {
	w.caughtBy = w.session.CurrentJumpscare()
	if c := w.hooks.DeathCue(game.CueDeath); c != game.CueNone {
		w.PlayCue(c)
	}
	w.hooks.EnterGameOverMode(&w.prompt, func(p *game.GameOverPrompt) {
		p.GameOverMode = true
		p.PlayGameOverSound = true
	})
	if w.prompt.PlayGameOverSound {
		w.PlayCue(game.CueGameOver)
	}
	w.hooks.UpdateGameOverPrompt(&w.prompt, func(p *game.GameOverPrompt) {
		if p.GameOverMode {
			w.promptsShown++
		}
	})
	w.finish(OutcomeCaught)
}

func (w *World) finish(o Outcome) {
	w.outcome = o
	w.reporter.Collect(w)
	w.hooks.RoomUnloaded(w.room)
}
