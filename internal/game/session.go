package game

import (
	"fmt"
	"math/rand"
)

// Cue is an audio cue the session plays or vetoes.
type Cue uint8

const (
	CueNone Cue = iota
	CueDeath
	CueGameOver
	CueDoor
	CueLight
	CueCameraOn
	CueCameraOff
	CueCameraBlip
	CuePowerDown
	CueJumpscare
)

func (c Cue) String() string {
	switch c {
	case CueDeath:
		return "death"
	case CueGameOver:
		return "game over"
	case CueDoor:
		return "door"
	case CueLight:
		return "light"
	case CueCameraOn:
		return "camera on"
	case CueCameraOff:
		return "camera off"
	case CueCameraBlip:
		return "camera blip"
	case CuePowerDown:
		return "power down"
	case CueJumpscare:
		return "jumpscare"
	default:
		return "none"
	}
}

// AudioSink plays cues for the session. It is the host's mixer.
type AudioSink interface {
	PlayCue(c Cue)
}

// Collaborators are the host services a session calls into. Any of them may
// be nil.
type Collaborators struct {
	Room    Room
	Aids    AidSpawner
	Audio   AudioSink
	Rand    Rand
	OnEnded func(s *Session)
}

// PlayerInput is one player's raw sample for a Step.
type PlayerInput struct {
	Player PlayerInfo
	Raw    InputSample
}

// Session is the whole encounter. A nil *Session means no encounter is
// running; Hooks checks for that before every call.
type Session struct {
	cfg Config

	Graph     *CameraGraph
	Power     *PowerBudget
	Viewing   *ViewingState
	Doors     *DoorLightController
	Threat    *ThreatDirector
	Jumpscare *JumpscareSequencer
	Input     *InputRouter
	Log       *SimLog

	collab Collaborators

	tick    int
	elapsed float64
	reports []AgentID
	ended   bool
}

// NewSession builds a session from cfg. Without a Rand in collab the light
// durations come from a source seeded with cfg.Seed.
func NewSession(cfg Config, collab Collaborators) *Session {
	if collab.Rand == nil {
		collab.Rand = rand.New(rand.NewSource(cfg.Seed)) // #nosec G404 -- game only
	}
	s := &Session{cfg: cfg, collab: collab}
	s.Log = NewSimLog(cfg.VerboseLog)
	s.Graph = NewCameraGraph()
	s.Power = NewPowerBudget(cfg.StartPower, cfg.BaseDrain, cfg.ConsumerDrain)
	s.Viewing = NewViewingState(s.Graph)
	s.Doors = NewDoorLightController(s.Power, collab.Rand, cfg.LightMinTicks, cfg.LightMaxTicks)
	s.Threat = NewThreatDirector(s.Power, s.Log, &s.tick)
	s.Jumpscare = NewJumpscareSequencer(cfg.JumpscareSeconds)
	s.Input = NewInputRouter(s.Log, &s.tick)
	s.Log.Add(0, "--", CatSession, "start", fmt.Sprintf("power=%.0f room=%s", cfg.StartPower, cfg.EncounterRoom), cfg.StartPower)
	return s
}

// Config returns the tuning the session was built with.
func (s *Session) Config() Config { return s.cfg }

// TickCount is the number of completed ticks.
func (s *Session) TickCount() int { return s.tick }

// Elapsed is the session time in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Ended reports whether the jumpscare has run out. An ended session no
// longer ticks but still answers the veto queries until it is dropped.
func (s *Session) Ended() bool { return s.ended }

// Collaborators returns the host services in use.
func (s *Session) Collaborators() Collaborators { return s.collab }

func (s *Session) play(c Cue) {
	if s.collab.Audio != nil && c != CueNone {
		s.collab.Audio.PlayCue(c)
	}
}

// --- Exposed state ---

func (s *Session) OutOfPower() bool            { return s.Power.OutOfPower }
func (s *Session) SinceOutOfPower() float64    { return s.Power.SinceOutOfPower }
func (s *Session) DarknessFactor() float64     { return s.Power.DarknessFactor() }
func (s *Session) InCameraMode() bool          { return s.Viewing.InCameraMode }
func (s *Session) CurrentCamera() Location     { return s.Viewing.Current }
func (s *Session) LeftLightCounter() int       { return s.Doors.Side(SideLeft).LightCounter }
func (s *Session) RightLightCounter() int      { return s.Doors.Side(SideRight).LightCounter }
func (s *Session) DoorOpen(side Side) bool     { return s.Doors.Side(side).Open }
func (s *Session) CurrentJumpscare() AgentKind { return s.Jumpscare.Current() }

// Consumers is the number of power consumers active right now.
func (s *Session) Consumers() int {
	n := s.Doors.Consumers()
	if s.Viewing.InCameraMode {
		n++
	}
	return n
}

// --- Commands ---

// ToggleCameraMode enters or leaves camera mode. Entering needs power;
// leaving is always allowed.
func (s *Session) ToggleCameraMode() bool {
	if !s.Viewing.InCameraMode && s.Power.OutOfPower {
		return false
	}
	on := s.Viewing.ToggleCameraMode()
	if on {
		s.Log.Add(s.tick, "--", CatCamera, "enter", s.Viewing.Current.String(), 1)
		s.play(CueCameraOn)
	} else {
		s.Log.Add(s.tick, "--", CatCamera, "exit", s.Viewing.Current.String(), 0)
		s.play(CueCameraOff)
	}
	return true
}

// SwitchCameraViewing flips the viewing sub-mode.
func (s *Session) SwitchCameraViewing() {
	s.Viewing.SwitchSelecting()
	s.Log.Add(s.tick, "--", CatCamera, "selecting", fmt.Sprintf("%v", s.Viewing.Selecting), 0)
}

// SelectCameraDirection moves the camera cursor.
func (s *Session) SelectCameraDirection(dir Direction) bool {
	from := s.Viewing.Current
	if !s.Viewing.SelectDirection(dir) {
		return false
	}
	s.Log.Add(s.tick, "--", CatCamera, "move", fmt.Sprintf("%s -> %s", from, s.Viewing.Current), float64(s.Viewing.Current))
	s.play(CueCameraBlip)
	return true
}

// ToggleDoor flips a door if there is power.
func (s *Session) ToggleDoor(side Side) bool {
	if !s.Doors.ToggleDoor(side) {
		s.Log.Add(s.tick, "--", CatDoor, "rejected", side.String(), 0)
		return false
	}
	state := "closed"
	if s.Doors.Side(side).Open {
		state = "open"
	}
	s.Log.Add(s.tick, "--", CatDoor, "toggle", side.String()+" "+state, 0)
	s.play(CueDoor)
	return true
}

// ArmLight lights a side if it is idle and there is power.
func (s *Session) ArmLight(side Side) bool {
	if !s.Doors.ArmLight(side) {
		return false
	}
	n := s.Doors.Side(side).LightCounter
	s.Log.Add(s.tick, "--", CatLight, "arm", fmt.Sprintf("%s %d ticks", side, n), float64(n))
	s.play(CueLight)
	return true
}

// --- Agents and players ---

func (s *Session) AgentCreated(id AgentID, kind AgentKind, size float64) {
	s.Threat.AgentCreated(id, kind, size)
	s.Log.Add(s.tick, id.Label(), CatSession, "agent_created", kind.String(), size)
}

func (s *Session) AgentDestroyed(id AgentID) {
	s.Threat.AgentDestroyed(id)
	s.Log.Add(s.tick, id.Label(), CatSession, "agent_destroyed", "", 0)
}

func (s *Session) PlayerDestroyed(id PlayerID) {
	s.Input.PlayerDestroyed(id)
	s.Log.Add(s.tick, id.Label(), CatSession, "player_destroyed", "", 0)
}

func (s *Session) AssignTask(id AgentID, task AgentTask) bool { return s.Threat.AssignTask(id, task) }
func (s *Session) TaskOf(id AgentID) AgentTask                { return s.Threat.TaskOf(id) }

// HoverBias scores a tile for an agent; see ThreatDirector.HoverBias.
func (s *Session) HoverBias(id AgentID, t Tile, fallback func(Tile) float64) float64 {
	return s.Threat.HoverBias(id, t, s.collab.Room, fallback)
}

// ReportThreatSuccess records that an agent reached the player. The
// jumpscare is decided at the end of the current tick.
func (s *Session) ReportThreatSuccess(id AgentID) {
	s.reports = append(s.reports, id)
}

// RouteInput routes one player's raw sample and returns the package the
// player should act on this tick.
func (s *Session) RouteInput(p PlayerInfo, raw InputSample) InputSample {
	return s.Input.Route(p, raw, s)
}

// --- Tick ---

// Step routes this tick's input and then runs Tick.
func (s *Session) Step(dt float64, inputs []PlayerInput) []InputSample {
	out := make([]InputSample, len(inputs))
	for i, in := range inputs {
		if !in.Player.Routable() {
			continue
		}
		out[i] = s.RouteInput(in.Player, in.Raw)
	}
	s.Tick(dt)
	return out
}

// Tick advances the session by dt seconds. Input must already have been
// routed for this tick; Tick then runs, in order:
//  1. power accrual against this tick's consumers,
//  2. light decay,
//  3. threat direction,
//  4. jumpscare evaluation.
func (s *Session) Tick(dt float64) {
	if s.ended {
		return
	}
	s.tick++
	s.elapsed += dt

	// 1. POWER
	consumers := s.Consumers()
	if s.Power.Tick(dt, consumers) {
		s.Log.Add(s.tick, "--", CatPower, "out", fmt.Sprintf("after %.1fs", s.elapsed), 0)
		s.play(CuePowerDown)
	}
	s.Log.AddVerbose(s.tick, "--", CatPower, "remaining", fmt.Sprintf("%.3f (%d consumers)", s.Power.Remaining, consumers), s.Power.Remaining)

	// 2. DECAY
	wasLit := [sideCount]bool{s.Doors.Side(SideLeft).Lit(), s.Doors.Side(SideRight).Lit()}
	s.Doors.Tick()
	for i := Side(0); i < sideCount; i++ {
		if wasLit[i] && !s.Doors.Side(i).Lit() {
			s.Log.Add(s.tick, "--", CatLight, "expire", i.String(), 0)
		}
	}

	// 3. THREAT
	s.Threat.Tick(s.collab.Aids)

	// 4. JUMPSCARE
	if s.Jumpscare.Tick(dt) {
		s.ended = true
		s.Log.Add(s.tick, "--", CatJumpscare, "ended", s.Jumpscare.Current().String(), s.Jumpscare.Timer())
		s.Log.Add(s.tick, "--", CatSession, "end", "jumpscare", s.elapsed)
		if s.collab.OnEnded != nil {
			s.collab.OnEnded(s)
		}
		return
	}
	for _, id := range s.reports {
		kind := s.Threat.Kind(id)
		if s.Jumpscare.Trigger(kind) {
			s.Log.Add(s.tick, id.Label(), CatJumpscare, "trigger", kind.String(), float64(kind))
			s.play(CueJumpscare)
		}
	}
	s.reports = s.reports[:0]
}
