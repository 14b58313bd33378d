package game

// Hooks is the fixed set of entry points a host calls from its own routines.
// Each one checks for a live session and otherwise runs the host's original
// behaviour unchanged.
type Hooks struct {
	cfg     Config
	session *Session
	collab  Collaborators
	room    string
}

// NewHooks returns hooks with no session running.
func NewHooks(cfg Config, collab Collaborators) *Hooks {
	return &Hooks{cfg: cfg, collab: collab}
}

// Session returns the running session, or nil.
func (h *Hooks) Session() *Session { return h.session }

// Config returns the tuning new sessions are built with.
func (h *Hooks) Config() Config { return h.cfg }

// --- Lifecycle ---

// RoomLoaded starts a session when room and st qualify. An already running
// session is kept. It returns the session in effect after the call.
func (h *Hooks) RoomLoaded(room string, st Story) *Session {
	if h.session != nil || !h.cfg.Qualifies(room, st) {
		return h.session
	}
	h.session = NewSession(h.cfg, h.collab)
	h.room = room
	return h.session
}

// RoomUnloaded drops the session when its room goes away.
func (h *Hooks) RoomUnloaded(room string) {
	if h.session != nil && room == h.room {
		h.session.Log.Add(h.session.tick, "--", CatSession, "unload", room, 0)
		h.session = nil
		h.room = ""
	}
}

// Tick advances the running session. It returns true on the tick the
// session ends.
func (h *Hooks) Tick(dt float64) bool {
	s := h.session
	if s == nil || s.ended {
		return false
	}
	s.Tick(dt)
	return s.ended
}

func (h *Hooks) AgentCreated(id AgentID, kind AgentKind, size float64) {
	if h.session != nil {
		h.session.AgentCreated(id, kind, size)
	}
}

func (h *Hooks) AgentDestroyed(id AgentID) {
	if h.session != nil {
		h.session.AgentDestroyed(id)
	}
}

func (h *Hooks) PlayerDestroyed(id PlayerID) {
	if h.session != nil {
		h.session.PlayerDestroyed(id)
	}
}

// --- Player hooks ---

// CheckInput replaces the host's per-tick input read for players in the
// encounter room. Agent-driven bodies get no input at all.
func (h *Hooks) CheckInput(p PlayerInfo, room string, raw InputSample, orig func() InputSample) InputSample {
	if p.Animatronic {
		return InputSample{}
	}
	if h.session == nil || h.session.ended || room != h.room || !p.Routable() {
		if orig == nil {
			return raw
		}
		return orig()
	}
	return h.session.RouteInput(p, raw)
}

// ShowPauseMenu vetoes the pause menu once the power is out.
func (h *Hooks) ShowPauseMenu(orig func()) {
	if h.session != nil && h.session.Power.OutOfPower {
		return
	}
	if orig != nil {
		orig()
	}
}

// DeathCue is consulted for the cue the host plays when the player dies.
func (h *Hooks) DeathCue(cue Cue) Cue {
	if h.session == nil {
		return cue
	}
	return h.session.Jumpscare.FilterDeathCue(cue)
}

// EnterGameOverMode wraps the host's game-over entry.
func (h *Hooks) EnterGameOverMode(p *GameOverPrompt, orig func(*GameOverPrompt)) {
	if orig != nil {
		orig(p)
	}
	if h.session != nil {
		h.session.Jumpscare.EnterGameOver(p)
	}
}

// UpdateGameOverPrompt wraps the prompt's per-tick update.
func (h *Hooks) UpdateGameOverPrompt(p *GameOverPrompt, orig func(*GameOverPrompt)) {
	if h.session == nil {
		if orig != nil {
			orig(p)
		}
		return
	}
	h.session.Jumpscare.UpdatePrompt(p, orig)
}

// DarkPalette returns the darkness the renderer should apply. The session
// takes over only once the power is out.
func (h *Hooks) DarkPalette(orig func() float64) float64 {
	if h.session != nil && h.session.Power.OutOfPower {
		return h.session.Power.DarknessFactor()
	}
	if orig == nil {
		return 0
	}
	return orig()
}

// --- Agent hooks ---

// AgentRoomAllowed narrows the host's room allowance for agents. It does
// not need a session: the story condition alone decides.
func (h *Hooks) AgentRoomAllowed(orig bool, st Story, room string) bool {
	return h.cfg.AgentRoomAllowed(orig, st, room)
}

// PlayerGuideUpdate runs the agent's default guidance and then the pursuit
// override.
func (h *Hooks) PlayerGuideUpdate(g *Guidance, orig func(*Guidance)) {
	if orig != nil {
		orig(g)
	}
	if h.session != nil {
		h.session.Threat.ForcePlayerPursuit(g)
	}
}

// AgentUpdate runs the agent's own update and then its task effects.
func (h *Hooks) AgentUpdate(id AgentID, orig func()) {
	if orig != nil {
		orig()
	}
	if h.session != nil {
		h.session.Threat.ApplyTaskEffects(id, h.collab.Aids)
	}
}

// HoverScoreOfTile replaces the agent's tile score when its task calls for it.
func (h *Hooks) HoverScoreOfTile(id AgentID, t Tile, orig func(Tile) float64) float64 {
	if h.session == nil {
		if orig == nil {
			return 0
		}
		return orig(t)
	}
	return h.session.HoverBias(id, t, orig)
}
