package game

// JumpscarePhase is the sequencer's state.
type JumpscarePhase uint8

const (
	JumpscareIdle JumpscarePhase = iota
	JumpscareTriggered
	JumpscareEnded
)

func (p JumpscarePhase) String() string {
	switch p {
	case JumpscareTriggered:
		return "triggered"
	case JumpscareEnded:
		return "ended"
	default:
		return "idle"
	}
}

// DefaultJumpscareSeconds is how long the sequence plays before the session ends.
const DefaultJumpscareSeconds = 2.5

// GameOverPrompt mirrors the host prompt fields the sequencer touches.
type GameOverPrompt struct {
	GameOverMode      bool
	PlayGameOverSound bool
}

// JumpscareSequencer runs the threat-success sequence. Idle is the only
// state that accepts a trigger; there is no way back to Idle.
type JumpscareSequencer struct {
	phase    JumpscarePhase
	kind     AgentKind
	timer    float64
	duration float64

	suppressedDeathCues int
}

// NewJumpscareSequencer returns an idle sequencer.
func NewJumpscareSequencer(duration float64) *JumpscareSequencer {
	if duration <= 0 {
		duration = DefaultJumpscareSeconds
	}
	return &JumpscareSequencer{duration: duration}
}

func (j *JumpscareSequencer) Phase() JumpscarePhase { return j.phase }
func (j *JumpscareSequencer) Timer() float64        { return j.timer }
func (j *JumpscareSequencer) Duration() float64     { return j.duration }

// Active reports whether a jumpscare has been triggered, including after it
// has run out.
func (j *JumpscareSequencer) Active() bool { return j.phase != JumpscareIdle }

// Current returns the jumpscare kind, or KindNone while idle.
func (j *JumpscareSequencer) Current() AgentKind {
	if j.phase == JumpscareIdle {
		return KindNone
	}
	return j.kind
}

// Trigger starts the sequence for kind. It only succeeds from Idle.
func (j *JumpscareSequencer) Trigger(kind AgentKind) bool {
	if j.phase != JumpscareIdle || kind == KindNone {
		return false
	}
	j.phase = JumpscareTriggered
	j.kind = kind
	j.timer = 0
	return true
}

// Tick advances the timer and returns true on the tick the sequence ends.
func (j *JumpscareSequencer) Tick(dt float64) bool {
	if j.phase != JumpscareTriggered {
		return false
	}
	j.timer += dt
	if j.timer >= j.duration {
		j.phase = JumpscareEnded
		return true
	}
	return false
}

// FilterDeathCue returns CueNone in place of the death cue while a
// jumpscare owns the death. Each call is one death event.
func (j *JumpscareSequencer) FilterDeathCue(cue Cue) Cue {
	if !j.Active() || cue != CueDeath {
		return cue
	}
	j.suppressedDeathCues++
	return CueNone
}

// SuppressedDeathCues is how many death cues have been vetoed.
func (j *JumpscareSequencer) SuppressedDeathCues() int { return j.suppressedDeathCues }

// EnterGameOver runs after the host enters game-over mode and mutes its sound.
func (j *JumpscareSequencer) EnterGameOver(p *GameOverPrompt) {
	if p != nil && j.Active() {
		p.PlayGameOverSound = false
	}
}

// UpdatePrompt runs the prompt's own update with GameOverMode forced off
// while a jumpscare is active, then restores the flag exactly.
func (j *JumpscareSequencer) UpdatePrompt(p *GameOverPrompt, update func(*GameOverPrompt)) {
	if p == nil {
		return
	}
	saved := p.GameOverMode
	p.GameOverMode = saved && !j.Active()
	if update != nil {
		update(p)
	}
	p.GameOverMode = saved
}
