package night

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/night-shift/internal/game"
)

// RunSummary is the outcome of one night, counted from the session log.
type RunSummary struct {
	Seed       int64
	Outcome    Outcome
	CaughtBy   game.AgentKind
	Ticks      int
	Seconds    float64
	PowerLeft  float64
	PowerOutAt int // tick power ran out, -1 if it never did

	DoorToggles   int
	DoorRejects   int
	LightsArmed   int
	CameraEntries int
	CameraMoves   int
	AidsAttached  int
	TaskChanges   int
	AgentMoves    int
	Retreats      int

	DeathCuesSuppressed int
	GameOverMuted       bool
	PromptsShown        int
	PausesVetoed        int
}

// Summary counts the night's events.
func (w *World) Summary() RunSummary {
	s := w.session
	log := s.Log
	rs := RunSummary{
		Seed:                w.opts.Seed,
		Outcome:             w.outcome,
		CaughtBy:            w.caughtBy,
		Ticks:               s.TickCount(),
		Seconds:             s.Elapsed(),
		PowerLeft:           s.Power.Remaining,
		PowerOutAt:          -1,
		DoorToggles:         log.CountCategory(game.CatDoor, "toggle"),
		DoorRejects:         log.CountCategory(game.CatDoor, "rejected"),
		LightsArmed:         log.CountCategory(game.CatLight, "arm"),
		CameraEntries:       log.CountCategory(game.CatCamera, "enter"),
		CameraMoves:         log.CountCategory(game.CatCamera, "move"),
		AidsAttached:        log.CountCategory(game.CatAid, "attach"),
		TaskChanges:         log.CountCategory(game.CatTask, "assign"),
		AgentMoves:          log.CountCategory(CatAgent, "move"),
		Retreats:            log.CountCategory(CatAgent, "retreat"),
		DeathCuesSuppressed: s.Jumpscare.SuppressedDeathCues(),
		GameOverMuted:       w.outcome == OutcomeCaught && !w.prompt.PlayGameOverSound,
		PromptsShown:        w.promptsShown,
		PausesVetoed:        w.pausesVetoed,
	}
	if e, ok := log.LastOf(game.CatPower, "out"); ok {
		rs.PowerOutAt = e.Tick
	}
	return rs
}

// Score grades the guard 0-100: surviving dominates, then leftover power
// and visitors turned away.
func (rs RunSummary) Score() float64 {
	score := 0.0
	if rs.Outcome == OutcomeSurvived {
		score += 60
	}
	if rs.PowerOutAt < 0 {
		score += 10
	}
	score += min(20, rs.PowerLeft/5)
	score += min(10, float64(rs.Retreats)*2.5)
	return max(0, min(100, score))
}

// Traits lists notable habits of the night.
func (rs RunSummary) Traits() (good, bad []string) {
	if rs.Retreats >= 3 {
		good = append(good, "gatekeeper")
	}
	if rs.PowerOutAt < 0 && rs.PowerLeft >= 25 {
		good = append(good, "power_saver")
	}
	if rs.CameraMoves >= 10 {
		good = append(good, "watchful")
	}
	if rs.PowerOutAt >= 0 {
		bad = append(bad, "blackout")
	}
	if rs.CameraEntries == 0 {
		bad = append(bad, "never_checked_cameras")
	}
	if rs.DoorRejects > 0 {
		bad = append(bad, "fumbled_doors")
	}
	return good, bad
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// Format returns the summary as report lines.
func (rs RunSummary) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "outcome=%s", rs.Outcome)
	if rs.Outcome == OutcomeCaught {
		fmt.Fprintf(&sb, " by=%s", rs.CaughtBy)
	}
	fmt.Fprintf(&sb, " ticks=%d seconds=%.1f power_left=%.2f power_out_tick=%d\n",
		rs.Ticks, rs.Seconds, rs.PowerLeft, rs.PowerOutAt)
	fmt.Fprintf(&sb, "controls: door_toggle=%d door_rejected=%d light_arm=%d camera_enter=%d camera_move=%d\n",
		rs.DoorToggles, rs.DoorRejects, rs.LightsArmed, rs.CameraEntries, rs.CameraMoves)
	fmt.Fprintf(&sb, "threat: aids=%d task_changes=%d agent_moves=%d retreats=%d\n",
		rs.AidsAttached, rs.TaskChanges, rs.AgentMoves, rs.Retreats)
	fmt.Fprintf(&sb, "vetoes: death_cue=%d game_over_muted=%v prompts_shown=%d pause=%d\n",
		rs.DeathCuesSuppressed, rs.GameOverMuted, rs.PromptsShown, rs.PausesVetoed)
	good, bad := rs.Traits()
	fmt.Fprintf(&sb, "grade: %s (%.0f)", LetterGrade(rs.Score()), rs.Score())
	if len(good) > 0 {
		fmt.Fprintf(&sb, "  good=%s", strings.Join(good, ","))
	}
	if len(bad) > 0 {
		fmt.Fprintf(&sb, "  bad=%s", strings.Join(bad, ","))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// FormatAggregate summarises several nights.
func FormatAggregate(all []RunSummary) string {
	var sb strings.Builder
	if len(all) == 0 {
		return "no runs\n"
	}
	survived := 0
	blackouts := 0
	scoreSum := 0.0
	caught := map[string]int{}
	traits := map[string]int{}
	for _, rs := range all {
		if rs.Outcome == OutcomeSurvived {
			survived++
		}
		if rs.PowerOutAt >= 0 {
			blackouts++
		}
		if rs.Outcome == OutcomeCaught {
			caught[rs.CaughtBy.String()]++
		}
		scoreSum += rs.Score()
		good, bad := rs.Traits()
		for _, t := range append(good, bad...) {
			traits[t]++
		}
	}
	n := float64(len(all))
	avg := scoreSum / n
	fmt.Fprintf(&sb, "runs=%d survived=%d (%.0f%%) blackouts=%d avg_score=%.1f (%s)\n",
		len(all), survived, float64(survived)/n*100, blackouts, avg, LetterGrade(avg))
	if len(caught) > 0 {
		fmt.Fprintf(&sb, "caught_by: %s\n", topCounts(caught, 4))
	}
	if len(traits) > 0 {
		fmt.Fprintf(&sb, "traits: %s\n", topCounts(traits, 6))
	}
	return sb.String()
}

func topCounts(counts map[string]int, n int) string {
	type kv struct {
		key   string
		count int
	}
	var items []kv
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].key < items[j].key
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.key, it.count)
	}
	return strings.Join(parts, ", ")
}
