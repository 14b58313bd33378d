// Package reportstore archives night summaries in SQLite so batches of
// headless runs can be compared across sessions.
package reportstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store persists run summaries in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Record is one archived night.
type Record struct {
	ID         int64
	RecordedAt time.Time
	Summary    night.RunSummary
}

// Totals aggregates every archived night.
type Totals struct {
	Runs      int
	Survived  int
	Blackouts int
	AvgScore  float64
}

// Open opens the archive at path, creating the table on first use.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save appends one summary and returns its row id.
func (s *Store) Save(ctx context.Context, rs night.RunSummary) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO run_summaries (
    recorded_at, seed, outcome, caught_by, ticks, seconds, power_left, power_out_at,
    door_toggles, door_rejects, lights_armed, camera_entries, camera_moves,
    aids_attached, task_changes, agent_moves, retreats,
    death_cues_suppressed, game_over_muted, prompts_shown, pauses_vetoed, score
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.now().UTC().UnixMilli(), rs.Seed, int(rs.Outcome), int(rs.CaughtBy),
		rs.Ticks, rs.Seconds, rs.PowerLeft, rs.PowerOutAt,
		rs.DoorToggles, rs.DoorRejects, rs.LightsArmed, rs.CameraEntries, rs.CameraMoves,
		rs.AidsAttached, rs.TaskChanges, rs.AgentMoves, rs.Retreats,
		rs.DeathCuesSuppressed, boolToInt(rs.GameOverMuted), rs.PromptsShown, rs.PausesVetoed,
		rs.Score(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run summary: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run summary id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit summaries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, recorded_at, seed, outcome, caught_by, ticks, seconds, power_left, power_out_at,
    door_toggles, door_rejects, lights_armed, camera_entries, camera_moves,
    aids_attached, task_changes, agent_moves, retreats,
    death_cues_suppressed, game_over_muted, prompts_shown, pauses_vetoed
FROM run_summaries
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query run summaries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Record
	for rows.Next() {
		var rec Record
		var recordedAt int64
		var outcome, caughtBy, muted int
		rs := &rec.Summary
		if err := rows.Scan(
			&rec.ID, &recordedAt, &rs.Seed, &outcome, &caughtBy,
			&rs.Ticks, &rs.Seconds, &rs.PowerLeft, &rs.PowerOutAt,
			&rs.DoorToggles, &rs.DoorRejects, &rs.LightsArmed, &rs.CameraEntries, &rs.CameraMoves,
			&rs.AidsAttached, &rs.TaskChanges, &rs.AgentMoves, &rs.Retreats,
			&rs.DeathCuesSuppressed, &muted, &rs.PromptsShown, &rs.PausesVetoed,
		); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		rec.RecordedAt = time.UnixMilli(recordedAt).UTC()
		rs.Outcome = night.Outcome(outcome)
		rs.CaughtBy = game.AgentKind(caughtBy)
		rs.GameOverMuted = muted != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run summaries: %w", err)
	}
	return out, nil
}

// Totals aggregates the whole archive.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	if err := ctx.Err(); err != nil {
		return Totals{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Totals{}, fmt.Errorf("storage is not configured")
	}
	var t Totals
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT COUNT(*),
    COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN power_out_at >= 0 THEN 1 ELSE 0 END), 0),
    COALESCE(AVG(score), 0)
FROM run_summaries`, int(night.OutcomeSurvived)).Scan(&t.Runs, &t.Survived, &t.Blackouts, &t.AvgScore)
	if err != nil {
		return Totals{}, fmt.Errorf("aggregate run summaries: %w", err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
