package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nitzanshifris/cv2web/internal/types"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("run not found")

// SelectionRun is one stored invocation of the selection pipeline.
type SelectionRun struct {
	ID         uuid.UUID                  `json:"id"`
	CV         types.CVData               `json:"cv"`
	Selections []types.ComponentSelection `json:"selections"`
	Archetype  string                     `json:"archetype"`
	SmartPath  bool                       `json:"smart_path"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// RunSummary is the listing view of a run, without the stored documents.
type RunSummary struct {
	ID             uuid.UUID `json:"id"`
	Archetype      string    `json:"archetype"`
	SmartPath      bool      `json:"smart_path"`
	SelectionCount int       `json:"selection_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateRun stores a selection run and returns its generated ID.
func (db *DB) CreateRun(ctx context.Context, cv types.CVData, selections []types.ComponentSelection, archetype string, smartPath bool) (uuid.UUID, error) {
	cvBytes, err := json.Marshal(cv)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal cv: %w", err)
	}
	selBytes, err := json.Marshal(selections)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal selections: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO selection_runs (id, cv, selections, archetype, smart_path)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, cvBytes, selBytes, archetype, smartPath,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// GetRun retrieves a stored run by ID. Returns ErrRunNotFound when no row
// matches.
func (db *DB) GetRun(ctx context.Context, id uuid.UUID) (*SelectionRun, error) {
	var (
		run      SelectionRun
		cvBytes  []byte
		selBytes []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, cv, selections, archetype, smart_path, created_at
		 FROM selection_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &cvBytes, &selBytes, &run.Archetype, &run.SmartPath, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if err := json.Unmarshal(cvBytes, &run.CV); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cv: %w", err)
	}
	if err := json.Unmarshal(selBytes, &run.Selections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selections: %w", err)
	}
	return &run, nil
}

// ListRuns returns summaries of the most recent runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, archetype, smart_path, jsonb_array_length(selections), created_at
		 FROM selection_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	summaries := make([]RunSummary, 0, limit)
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.Archetype, &s.SmartPath, &s.SelectionCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading runs: %w", err)
	}
	return summaries, nil
}
