package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/ogear"
)

// Solve is one stored solver run.
type Solve struct {
	SolveID   string
	CreatedAt time.Time
	Origin    ogear.State
	Target    ogear.State
	StepCount int
	StepsText string // rendered instruction lines
	Notes     *string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solved run and returns its ID.
func (r *SolveRepository) Create(origin, target ogear.State, path ogear.Path, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (
			solve_id, created_at,
			origin_side, origin_axis, origin_tooth, origin_polarity,
			target_side, target_axis, target_tooth, target_polarity,
			step_count, steps_text, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339),
		origin.Pos.Side, string(origin.Pos.Axis), origin.Tooth, origin.Polarity,
		target.Pos.Side, string(target.Pos.Axis), target.Tooth, target.Polarity,
		len(path), path.Format(), notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil when no such solve exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at,
		       origin_side, origin_axis, origin_tooth, origin_polarity,
		       target_side, target_axis, target_tooth, target_polarity,
		       step_count, steps_text, notes
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve. Returns nil when the table
// is empty.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC, solve_id DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at,
		       origin_side, origin_axis, origin_tooth, origin_polarity,
		       target_side, target_axis, target_tooth, target_polarity,
		       step_count, steps_text, notes
		FROM solves
		ORDER BY created_at DESC, solve_id DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}

	return solves, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (*Solve, error) {
	var s Solve
	var createdAtStr string
	var originSide, originTooth, originPolarity int
	var targetSide, targetTooth, targetPolarity int
	var originAxis, targetAxis string

	err := sc.Scan(
		&s.SolveID, &createdAtStr,
		&originSide, &originAxis, &originTooth, &originPolarity,
		&targetSide, &targetAxis, &targetTooth, &targetPolarity,
		&s.StepCount, &s.StepsText, &s.Notes,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	s.Origin = ogear.State{
		Pos:      ogear.Position{Side: originSide, Axis: ogear.Axis(originAxis)},
		Tooth:    originTooth,
		Polarity: originPolarity,
	}
	s.Target = ogear.State{
		Pos:      ogear.Position{Side: targetSide, Axis: ogear.Axis(targetAxis)},
		Tooth:    targetTooth,
		Polarity: targetPolarity,
	}

	return &s, nil
}
