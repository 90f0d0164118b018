package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one solver call recorded in the journal.
type Attempt struct {
	AttemptID      string
	CreatedAt      time.Time
	Facelets       string
	Range          int
	TimeoutSeconds float64
	SolutionText   *string
	MoveCount      *int
	ErrorText      *string
}

// Failed reports whether the solver call failed.
func (a Attempt) Failed() bool {
	return a.ErrorText != nil
}

// AttemptRepository provides CRUD operations for attempts.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// CreateSolved records a successful solve and returns its ID.
func (r *AttemptRepository) CreateSolved(facelets string, rangeLimit int, timeoutSeconds float64, solution string, moveCount int) (string, error) {
	return r.create(facelets, rangeLimit, timeoutSeconds, &solution, &moveCount, nil)
}

// CreateFailed records a failed solve and returns its ID.
func (r *AttemptRepository) CreateFailed(facelets string, rangeLimit int, timeoutSeconds float64, errText string) (string, error) {
	return r.create(facelets, rangeLimit, timeoutSeconds, nil, nil, &errText)
}

func (r *AttemptRepository) create(facelets string, rangeLimit int, timeoutSeconds float64, solution *string, moveCount *int, errText *string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO attempts (attempt_id, created_at, facelets, range_limit, timeout_s, solution_text, move_count, error_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeLayout), facelets, rangeLimit, timeoutSeconds, solution, moveCount, errText)

	if err != nil {
		return "", fmt.Errorf("failed to create attempt: %w", err)
	}

	return id, nil
}

const attemptColumns = `attempt_id, created_at, facelets, range_limit, timeout_s, solution_text, move_count, error_text`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (Attempt, error) {
	var a Attempt
	var createdAtStr string
	var solution, errText sql.NullString
	var moveCount sql.NullInt64

	err := row.Scan(&a.AttemptID, &createdAtStr, &a.Facelets, &a.Range, &a.TimeoutSeconds, &solution, &moveCount, &errText)
	if err != nil {
		return Attempt{}, err
	}

	if a.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return Attempt{}, err
	}
	if solution.Valid {
		a.SolutionText = &solution.String
	}
	if moveCount.Valid {
		n := int(moveCount.Int64)
		a.MoveCount = &n
	}
	if errText.Valid {
		a.ErrorText = &errText.String
	}
	return a, nil
}

// Get retrieves an attempt by ID. It returns nil if there is no such attempt.
func (r *AttemptRepository) Get(attemptID string) (*Attempt, error) {
	row := r.db.QueryRow(`SELECT `+attemptColumns+` FROM attempts WHERE attempt_id = ?`, attemptID)
	a, err := scanAttempt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return &a, nil
}

// List retrieves recent attempts, newest first.
func (r *AttemptRepository) List(limit int) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT `+attemptColumns+`
		FROM attempts
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// Count returns the number of recorded attempts.
func (r *AttemptRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM attempts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

// GetLast retrieves the most recent attempt, or nil if there are none.
func (r *AttemptRepository) GetLast() (*Attempt, error) {
	attempts, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	return &attempts[0], nil
}
