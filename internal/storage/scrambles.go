package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrambleRecord is a generated scramble.
type ScrambleRecord struct {
	ScrambleID    string
	CreatedAt     time.Time
	MovesText     string
	Applied       bool
	FaceletsAfter *string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create records a scramble. facelets is only stored when applied is true.
func (r *ScrambleRepository) Create(movesText string, applied bool, facelets string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var faceletsPtr *string
	if applied {
		faceletsPtr = &facelets
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, moves_text, applied, facelets_after)
		VALUES (?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeLayout), movesText, applied, faceletsPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]ScrambleRecord, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, moves_text, applied, facelets_after
		FROM scrambles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var out []ScrambleRecord
	for rows.Next() {
		var s ScrambleRecord
		var createdAtStr string
		var facelets sql.NullString
		if err := rows.Scan(&s.ScrambleID, &createdAtStr, &s.MovesText, &s.Applied, &facelets); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		if s.CreatedAt, err = parseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		if facelets.Valid {
			s.FaceletsAfter = &facelets.String
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// Prune deletes all but the newest keep attempts and scrambles.
func (db *DB) Prune(keep int) error {
	return db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			DELETE FROM attempts WHERE attempt_id NOT IN (
				SELECT attempt_id FROM attempts ORDER BY created_at DESC LIMIT ?
			)`, keep); err != nil {
			return fmt.Errorf("failed to prune attempts: %w", err)
		}
		if _, err := tx.Exec(`
			DELETE FROM scrambles WHERE scramble_id NOT IN (
				SELECT scramble_id FROM scrambles ORDER BY created_at DESC LIMIT ?
			)`, keep); err != nil {
			return fmt.Errorf("failed to prune scrambles: %w", err)
		}
		return nil
	})
}
