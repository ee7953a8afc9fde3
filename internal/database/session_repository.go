package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// SessionRepository handles database operations for study sessions
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Create starts a new session and fills in its assigned ID
func (r *SessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	_, err := DB.ExecContext(
		ctx,
		"INSERT INTO study_sessions (id, started_at) VALUES ($1, $2)",
		session.ID,
		session.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID returns a session, or ErrNotFound for an unknown ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.StudySession, error) {
	var session models.StudySession
	err := DB.GetContext(ctx, &session, "SELECT * FROM study_sessions WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return &session, nil
}

// IncrementCounts bumps the review counters of an open session
func (r *SessionRepository) IncrementCounts(ctx context.Context, id string, correct bool) error {
	inc := 0
	if correct {
		inc = 1
	}
	_, err := DB.ExecContext(
		ctx,
		"UPDATE study_sessions SET reviews = reviews + 1, correct = correct + $1 WHERE id = $2",
		inc,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update session %s counters: %w", id, err)
	}
	return nil
}

// End closes a session by stamping its end time
func (r *SessionRepository) End(ctx context.Context, id string, endedAt time.Time) error {
	result, err := DB.ExecContext(
		ctx,
		"UPDATE study_sessions SET ended_at = $1 WHERE id = $2",
		endedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to end session %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
