package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// ProgressRepository handles database operations for review progress
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetByPhrase returns the progress record for one phrase, or ErrNotFound
// when the phrase has never been reviewed.
func (r *ProgressRepository) GetByPhrase(ctx context.Context, phraseID int) (*models.Progress, error) {
	var progress models.Progress
	err := DB.GetContext(ctx, &progress, "SELECT * FROM progress WHERE phrase_id = $1", phraseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress for phrase %d: %w", phraseID, err)
	}
	return &progress, nil
}

// GetAll returns the full progress snapshot
func (r *ProgressRepository) GetAll(ctx context.Context) ([]models.Progress, error) {
	var snapshot []models.Progress
	err := DB.SelectContext(ctx, &snapshot, "SELECT * FROM progress ORDER BY phrase_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get progress snapshot: %w", err)
	}
	return snapshot, nil
}

// Upsert inserts or replaces the progress record for a phrase. Progress is
// keyed by phrase_id, so repeated reviews keep a single row per phrase.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.Progress) error {
	_, err := DB.ExecContext(
		ctx,
		`INSERT INTO progress (
			phrase_id, ease_factor, interval, repetitions,
			next_review, last_review, total_reviews, correct_reviews
		 )
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (phrase_id) DO UPDATE SET
			ease_factor = EXCLUDED.ease_factor,
			interval = EXCLUDED.interval,
			repetitions = EXCLUDED.repetitions,
			next_review = EXCLUDED.next_review,
			last_review = EXCLUDED.last_review,
			total_reviews = EXCLUDED.total_reviews,
			correct_reviews = EXCLUDED.correct_reviews,
			updated_at = CURRENT_TIMESTAMP`,
		progress.PhraseID,
		progress.EaseFactor,
		progress.Interval,
		progress.Repetitions,
		progress.NextReview,
		progress.LastReview,
		progress.TotalReviews,
		progress.CorrectReviews,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for phrase %d: %w", progress.PhraseID, err)
	}
	return nil
}

// CountDue returns how many reviewed phrases are due at the given time
func (r *ProgressRepository) CountDue(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM progress WHERE next_review <= $1", now)
	if err != nil {
		return 0, fmt.Errorf("failed to count due phrases: %w", err)
	}
	return count, nil
}

// DeleteAll wipes every progress record. Phrases and review logs survive.
func (r *ProgressRepository) DeleteAll(ctx context.Context) error {
	_, err := DB.ExecContext(ctx, "DELETE FROM progress")
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil
}
