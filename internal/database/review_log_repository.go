package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// ReviewLogRepository handles the append-only review audit log
type ReviewLogRepository struct {
	entropy *rand.Rand
}

// NewReviewLogRepository creates a new repository instance
func NewReviewLogRepository() *ReviewLogRepository {
	return &ReviewLogRepository{
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newID generates a ULID; lexicographic order follows creation time.
func (r *ReviewLogRepository) newID(at time.Time) string {
	return ulid.MustNew(ulid.Timestamp(at), r.entropy).String()
}

// Create appends a review log entry and fills in its assigned ID
func (r *ReviewLogRepository) Create(ctx context.Context, entry *models.ReviewLog) error {
	if entry.ID == "" {
		entry.ID = r.newID(entry.ReviewedAt)
	}
	_, err := DB.ExecContext(
		ctx,
		`INSERT INTO review_logs (
			id, phrase_id, session_id, answer,
			quality, correct, skipped, similarity, reviewed_at
		 )
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID,
		entry.PhraseID,
		entry.SessionID,
		entry.Answer,
		entry.Quality,
		entry.Correct,
		entry.Skipped,
		entry.Similarity,
		entry.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review log: %w", err)
	}
	return nil
}

// GetRecent returns the latest entries, newest first
func (r *ReviewLogRepository) GetRecent(ctx context.Context, limit int) ([]models.ReviewLog, error) {
	var entries []models.ReviewLog
	err := DB.SelectContext(
		ctx,
		&entries,
		"SELECT * FROM review_logs ORDER BY reviewed_at DESC, id DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent review logs: %w", err)
	}
	return entries, nil
}

// GetByPhrase returns the review history of one phrase, newest first
func (r *ReviewLogRepository) GetByPhrase(ctx context.Context, phraseID int) ([]models.ReviewLog, error) {
	var entries []models.ReviewLog
	err := DB.SelectContext(
		ctx,
		&entries,
		"SELECT * FROM review_logs WHERE phrase_id = $1 ORDER BY reviewed_at DESC, id DESC",
		phraseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get review logs for phrase %d: %w", phraseID, err)
	}
	return entries, nil
}

// CountAll returns the total number of logged reviews
func (r *ReviewLogRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM review_logs")
	if err != nil {
		return 0, fmt.Errorf("failed to count review logs: %w", err)
	}
	return count, nil
}
