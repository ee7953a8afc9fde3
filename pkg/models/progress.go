package models

import "time"

// DefaultEaseFactor is the SM-2 ease factor assigned to a phrase that has
// never been reviewed.
const DefaultEaseFactor = 2.5

// Progress tracks how well a single phrase is known using the SM-2 algorithm.
// A record is created lazily on the first review of its phrase; before that
// the phrase simply has no row.
type Progress struct {
	PhraseID       int        `json:"phrase_id" db:"phrase_id"`
	EaseFactor     float64    `json:"ease_factor" db:"ease_factor"`         // SM-2 EF parameter, never below 1.3
	Interval       int        `json:"interval" db:"interval"`               // Current interval in days
	Repetitions    int        `json:"repetitions" db:"repetitions"`         // Consecutive successful reviews; resets to 0 on failure
	NextReview     time.Time  `json:"next_review" db:"next_review"`         // Zero value means never reviewed
	LastReview     *time.Time `json:"last_review" db:"last_review"`         // Nil means never reviewed
	TotalReviews   int        `json:"total_reviews" db:"total_reviews"`
	CorrectReviews int        `json:"correct_reviews" db:"correct_reviews"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// NewProgress returns the default progress record for a phrase that is
// about to receive its first review.
func NewProgress(phraseID int) Progress {
	return Progress{
		PhraseID:   phraseID,
		EaseFactor: DefaultEaseFactor,
	}
}
