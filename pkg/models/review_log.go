package models

import "time"

// ReviewLog is an append-only record of a single answered (or skipped) card.
type ReviewLog struct {
	ID         string    `json:"id" db:"id"` // ULID, assigned by the store
	PhraseID   int       `json:"phrase_id" db:"phrase_id"`
	SessionID  string    `json:"session_id" db:"session_id"` // Empty when the review happened outside a session
	Answer     string    `json:"answer" db:"answer"`
	Quality    int       `json:"quality" db:"quality"` // 0-5 SM-2 quality signal derived from the outcome
	Correct    bool      `json:"correct" db:"correct"`
	Skipped    bool      `json:"skipped" db:"skipped"`
	Similarity float64   `json:"similarity" db:"similarity"`
	ReviewedAt time.Time `json:"reviewed_at" db:"reviewed_at"`
}
