package models

import "time"

// StudySession groups the reviews of one browsing session for history views.
type StudySession struct {
	ID        string     `json:"id" db:"id"` // UUID, assigned by the store
	StartedAt time.Time  `json:"started_at" db:"started_at"`
	EndedAt   *time.Time `json:"ended_at" db:"ended_at"` // Nil while the session is open
	Reviews   int        `json:"reviews" db:"reviews"`
	Correct   int        `json:"correct" db:"correct"`
}
