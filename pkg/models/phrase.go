package models

import "time"

// Phrase represents a Spanish phrase to be learned
type Phrase struct {
	ID         int       `json:"id" db:"id"`
	Spanish    string    `json:"spanish" db:"spanish"`
	English    string    `json:"english" db:"english"`
	CategoryID int64     `json:"category_id" db:"category_id"`
	ImageURL   string    `json:"image_url" db:"image_url"` // Optional: illustration shown on the card
	Position   int       `json:"position" db:"position"`   // Authored deck order; new phrases are introduced in this order
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
