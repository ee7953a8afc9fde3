package models

// StudyStats summarizes the learner's progress across the whole deck.
// It is computed from a progress snapshot, never stored.
type StudyStats struct {
	TotalPhrases int     `json:"total_phrases"`
	Learned      int     `json:"learned"`  // Phrases with any review history
	Mastered     int     `json:"mastered"` // Phrases with an interval of at least 21 days
	DueNow       int     `json:"due_now"`
	DueToday     int     `json:"due_today"`
	AverageEase  float64 `json:"average_ease"` // Mean ease factor over learned phrases, 0 when none
	TotalReviews int     `json:"total_reviews"`
	Accuracy     float64 `json:"accuracy"` // Correct / total reviews in [0,1], 0 when no reviews
}
