package spaced_repetition

import (
	"time"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// MasteredIntervalDays is the interval at which a phrase counts as mastered:
// three weeks between reviews means it has survived several successful
// rounds.
const MasteredIntervalDays = 21

// Summarize computes deck-wide statistics from a progress snapshot in one
// pass. totalPhrases is passed in because progress records are created
// lazily, so the snapshot alone cannot know the deck size.
func Summarize(totalPhrases int, snapshot []models.Progress, now time.Time) models.StudyStats {
	stats := models.StudyStats{
		TotalPhrases: totalPhrases,
		Learned:      len(snapshot),
	}

	dayAhead := now.Add(24 * time.Hour)
	var easeSum float64
	var correct int
	for _, p := range snapshot {
		if p.Interval >= MasteredIntervalDays {
			stats.Mastered++
		}
		if !p.NextReview.After(now) {
			stats.DueNow++
		}
		if !p.NextReview.After(dayAhead) {
			stats.DueToday++
		}
		easeSum += p.EaseFactor
		stats.TotalReviews += p.TotalReviews
		correct += p.CorrectReviews
	}

	if len(snapshot) > 0 {
		stats.AverageEase = easeSum / float64(len(snapshot))
	}
	if stats.TotalReviews > 0 {
		stats.Accuracy = float64(correct) / float64(stats.TotalReviews)
	}
	return stats
}
