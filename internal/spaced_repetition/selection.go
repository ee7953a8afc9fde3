package spaced_repetition

import (
	"sort"
	"time"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// NextPhrase picks the phrase to present next:
//
//  1. Among phrases with at least one successful review (repetitions > 0)
//     whose next review time has passed, the most overdue one.
//  2. Otherwise the first phrase in deck order that has never been reviewed.
//  3. Otherwise the phrase with the earliest upcoming review, so a fully
//     reviewed deck always yields something to practice.
//
// Freshly failed phrases (repetitions reset to 0) never enter the due bucket
// even when overdue; they come back through the catch-all. The bool result
// is false only when the deck is empty.
func NextPhrase(phrases []models.Phrase, snapshot []models.Progress, now time.Time) (models.Phrase, bool) {
	if len(phrases) == 0 {
		return models.Phrase{}, false
	}

	byID := make(map[int]models.Phrase, len(phrases))
	for _, ph := range phrases {
		byID[ph.ID] = ph
	}

	// Due and previously reviewed, earliest next review first.
	var due []models.Progress
	for _, p := range snapshot {
		if p.Repetitions > 0 && !p.NextReview.After(now) {
			if _, ok := byID[p.PhraseID]; ok {
				due = append(due, p)
			}
		}
	}
	if len(due) > 0 {
		sort.Slice(due, func(i, j int) bool {
			return due[i].NextReview.Before(due[j].NextReview)
		})
		return byID[due[0].PhraseID], true
	}

	// First unseen phrase in deck order.
	seen := make(map[int]bool, len(snapshot))
	for _, p := range snapshot {
		seen[p.PhraseID] = true
	}
	for _, ph := range phrases {
		if !seen[ph.ID] {
			return ph, true
		}
	}

	// Everything has history: take the globally earliest next review.
	// Strict Before keeps the first record encountered on ties.
	var best models.Progress
	found := false
	for _, p := range snapshot {
		if _, ok := byID[p.PhraseID]; !ok {
			continue
		}
		if !found || p.NextReview.Before(best.NextReview) {
			best = p
			found = true
		}
	}
	if found {
		return byID[best.PhraseID], true
	}
	return models.Phrase{}, false
}
