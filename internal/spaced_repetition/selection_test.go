package spaced_repetition

import (
	"testing"
	"time"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

func deck(ids ...int) []models.Phrase {
	out := make([]models.Phrase, len(ids))
	for i, id := range ids {
		out[i] = models.Phrase{ID: id, Position: i + 1}
	}
	return out
}

func reviewed(phraseID, repetitions int, next time.Time) models.Progress {
	return models.Progress{
		PhraseID:    phraseID,
		EaseFactor:  models.DefaultEaseFactor,
		Interval:    1,
		Repetitions: repetitions,
		NextReview:  next,
	}
}

func TestNextPhraseEmptyDeck(t *testing.T) {
	if _, ok := NextPhrase(nil, nil, t0); ok {
		t.Fatal("empty deck produced a phrase")
	}
}

func TestNextPhraseNewFollowsDeckOrder(t *testing.T) {
	// Deck order, not ID order, decides which unseen phrase comes first.
	phrases := deck(30, 20, 10)
	got, ok := NextPhrase(phrases, nil, t0)
	if !ok || got.ID != 30 {
		t.Fatalf("NextPhrase = %+v (ok %v), want phrase 30", got, ok)
	}
}

func TestNextPhraseSkipsSeenPhrases(t *testing.T) {
	phrases := deck(1, 2, 3)
	snapshot := []models.Progress{reviewed(1, 1, t0.Add(48 * time.Hour))}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 2 {
		t.Fatalf("NextPhrase = %+v (ok %v), want phrase 2", got, ok)
	}
}

func TestNextPhraseDueBeatsNew(t *testing.T) {
	phrases := deck(1, 2)
	snapshot := []models.Progress{reviewed(2, 1, t0.Add(-time.Hour))}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 2 {
		t.Fatalf("NextPhrase = %+v (ok %v), want due phrase 2", got, ok)
	}
}

func TestNextPhraseMostOverdueFirst(t *testing.T) {
	phrases := deck(1, 2, 3)
	snapshot := []models.Progress{
		reviewed(1, 1, t0.Add(-time.Hour)),
		reviewed(2, 2, t0.Add(-72*time.Hour)),
		reviewed(3, 1, t0.Add(-time.Minute)),
	}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 2 {
		t.Fatalf("NextPhrase = %+v (ok %v), want most overdue phrase 2", got, ok)
	}
}

func TestNextPhraseDueAtExactlyNow(t *testing.T) {
	phrases := deck(1)
	snapshot := []models.Progress{reviewed(1, 1, t0)}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 1 {
		t.Fatalf("NextPhrase = %+v (ok %v), want phrase due exactly now", got, ok)
	}
}

func TestNextPhraseFailedExcludedFromDueBucket(t *testing.T) {
	// Phrase 1 failed its last review (repetitions 0) and is overdue, but
	// the due bucket only holds phrases with a success streak, so the
	// unseen phrase 2 wins.
	phrases := deck(1, 2)
	snapshot := []models.Progress{reviewed(1, 0, t0.Add(-time.Hour))}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 2 {
		t.Fatalf("NextPhrase = %+v (ok %v), want unseen phrase 2", got, ok)
	}
}

func TestNextPhraseCatchAllEarliestUpcoming(t *testing.T) {
	// Everything reviewed, nothing due: the earliest upcoming review wins.
	phrases := deck(1, 2, 3)
	snapshot := []models.Progress{
		reviewed(1, 2, t0.Add(72*time.Hour)),
		reviewed(2, 3, t0.Add(24*time.Hour)),
		reviewed(3, 1, t0.Add(48*time.Hour)),
	}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 2 {
		t.Fatalf("NextPhrase = %+v (ok %v), want phrase 2", got, ok)
	}
}

func TestNextPhraseCatchAllIncludesFailed(t *testing.T) {
	// A freshly failed phrase never sits in the due bucket, but once every
	// phrase has history it comes back through the catch-all.
	phrases := deck(1, 2)
	snapshot := []models.Progress{
		reviewed(1, 0, t0.Add(-time.Hour)),
		reviewed(2, 1, t0.Add(24*time.Hour)),
	}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 1 {
		t.Fatalf("NextPhrase = %+v (ok %v), want failed phrase 1", got, ok)
	}
}

func TestNextPhraseIgnoresOrphanedProgress(t *testing.T) {
	// Progress rows for phrases removed from the deck must not be served.
	phrases := deck(2)
	snapshot := []models.Progress{
		reviewed(99, 1, t0.Add(-time.Hour)),
		reviewed(2, 1, t0.Add(24*time.Hour)),
	}
	got, ok := NextPhrase(phrases, snapshot, t0)
	if !ok || got.ID != 2 {
		t.Fatalf("NextPhrase = %+v (ok %v), want phrase 2", got, ok)
	}
}
