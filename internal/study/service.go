// Package study orchestrates reviews: it grades answers with the matcher,
// advances scheduling state through the SM-2 engine and records everything
// in the stores.
package study

import (
	"context"
	"errors"
	"time"

	"github.com/seekayel/habla-espanol-ext/internal/database"
	"github.com/seekayel/habla-espanol-ext/internal/matcher"
	"github.com/seekayel/habla-espanol-ext/internal/spaced_repetition"
	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// ErrNoPhrases is returned by NextPhrase when the deck is empty.
var ErrNoPhrases = errors.New("no phrases in the deck")

// PhraseStore is the phrase surface the service consumes.
type PhraseStore interface {
	GetAll(ctx context.Context) ([]models.Phrase, error)
	GetByID(ctx context.Context, id int) (*models.Phrase, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]models.Phrase, error)
	CountAll(ctx context.Context) (int, error)
}

// ProgressStore persists per-phrase scheduling state.
type ProgressStore interface {
	GetByPhrase(ctx context.Context, phraseID int) (*models.Progress, error)
	GetAll(ctx context.Context) ([]models.Progress, error)
	Upsert(ctx context.Context, progress *models.Progress) error
	DeleteAll(ctx context.Context) error
}

// ReviewLogStore appends to the review audit trail.
type ReviewLogStore interface {
	Create(ctx context.Context, entry *models.ReviewLog) error
	GetByPhrase(ctx context.Context, phraseID int) ([]models.ReviewLog, error)
}

// SessionStore tracks study sessions.
type SessionStore interface {
	Create(ctx context.Context, session *models.StudySession) error
	GetByID(ctx context.Context, id string) (*models.StudySession, error)
	IncrementCounts(ctx context.Context, id string, correct bool) error
	End(ctx context.Context, id string, endedAt time.Time) error
}

// CategoryStore resolves category names for deck filtering.
type CategoryStore interface {
	GetByName(ctx context.Context, name string) (*models.Category, error)
}

// Stores bundles the persistence surfaces the service needs.
type Stores struct {
	Phrases    PhraseStore
	Progress   ProgressStore
	Logs       ReviewLogStore
	Sessions   SessionStore
	Categories CategoryStore
}

// Service coordinates the matcher, the SM-2 engine and the stores.
type Service struct {
	stores  Stores
	engine  *spaced_repetition.SM2
	options matcher.Options
	now     func() time.Time
}

// NewService creates a service with the standard engine and matcher defaults.
func NewService(stores Stores) *Service {
	return &Service{
		stores: stores,
		engine: spaced_repetition.NewSM2(),
		now:    time.Now,
	}
}

// ReviewResult is everything one graded review produces.
type ReviewResult struct {
	Phrase   models.Phrase
	Feedback matcher.Feedback
	Match    matcher.Result
	Quality  spaced_repetition.Quality
	Progress models.Progress
}

// CheckResult grades an answer without recording anything.
type CheckResult struct {
	Feedback matcher.Feedback
	Match    matcher.Result
}

// SubmitReview grades the answer for a phrase, runs the scheduling
// transition, persists the updated progress and appends a review log entry.
// When sessionID is set the session's counters are bumped as well; a stale
// session ID is ignored rather than failing the review. Store errors
// propagate unchanged.
func (s *Service) SubmitReview(ctx context.Context, phraseID int, answer string, skipped bool, sessionID string) (*ReviewResult, error) {
	phrase, err := s.stores.Phrases.GetByID(ctx, phraseID)
	if err != nil {
		return nil, err
	}

	res := matcher.Match(answer, phrase.Spanish, s.options)
	feedback := matcher.GetFeedback(answer, phrase.Spanish)
	correct := res.Matches && !skipped
	quality := spaced_repetition.QualityForOutcome(correct, skipped)

	now := s.now()
	progress, err := s.progressFor(ctx, phraseID)
	if err != nil {
		return nil, err
	}
	updated := s.engine.Review(progress, quality, now)
	if err := s.stores.Progress.Upsert(ctx, &updated); err != nil {
		return nil, err
	}

	entry := models.ReviewLog{
		PhraseID:   phraseID,
		SessionID:  sessionID,
		Answer:     answer,
		Quality:    int(quality),
		Correct:    correct,
		Skipped:    skipped,
		Similarity: res.Similarity,
		ReviewedAt: now,
	}
	if err := s.stores.Logs.Create(ctx, &entry); err != nil {
		return nil, err
	}

	if sessionID != "" {
		if err := s.stores.Sessions.IncrementCounts(ctx, sessionID, correct); err != nil {
			return nil, err
		}
	}

	return &ReviewResult{
		Phrase:   *phrase,
		Feedback: feedback,
		Match:    res,
		Quality:  quality,
		Progress: updated,
	}, nil
}

// progressFor loads the scheduling state for a phrase, starting a fresh
// record on first contact.
func (s *Service) progressFor(ctx context.Context, phraseID int) (models.Progress, error) {
	existing, err := s.stores.Progress.GetByPhrase(ctx, phraseID)
	if errors.Is(err, database.ErrNotFound) {
		return models.NewProgress(phraseID), nil
	}
	if err != nil {
		return models.Progress{}, err
	}
	return *existing, nil
}

// Check grades an answer for live typing feedback. Nothing is recorded.
func (s *Service) Check(ctx context.Context, phraseID int, answer string) (*CheckResult, error) {
	phrase, err := s.stores.Phrases.GetByID(ctx, phraseID)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Feedback: matcher.GetFeedback(answer, phrase.Spanish),
		Match:    matcher.Match(answer, phrase.Spanish, s.options),
	}, nil
}

// NextPhrase returns the phrase the selection policy picks for review now.
// An empty deck yields ErrNoPhrases.
func (s *Service) NextPhrase(ctx context.Context) (*models.Phrase, error) {
	phrases, err := s.stores.Phrases.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.stores.Progress.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	next, ok := spaced_repetition.NextPhrase(phrases, snapshot, s.now())
	if !ok {
		return nil, ErrNoPhrases
	}
	return &next, nil
}

// Stats aggregates deck-wide study statistics.
func (s *Service) Stats(ctx context.Context) (*models.StudyStats, error) {
	total, err := s.stores.Phrases.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.stores.Progress.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := spaced_repetition.Summarize(total, snapshot, s.now())
	return &stats, nil
}

// ListPhrases returns the deck, optionally filtered by category name. An
// unknown category yields an empty list rather than an error.
func (s *Service) ListPhrases(ctx context.Context, category string) ([]models.Phrase, error) {
	if category == "" {
		return s.stores.Phrases.GetAll(ctx)
	}
	cat, err := s.stores.Categories.GetByName(ctx, category)
	if errors.Is(err, database.ErrNotFound) {
		return []models.Phrase{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.stores.Phrases.GetByCategory(ctx, cat.ID)
}

// History returns the review log of one phrase, newest first.
func (s *Service) History(ctx context.Context, phraseID int) ([]models.ReviewLog, error) {
	if _, err := s.stores.Phrases.GetByID(ctx, phraseID); err != nil {
		return nil, err
	}
	return s.stores.Logs.GetByPhrase(ctx, phraseID)
}

// StartSession opens a new study session.
func (s *Service) StartSession(ctx context.Context) (*models.StudySession, error) {
	session := &models.StudySession{StartedAt: s.now()}
	if err := s.stores.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession stamps a session's end time and returns the final record.
func (s *Service) EndSession(ctx context.Context, id string) (*models.StudySession, error) {
	if err := s.stores.Sessions.End(ctx, id, s.now()); err != nil {
		return nil, err
	}
	return s.stores.Sessions.GetByID(ctx, id)
}

// Reset wipes all scheduling progress. The deck and the review history
// are kept.
func (s *Service) Reset(ctx context.Context) error {
	return s.stores.Progress.DeleteAll(ctx)
}
