package api

import (
	"github.com/seekayel/habla-espanol-ext/internal/matcher"
	"github.com/seekayel/habla-espanol-ext/internal/study"
	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// SubmitReviewRequest records one answered (or skipped) card.
type SubmitReviewRequest struct {
	PhraseID  int    `json:"phrase_id" binding:"required"`
	Answer    string `json:"answer"`
	Skipped   bool   `json:"skipped"`
	SessionID string `json:"session_id"`
}

// CheckRequest grades an answer without recording it, for live typing
// feedback in the overlay.
type CheckRequest struct {
	PhraseID int    `json:"phrase_id" binding:"required"`
	Answer   string `json:"answer"`
}

// ReviewResponse is the result of a recorded review: what to show the
// learner plus the updated scheduling state.
type ReviewResponse struct {
	Phrase   models.Phrase    `json:"phrase"`
	Feedback matcher.Feedback `json:"feedback"`
	Match    matcher.Result   `json:"match"`
	Quality  int              `json:"quality"`
	Progress models.Progress  `json:"progress"`
}

// CheckResponse carries grading feedback only.
type CheckResponse struct {
	Feedback matcher.Feedback `json:"feedback"`
	Match    matcher.Result   `json:"match"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newReviewResponse(r *study.ReviewResult) ReviewResponse {
	return ReviewResponse{
		Phrase:   r.Phrase,
		Feedback: r.Feedback,
		Match:    r.Match,
		Quality:  int(r.Quality),
		Progress: r.Progress,
	}
}

func newCheckResponse(r *study.CheckResult) CheckResponse {
	return CheckResponse{Feedback: r.Feedback, Match: r.Match}
}
