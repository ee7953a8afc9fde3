package matcher

import "strings"

// FeedbackType classifies an answer for presentation in the review overlay.
type FeedbackType string

const (
	// FeedbackCorrect means the answer matched, exactly or within the typo budget
	FeedbackCorrect FeedbackType = "correct"
	// FeedbackPartial means the answer is an unfinished prefix of the expected phrase
	FeedbackPartial FeedbackType = "partial"
	// FeedbackClose means the answer missed but was nearly right
	FeedbackClose FeedbackType = "close"
	// FeedbackIncorrect means the answer was wrong
	FeedbackIncorrect FeedbackType = "incorrect"
)

// minPartialRunes is the shortest normalized answer treated as a deliberate
// prefix rather than a stray keystroke.
const minPartialRunes = 3

// closeSimilarity is the similarity floor for the "close" tier.
const closeSimilarity = 0.7

// Feedback pairs a classification with a message the overlay shows as-is.
type Feedback struct {
	Type    FeedbackType `json:"type"`
	Message string       `json:"message"`
}

// GetFeedback classifies answer against expected using the default matching
// options. Tiers are checked in priority order: correct, then partial
// prefix, then close, then incorrect. The prefix check runs on the
// normalized strings without accent folding, so "como" is not a prefix of
// "cómo estás".
func GetFeedback(answer, expected string) Feedback {
	res := Match(answer, expected, Options{})
	if res.Matches {
		if res.Exact {
			return Feedback{Type: FeedbackCorrect, Message: "¡Perfecto!"}
		}
		return Feedback{Type: FeedbackCorrect, Message: "¡Correcto! Watch the spelling."}
	}

	a := Normalize(answer)
	e := Normalize(expected)
	if len([]rune(a)) >= minPartialRunes && strings.HasPrefix(e, a) {
		return Feedback{Type: FeedbackPartial, Message: "Keep going..."}
	}
	if res.Similarity >= closeSimilarity {
		return Feedback{Type: FeedbackClose, Message: "So close, try again."}
	}
	return Feedback{Type: FeedbackIncorrect, Message: "Not quite."}
}
