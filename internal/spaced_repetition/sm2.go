package spaced_repetition

import (
	"math"
	"time"

	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// Quality represents the quality of a response on the SM-2 scale.
type Quality int

const (
	// Complete blackout, unable to recall (also used for skipped cards)
	QualityBlackout Quality = 0
	// Incorrect response
	QualityIncorrect Quality = 1
	// Incorrect response but the correct answer felt familiar
	QualityIncorrectFamiliar Quality = 2
	// Correct response but required significant effort
	QualityCorrectDifficult Quality = 3
	// Correct response after some hesitation
	QualityCorrectHesitation Quality = 4
	// Perfect response with no hesitation
	QualityPerfect Quality = 5
)

// QualityForOutcome maps a graded review to the quality fed into the
// scheduler. Skips count as a blackout even when the answer text happened to
// match. Typed answers never earn the perfect 5; that grade is reserved for
// explicit self-assessment.
func QualityForOutcome(correct, skipped bool) Quality {
	switch {
	case skipped:
		return QualityBlackout
	case correct:
		return QualityCorrectHesitation
	default:
		return QualityIncorrect
	}
}

// SM2 implements the SuperMemo-2 algorithm for spaced repetition.
type SM2 struct {
	// PassThreshold is the lowest quality counted as a successful recall.
	PassThreshold Quality
	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor float64
	// FirstInterval and SecondInterval are the fixed day counts for the
	// first two successful reviews; later intervals grow by the ease factor.
	FirstInterval  int
	SecondInterval int
}

// NewSM2 creates an engine with the standard SM-2 constants.
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold:  QualityCorrectDifficult,
		MinEaseFactor:  1.3,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// Review applies a single review to a progress record and returns the
// updated copy; the input is not mutated. The growth interval is computed
// from the ease factor as it stood before this review, then the ease factor
// itself is adjusted, on success and failure alike.
//
// Quality is used arithmetically and is not range-checked; callers pass
// values on the 0-5 scale.
func (sm *SM2) Review(p models.Progress, quality Quality, now time.Time) models.Progress {
	p.LastReview = &now
	p.TotalReviews++

	if quality >= sm.PassThreshold {
		p.CorrectReviews++
		switch p.Repetitions {
		case 0:
			p.Interval = sm.FirstInterval
		case 1:
			p.Interval = sm.SecondInterval
		default:
			p.Interval = int(math.Round(float64(p.Interval) * p.EaseFactor))
		}
		p.Repetitions++
	} else {
		// Failed recall resets the streak and the interval. The review
		// counters keep their history.
		p.Repetitions = 0
		p.Interval = 1
	}

	p.EaseFactor = sm.nextEase(p.EaseFactor, quality)
	p.NextReview = now.Add(time.Duration(p.Interval) * 24 * time.Hour)
	return p
}

// nextEase shifts the ease factor by the SM-2 quadratic penalty: +0.1 at
// quality 5, unchanged at 4, -0.14 at 3, down to -0.8 at 0.
func (sm *SM2) nextEase(ef float64, quality Quality) float64 {
	miss := 5.0 - float64(quality)
	ef += 0.1 - miss*(0.08+miss*0.02)
	if ef < sm.MinEaseFactor {
		ef = sm.MinEaseFactor
	}
	return ef
}
