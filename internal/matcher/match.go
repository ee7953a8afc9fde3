// Package matcher grades free-text answers against expected phrases. It
// forgives case, punctuation, extra whitespace and (by default) missing
// accents, and tolerates a bounded number of typos via edit distance.
package matcher

// DefaultMinSimilarity is the similarity gate applied on top of the edit
// distance budget when Options.MinSimilarity is unset.
const DefaultMinSimilarity = 0.85

// autoDistanceDivisor sets the automatic typo budget: one edit per five
// runes of the normalized expected phrase.
const autoDistanceDivisor = 5

// Options control how strictly Match compares an answer to the expected
// phrase. The zero value gives the defaults used when grading reviews.
type Options struct {
	// MaxDistance is the absolute edit budget. Zero selects the automatic
	// budget of one edit per five runes of the normalized expected phrase.
	MaxDistance int
	// MinSimilarity is the lowest 1 - distance/maxLen ratio that still
	// counts as a match. Zero selects DefaultMinSimilarity.
	MinSimilarity float64
	// StrictAccents keeps accents significant, so "esta" no longer
	// matches "está". Accents are folded by default.
	StrictAccents bool
}

// Result reports how close an answer came to the expected phrase.
type Result struct {
	Matches    bool    `json:"matches"`
	Similarity float64 `json:"similarity"` // 1 - distance/maxLen, in [0, 1]
	Distance   int     `json:"distance"`   // edit distance between the normalized strings
	Exact      bool    `json:"exact"`      // normalized strings were identical
}

// Match grades answer against expected under the given options. Both sides
// are normalized (and accent-folded unless StrictAccents) before comparison;
// identical normalized strings short-circuit as an exact match. A fuzzy
// match must pass both gates: edit distance within budget and similarity at
// or above the minimum.
func Match(answer, expected string, opts Options) Result {
	minSim := opts.MinSimilarity
	if minSim == 0 {
		minSim = DefaultMinSimilarity
	}

	a := Normalize(answer)
	e := Normalize(expected)
	if !opts.StrictAccents {
		a = RemoveAccents(a)
		e = RemoveAccents(e)
	}

	if a == e {
		return Result{Matches: true, Similarity: 1, Exact: true}
	}
	if a == "" {
		return Result{}
	}

	dist := Distance(a, e)
	maxLen := len([]rune(a))
	if n := len([]rune(e)); n > maxLen {
		maxLen = n
	}
	similarity := 1 - float64(dist)/float64(maxLen)

	allowed := opts.MaxDistance
	if allowed == 0 {
		allowed = len([]rune(e)) / autoDistanceDivisor
	}

	return Result{
		Matches:    dist <= allowed && similarity >= minSim,
		Similarity: similarity,
		Distance:   dist,
	}
}
