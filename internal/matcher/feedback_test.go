package matcher

import "testing"

func TestGetFeedbackTiers(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected string
		want     FeedbackType
	}{
		{"exact", "Hola", "Hola", FeedbackCorrect},
		{"fuzzy typo", "Buenos diaz", "Buenos días", FeedbackCorrect},
		{"prefix", "buenos", "Buenos días", FeedbackPartial},
		{"prefix with casing", "Buenos dí", "Buenos días", FeedbackPartial},
		{"near miss", "buemos dia", "Buenos días", FeedbackClose},
		{"wrong", "adiós", "Buenos días", FeedbackIncorrect},
		{"empty", "", "Buenos días", FeedbackIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := GetFeedback(tt.answer, tt.expected)
			if fb.Type != tt.want {
				t.Errorf("GetFeedback(%q, %q).Type = %q, want %q", tt.answer, tt.expected, fb.Type, tt.want)
			}
			if fb.Message == "" {
				t.Error("feedback message is empty")
			}
		})
	}
}

func TestGetFeedbackExactAndFuzzyMessagesDiffer(t *testing.T) {
	exact := GetFeedback("Hola", "Hola")
	fuzzy := GetFeedback("Buenos diaz", "Buenos días")
	if exact.Type != FeedbackCorrect || fuzzy.Type != FeedbackCorrect {
		t.Fatalf("both should be correct: exact %+v, fuzzy %+v", exact, fuzzy)
	}
	if exact.Message == fuzzy.Message {
		t.Error("exact and fuzzy correct answers should get different messages")
	}
}

func TestGetFeedbackShortPrefixNotPartial(t *testing.T) {
	// Two runes is below the prefix threshold.
	fb := GetFeedback("bu", "Buenos días")
	if fb.Type == FeedbackPartial {
		t.Errorf("two-rune answer classified as partial: %+v", fb)
	}
}

func TestGetFeedbackPartialWinsOverClose(t *testing.T) {
	// "buenos d" is both a prefix and within the close-similarity band;
	// the prefix tier has priority.
	fb := GetFeedback("buenos d", "Buenos días")
	if fb.Type != FeedbackPartial {
		t.Errorf("GetFeedback(buenos d, Buenos días).Type = %q, want %q", fb.Type, FeedbackPartial)
	}
}

func TestGetFeedbackPrefixKeepsAccentsSignificant(t *testing.T) {
	// The prefix check does not fold accents: "como" is not a prefix of
	// "cómo estás", so this lands in a lower tier.
	fb := GetFeedback("como", "¿Cómo estás?")
	if fb.Type == FeedbackPartial {
		t.Errorf("unaccented prefix classified as partial: %+v", fb)
	}
}
