package assistant

import (
	"testing"

	"homematch/models"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(NewLexicon())

	tests := []struct {
		name           string
		utterance      string
		wantIntent     models.Intent
		wantConfidence float64
	}{
		{"rent vietnamese", "Tôi muốn thuê căn hộ", models.IntentSearchHouse, 0.9},
		{"rent english", "I want to rent a villa", models.IntentSearchHouse, 0.9},
		{"find", "Tìm nhà 2 phòng ngủ", models.IntentSearchHouse, 0.9},
		{"ask price", "Giá bao nhiêu vậy?", models.IntentAskPrice, 0.8},
		{"ask price english", "How much does it cost", models.IntentAskPrice, 0.8},
		{"compare", "So sánh hai căn này giúp mình", models.IntentCompare, 0.85},
		{"recommend", "Suggest me something nice", models.IntentRecommend, 0.9},
		{"recommend vietnamese", "Tư vấn cho mình với", models.IntentRecommend, 0.9},
		{"show", "Show me the listings", models.IntentShowHouses, 0.85},
		{"unknown", "qwerty", models.IntentUnknown, 0.5},
		{"empty", "", models.IntentUnknown, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.utterance)
			if got.Intent != tt.wantIntent {
				t.Errorf("Classify(%q).Intent = %q, want %q", tt.utterance, got.Intent, tt.wantIntent)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tt.utterance, got.Confidence, tt.wantConfidence)
			}
		})
	}
}

// Rent synonyms always take priority over every other rule, even when price
// or comparison keywords are present in the same utterance.
func TestClassifyRentPriority(t *testing.T) {
	c := NewClassifier(NewLexicon())

	utterances := []string{
		"thuê nhà giá bao nhiêu",
		"rent vs buy, so sánh giúp mình",
		"tìm căn hộ, suggest một vài cái",
	}
	for _, u := range utterances {
		got := c.Classify(u)
		if got.Intent != models.IntentSearchHouse || got.Confidence != 0.9 {
			t.Errorf("Classify(%q) = %+v, want search_house@0.9", u, got)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(NewLexicon())
	u := "So sánh giúp mình hai căn này"
	first := c.Classify(u)
	for i := 0; i < 5; i++ {
		if got := c.Classify(u); got != first {
			t.Fatalf("Classify is not deterministic: %+v != %+v", got, first)
		}
	}
}
