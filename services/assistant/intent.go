package assistant

import (
	"strings"

	"homematch/models"
)

// intentRule pairs a lexicon group with the intent it yields and a fixed
// confidence. The rule list is ordered by priority; the first rule whose
// group matches the utterance wins.
type intentRule struct {
	group      string
	intent     models.Intent
	confidence float64
}

// Classifier maps a raw utterance to its best-guess intent. It is
// deterministic and side-effect free: classifying the same input twice
// always returns the same result.
type Classifier struct {
	lex   *Lexicon
	rules []intentRule
}

// NewClassifier builds the classifier with its fixed rule order.
func NewClassifier(lex *Lexicon) *Classifier {
	return &Classifier{
		lex: lex,
		rules: []intentRule{
			{groupRent, models.IntentSearchHouse, 0.9},
			{groupPrice, models.IntentAskPrice, 0.8},
			{groupCompare, models.IntentCompare, 0.85},
			{groupRecommend, models.IntentRecommend, 0.9},
			{groupShow, models.IntentShowHouses, 0.85},
		},
	}
}

// Classify evaluates the rule list top to bottom over the lowercased
// utterance. When no rule matches it returns the unknown intent at 0.5.
func (c *Classifier) Classify(utterance string) models.IntentResult {
	text := strings.ToLower(utterance)
	for _, r := range c.rules {
		if c.lex.MatchesGroup(text, r.group) {
			return models.IntentResult{Intent: r.intent, Confidence: r.confidence}
		}
	}
	return models.IntentResult{Intent: models.IntentUnknown, Confidence: 0.5}
}
