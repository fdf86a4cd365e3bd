package assistant

import (
	"fmt"

	"homematch/models"
)

// Engine is the rule-based conversational matching core. It is a pure
// function of its inputs — utterance, prior state and candidate set — with
// no I/O, no clock and no randomness, so every turn can be replayed
// deterministically.
type Engine struct {
	lex        *Lexicon
	classifier *Classifier
	extractor  *Extractor
	responder  *Responder
	ranker     *Ranker
}

// TurnResult is the full outcome of one processed user turn.
type TurnResult struct {
	Intent   models.IntentResult
	Entities models.EntityBag
	NewState *models.Conversation
	Reply    models.Reply
}

// NewEngine wires the engine components over one shared lexicon.
func NewEngine() *Engine {
	lex := NewLexicon()
	return &Engine{
		lex:        lex,
		classifier: NewClassifier(lex),
		extractor:  NewExtractor(lex),
		responder:  NewResponder(lex),
		ranker:     NewRanker(),
	}
}

// ProcessTurn runs the full pipeline for one user turn: classify, extract,
// merge into the conversation, then either prompt or rank the candidate set.
// The input state is never mutated.
func (e *Engine) ProcessTurn(utterance string, state *models.Conversation, candidates []models.Listing) TurnResult {
	if state == nil {
		state = models.NewConversation("")
	}

	intent := e.classifier.Classify(utterance)
	entities := e.extractor.Extract(utterance)
	next := e.applyTurn(state, utterance, intent, entities)

	reply, search := e.responder.Respond(utterance, next, intent)
	if search {
		next.Stage = models.StageSearching
		ranked := e.ranker.Rank(next.Entities, candidates)
		next.Ranked = ranked
		reply = e.formatResults(next, ranked)
	}

	return TurnResult{
		Intent:   intent,
		Entities: entities,
		NewState: next,
		Reply:    reply,
	}
}

// Reset returns a cleared conversation for the session, back at the
// greeting stage.
func (e *Engine) Reset(sessionID string) *models.Conversation {
	return models.NewConversation(sessionID)
}

// formatResults turns the ranked list into a reply, keeping the full list in
// state and surfacing only the top results.
func (e *Engine) formatResults(state *models.Conversation, ranked []models.ScoredListing) models.Reply {
	if len(ranked) == 0 {
		state.Stage = models.StageNoResults
		return models.Reply{
			Text:        "Tôi chưa tìm thấy nhà nào phù hợp. Bạn thử nới rộng tiêu chí xem sao?",
			Suggestions: []string{"Bỏ giới hạn giá", "Đổi vị trí", "Đặt lại"},
		}
	}

	state.Stage = models.StageResults
	top := ranked
	if len(top) > TopResults {
		top = top[:TopResults]
	}

	text := fmt.Sprintf("Tìm thấy %d nhà phù hợp, đây là %d kết quả tốt nhất:", len(ranked), len(top))
	suggestions := []string{"Đặt lại"}
	if len(ranked) > len(top) {
		suggestions = []string{"Xem thêm", "Đặt lại"}
	}

	return models.Reply{Text: text, Suggestions: suggestions, Listings: top}
}
