package assistant

import "homematch/models"

// Slot labels surfaced to the user, in prompt order: property type first,
// then location.
const (
	slotTypeLabel    = "loại nhà"
	slotCountryLabel = "vị trí"
)

// applyTurn folds one user turn into the conversation. It is a pure reducer:
// the input state is never mutated, the returned copy carries the merged
// entities, the appended history entry, the refreshed sentiment tag and the
// recomputed dialogue stage.
func (e *Engine) applyTurn(state *models.Conversation, utterance string, intent models.IntentResult, entities models.EntityBag) *models.Conversation {
	next := &models.Conversation{
		SessionID: state.SessionID,
		Entities:  state.Entities,
		Sentiment: state.Sentiment,
		Stage:     state.Stage,
		Ranked:    state.Ranked,
	}
	next.History = make([]models.ChatTurn, len(state.History), len(state.History)+1)
	copy(next.History, state.History)

	// Field-wise last-write-wins: a newly extracted value replaces the old
	// one entirely, absent fields keep prior values.
	next.Entities.Merge(entities)

	next.History = append(next.History, models.ChatTurn{
		Utterance: utterance,
		Entities:  entities,
		Intent:    intent,
	})

	if s := e.lex.Sentiment(utterance); s != "" {
		next.Sentiment = s
	}

	switch {
	case CanSearch(next):
		next.Stage = models.StageReady
	case !next.Entities.IsEmpty():
		next.Stage = models.StageCollecting
	default:
		if next.Stage == "" {
			next.Stage = models.StageGreeting
		}
	}

	return next
}

// CanSearch reports whether enough slots are filled to run a search. The
// property type and the country are the only required slots; every other
// field is an optional refinement.
func CanSearch(state *models.Conversation) bool {
	return state.Entities.Type != nil && state.Entities.Country != nil
}

// MissingSlots returns the labels of the required slots that are still
// unfilled, in fixed prompt order.
func MissingSlots(state *models.Conversation) []string {
	var missing []string
	if state.Entities.Type == nil {
		missing = append(missing, slotTypeLabel)
	}
	if state.Entities.Country == nil {
		missing = append(missing, slotCountryLabel)
	}
	return missing
}
