package models

// Intent is the coarse classification of what the user wants.
type Intent string

const (
	IntentSearchHouse Intent = "search_house"
	IntentAskPrice    Intent = "ask_price"
	IntentCompare     Intent = "compare"
	IntentRecommend   Intent = "recommend"
	IntentShowHouses  Intent = "show_houses"
	IntentUnknown     Intent = "unknown"
)

// IntentResult carries the classified intent and its confidence in [0,1].
type IntentResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Qualitative preference values produced by the extractor.
const (
	PreferenceCheap     = "cheap"
	PreferenceExpensive = "expensive"
	SizeBig             = "big"
	SizeSmall           = "small"
)

// EntityBag holds the structured search constraints extracted from free text.
// Every field is independently optional; a nil field means "unconstrained",
// never zero.
type EntityBag struct {
	Type           *string `json:"type,omitempty"`
	Country        *string `json:"country,omitempty"`
	Bedrooms       *int    `json:"bedrooms,omitempty"`
	Bathrooms      *int    `json:"bathrooms,omitempty"`
	Area           *int    `json:"area,omitempty"`
	MinPrice       *int    `json:"minPrice,omitempty"`
	MaxPrice       *int    `json:"maxPrice,omitempty"`
	Preference     *string `json:"preference,omitempty"`     // "cheap" | "expensive"
	SizePreference *string `json:"sizePreference,omitempty"` // "big" | "small"
}

// Merge overwrites the bag's fields with any field present in other.
// Absent fields in other leave the existing values untouched, so partial
// extractions never destroy previously known constraints.
func (b *EntityBag) Merge(other EntityBag) {
	if other.Type != nil {
		b.Type = other.Type
	}
	if other.Country != nil {
		b.Country = other.Country
	}
	if other.Bedrooms != nil {
		b.Bedrooms = other.Bedrooms
	}
	if other.Bathrooms != nil {
		b.Bathrooms = other.Bathrooms
	}
	if other.Area != nil {
		b.Area = other.Area
	}
	if other.MinPrice != nil {
		b.MinPrice = other.MinPrice
	}
	if other.MaxPrice != nil {
		b.MaxPrice = other.MaxPrice
	}
	if other.Preference != nil {
		b.Preference = other.Preference
	}
	if other.SizePreference != nil {
		b.SizePreference = other.SizePreference
	}
}

// IsEmpty reports whether no constraint has been extracted yet.
func (b EntityBag) IsEmpty() bool {
	return b.Type == nil && b.Country == nil && b.Bedrooms == nil &&
		b.Bathrooms == nil && b.Area == nil && b.MinPrice == nil &&
		b.MaxPrice == nil && b.Preference == nil && b.SizePreference == nil
}

// ChatTurn records one processed user turn in the conversation history.
type ChatTurn struct {
	Utterance string       `json:"utterance"`
	Entities  EntityBag    `json:"entities"`
	Intent    IntentResult `json:"intent"`
}

// Stage is the dialogue-level state of a conversation.
type Stage string

const (
	StageGreeting   Stage = "greeting"
	StageCollecting Stage = "collecting"
	StageReady      Stage = "ready"
	StageSearching  Stage = "searching"
	StageResults    Stage = "results"
	StageNoResults  Stage = "no_results"
)

// Conversation is the accumulated per-session state: the merged entity bag,
// the turn history, a running sentiment tag and the most recent ranked
// result set. It is owned by exactly one session and replaced wholesale on
// every turn (last write wins).
type Conversation struct {
	SessionID string          `json:"sessionId"`
	Entities  EntityBag       `json:"entities"`
	History   []ChatTurn      `json:"history"`
	Sentiment string          `json:"sentiment,omitempty"`
	Stage     Stage           `json:"stage"`
	Ranked    []ScoredListing `json:"ranked,omitempty"`
}

// NewConversation returns a fresh conversation at the greeting stage.
func NewConversation(sessionID string) *Conversation {
	return &Conversation{SessionID: sessionID, Stage: StageGreeting}
}

// Reply is what the assistant says back: text, clickable suggestion chips
// and, after a search, the listings to render as cards.
type Reply struct {
	Text        string          `json:"text"`
	Suggestions []string        `json:"suggestions"`
	Listings    []ScoredListing `json:"listings,omitempty"`
}

// ChatRequest is the payload coming from the frontend into the chat endpoint.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is what the chat endpoint returns to the frontend.
type ChatResponse struct {
	SessionID string       `json:"session_id"`
	Intent    IntentResult `json:"intent"`
	Entities  EntityBag    `json:"entities"`
	Stage     Stage        `json:"stage"`
	Reply     Reply        `json:"reply"`
}
