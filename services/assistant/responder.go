package assistant

import (
	"fmt"
	"strings"

	"homematch/models"
)

// Responder decides what the assistant says when the turn does not end in a
// search: small talk, help, recommendations and slot-filling prompts. It
// returns the reply plus a flag telling the engine to hand the turn off to
// the ranker instead.
type Responder struct {
	lex *Lexicon
}

// NewResponder builds a responder over the given lexicon.
func NewResponder(lex *Lexicon) *Responder {
	return &Responder{lex: lex}
}

// Suggestion chips offered for each still-missing slot.
var (
	typeSuggestions    = []string{"Căn hộ", "Nhà", "Villa"}
	countrySuggestions = []string{"Canada", "United States", "Vietnam"}
)

// Respond dispatches in fixed order: greeting, thanks, help, recommend
// intent, then either a slot-fill summary (when the required slots are not
// yet filled) or a search hand-off. The first applicable branch wins.
func (r *Responder) Respond(utterance string, state *models.Conversation, intent models.IntentResult) (models.Reply, bool) {
	text := strings.ToLower(utterance)

	switch {
	case r.lex.MatchesGroup(text, groupGreeting):
		return models.Reply{
			Text:        "Chào bạn! Tôi là trợ lý tìm nhà. Bạn đang tìm loại nhà nào và ở đâu?",
			Suggestions: []string{"Tìm căn hộ", "Xem nhà cho thuê", "Gợi ý cho tôi"},
		}, false

	case r.lex.MatchesGroup(text, groupThanks):
		return models.Reply{
			Text:        "Rất vui được giúp bạn! Bạn cần tìm thêm gì nữa không?",
			Suggestions: []string{"Tìm tiếp", "Đặt lại"},
		}, false

	case r.lex.MatchesGroup(text, groupHelp):
		return models.Reply{
			Text: "Bạn có thể mô tả nhà bạn muốn thuê, ví dụ: \"Tìm căn hộ 2 phòng ngủ ở Vietnam dưới 50k\". " +
				"Tôi cần biết loại nhà và vị trí để bắt đầu tìm kiếm.",
			Suggestions: []string{"Tìm căn hộ", "Tìm nhà", "Tìm villa"},
		}, false

	case intent.Intent == models.IntentRecommend:
		return models.Reply{
			Text:        "Tôi gợi ý một vài lựa chọn phổ biến, bạn chọn thử nhé:",
			Suggestions: []string{"Căn hộ ở Vietnam", "Nhà giá rẻ ở Canada", "Villa rộng ở United States"},
		}, false
	}

	if !CanSearch(state) {
		return r.slotSummary(state), false
	}

	// Enough slots are filled: the engine runs the ranker and formats its
	// result instead of a text prompt.
	return models.Reply{}, true
}

// slotSummary lists the known constraints with checkmarks, names the missing
// required slots and derives suggestion chips from the first missing slot.
func (r *Responder) slotSummary(state *models.Conversation) models.Reply {
	var b strings.Builder

	known := knownFields(state.Entities)
	if len(known) > 0 {
		b.WriteString("Tôi đã ghi nhận:\n")
		for _, f := range known {
			fmt.Fprintf(&b, "✓ %s\n", f)
		}
	}

	missing := MissingSlots(state)
	var suggestions []string
	switch {
	case len(missing) == 0:
		// Unreachable from Respond, kept for direct callers.
		return models.Reply{Text: b.String()}
	case missing[0] == slotTypeLabel:
		b.WriteString("Bạn muốn tìm loại nhà nào?")
		suggestions = typeSuggestions
	default:
		b.WriteString("Bạn muốn tìm ở đâu?")
		suggestions = countrySuggestions
	}

	return models.Reply{Text: b.String(), Suggestions: suggestions}
}

// knownFields renders the filled entity fields in display order.
func knownFields(e models.EntityBag) []string {
	var out []string
	if e.Type != nil {
		out = append(out, fmt.Sprintf("Loại: %s", *e.Type))
	}
	if e.Country != nil {
		out = append(out, fmt.Sprintf("Vị trí: %s", *e.Country))
	}
	if e.Bedrooms != nil {
		out = append(out, fmt.Sprintf("%d phòng ngủ", *e.Bedrooms))
	}
	if e.Bathrooms != nil {
		out = append(out, fmt.Sprintf("%d phòng tắm", *e.Bathrooms))
	}
	if e.Area != nil {
		out = append(out, fmt.Sprintf("Diện tích %dm²", *e.Area))
	}
	if e.MinPrice != nil && e.MaxPrice != nil {
		out = append(out, fmt.Sprintf("Giá từ %d đến %d", *e.MinPrice, *e.MaxPrice))
	} else if e.MaxPrice != nil {
		out = append(out, fmt.Sprintf("Giá dưới %d", *e.MaxPrice))
	} else if e.MinPrice != nil {
		out = append(out, fmt.Sprintf("Giá trên %d", *e.MinPrice))
	}
	if e.Preference != nil {
		out = append(out, fmt.Sprintf("Ưu tiên: %s", *e.Preference))
	}
	if e.SizePreference != nil {
		out = append(out, fmt.Sprintf("Kích thước: %s", *e.SizePreference))
	}
	return out
}
