package assistant

import (
	"reflect"
	"strings"
	"testing"

	"homematch/models"
)

func newResponderForTest() *Responder {
	return NewResponder(NewLexicon())
}

func TestRespondSmallTalk(t *testing.T) {
	r := newResponderForTest()
	state := models.NewConversation("s1")
	unknown := models.IntentResult{Intent: models.IntentUnknown, Confidence: 0.5}

	tests := []struct {
		name        string
		utterance   string
		wantInText  string
		wantChip    string
	}{
		{"greeting vi", "Xin chào!", "trợ lý tìm nhà", "Tìm căn hộ"},
		{"greeting en", "hello there", "trợ lý tìm nhà", "Tìm căn hộ"},
		{"thanks", "cảm ơn nhé", "Rất vui được giúp bạn", "Tìm tiếp"},
		{"help", "hướng dẫn mình với", "mô tả nhà bạn muốn thuê", "Tìm căn hộ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, search := r.Respond(tt.utterance, state, unknown)
			if search {
				t.Fatal("small talk must not trigger a search")
			}
			if !strings.Contains(reply.Text, tt.wantInText) {
				t.Errorf("Text = %q, want it to contain %q", reply.Text, tt.wantInText)
			}
			found := false
			for _, s := range reply.Suggestions {
				if s == tt.wantChip {
					found = true
				}
			}
			if !found {
				t.Errorf("Suggestions = %v, want to include %q", reply.Suggestions, tt.wantChip)
			}
		})
	}
}

// Greeting outranks every later branch, even when the turn also carries a
// recommend keyword.
func TestRespondDispatchOrder(t *testing.T) {
	r := newResponderForTest()
	state := models.NewConversation("s1")

	reply, search := r.Respond("hello, suggest something", state, models.IntentResult{Intent: models.IntentRecommend, Confidence: 0.9})
	if search {
		t.Fatal("greeting must not trigger a search")
	}
	if !strings.Contains(reply.Text, "trợ lý tìm nhà") {
		t.Errorf("Text = %q, want the greeting reply", reply.Text)
	}
}

func TestRespondRecommend(t *testing.T) {
	r := newResponderForTest()
	state := models.NewConversation("s1")

	reply, search := r.Respond("tư vấn cho mình", state, models.IntentResult{Intent: models.IntentRecommend, Confidence: 0.9})
	if search {
		t.Fatal("recommend must not trigger a search")
	}
	if !strings.Contains(reply.Text, "gợi ý") {
		t.Errorf("Text = %q, want the recommendation reply", reply.Text)
	}
	if len(reply.Suggestions) == 0 {
		t.Error("recommendation reply must carry suggestion chips")
	}
}

func TestRespondSlotPromptTypeFirst(t *testing.T) {
	r := newResponderForTest()
	state := models.NewConversation("s1")

	reply, search := r.Respond("dưới 500", state, models.IntentResult{Intent: models.IntentUnknown, Confidence: 0.5})
	if search {
		t.Fatal("missing slots must not trigger a search")
	}
	if !strings.Contains(reply.Text, "Bạn muốn tìm loại nhà nào?") {
		t.Errorf("Text = %q, want the type prompt", reply.Text)
	}
	if !reflect.DeepEqual(reply.Suggestions, typeSuggestions) {
		t.Errorf("Suggestions = %v, want %v", reply.Suggestions, typeSuggestions)
	}
}

func TestRespondSlotPromptCountryWithSummary(t *testing.T) {
	r := newResponderForTest()
	state := models.NewConversation("s1")
	state.Entities = models.EntityBag{
		Type:     strPtr("Apartment"),
		Bedrooms: intPtr(2),
		MaxPrice: intPtr(50_000),
	}

	reply, search := r.Respond("2 phòng ngủ", state, models.IntentResult{Intent: models.IntentUnknown, Confidence: 0.5})
	if search {
		t.Fatal("missing country must not trigger a search")
	}
	for _, want := range []string{"✓ Loại: Apartment", "✓ 2 phòng ngủ", "✓ Giá dưới 50000", "Bạn muốn tìm ở đâu?"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("Text = %q, want it to contain %q", reply.Text, want)
		}
	}
	if !reflect.DeepEqual(reply.Suggestions, countrySuggestions) {
		t.Errorf("Suggestions = %v, want %v", reply.Suggestions, countrySuggestions)
	}
}

func TestRespondSearchHandOff(t *testing.T) {
	r := newResponderForTest()
	state := models.NewConversation("s1")
	state.Entities = models.EntityBag{Type: strPtr("Apartment"), Country: strPtr("Canada")}

	reply, search := r.Respond("ở canada", state, models.IntentResult{Intent: models.IntentSearchHouse, Confidence: 0.9})
	if !search {
		t.Fatal("filled required slots must hand off to the search path")
	}
	if reply.Text != "" || reply.Suggestions != nil || reply.Listings != nil {
		t.Errorf("hand-off reply must be empty, got %+v", reply)
	}
}

func TestKnownFieldsPriceRendering(t *testing.T) {
	tests := []struct {
		name string
		bag  models.EntityBag
		want string
	}{
		{"range", models.EntityBag{MinPrice: intPtr(100), MaxPrice: intPtr(200)}, "Giá từ 100 đến 200"},
		{"max only", models.EntityBag{MaxPrice: intPtr(200)}, "Giá dưới 200"},
		{"min only", models.EntityBag{MinPrice: intPtr(100)}, "Giá trên 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := knownFields(tt.bag)
			if len(fields) != 1 || fields[0] != tt.want {
				t.Errorf("knownFields = %v, want [%q]", fields, tt.want)
			}
		})
	}
}
