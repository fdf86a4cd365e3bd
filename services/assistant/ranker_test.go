package assistant

import (
	"reflect"
	"testing"

	"homematch/models"
)

func listing(id, typ, country string) models.Listing {
	return models.Listing{ID: id, Title: id, Type: typ, Country: country}
}

func TestRankFullMatch(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{
		Type:     strPtr("Apartment"),
		Country:  strPtr("Canada"),
		Bedrooms: intPtr(2),
		MaxPrice: intPtr(50_000),
	}
	l := listing("a1", "Apartment", "Canada")
	l.Bedrooms = models.NewFlexInt(2)
	l.Price = models.NewFlexFloat(45_000)

	got := r.Rank(q, []models.Listing{l})
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	wantScore := TypeMatchPoints + CountryMatchPoints + BedroomsMatchPoints + MaxPricePoints
	if got[0].Score != wantScore {
		t.Errorf("Score = %d, want %d", got[0].Score, wantScore)
	}
	wantReasons := []string{"Đúng loại Apartment", "Vị trí Canada", "2 phòng ngủ", "Trong tầm giá"}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("Reasons = %v, want %v", got[0].Reasons, wantReasons)
	}
}

// A candidate of the wrong type still scores for its other matches; adding a
// matching constraint never lowers a candidate's score.
func TestRankAdditive(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{Type: strPtr("Apartment"), Country: strPtr("Canada")}

	apartment := listing("a1", "Apartment", "Canada")
	house := listing("h1", "House", "Canada")

	got := r.Rank(q, []models.Listing{house, apartment})
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Listing.ID != "a1" {
		t.Errorf("top result = %s, want a1", got[0].Listing.ID)
	}
	if got[0].Score != TypeMatchPoints+CountryMatchPoints {
		t.Errorf("apartment score = %d, want %d", got[0].Score, TypeMatchPoints+CountryMatchPoints)
	}
	if got[1].Score != CountryMatchPoints {
		t.Errorf("house score = %d, want %d", got[1].Score, CountryMatchPoints)
	}
}

func TestRankDropsZeroScores(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{Type: strPtr("Villa"), Country: strPtr("Vietnam")}

	got := r.Rank(q, []models.Listing{
		listing("x1", "Apartment", "Canada"),
		listing("v1", "Villa", "Vietnam"),
	})
	if len(got) != 1 || got[0].Listing.ID != "v1" {
		t.Fatalf("got %v, want only v1", got)
	}
}

func TestRankEmptyQueryDropsEverything(t *testing.T) {
	r := NewRanker()
	got := r.Rank(models.EntityBag{}, []models.Listing{
		listing("a1", "Apartment", "Canada"),
		listing("h1", "House", "Vietnam"),
	})
	if len(got) != 0 {
		t.Errorf("got %d results, want 0 for an empty constraint set", len(got))
	}
}

// Ties keep the relative order of the candidate slice.
func TestRankStableTies(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{Country: strPtr("Canada")}

	got := r.Rank(q, []models.Listing{
		listing("c1", "Apartment", "Canada"),
		listing("c2", "House", "Canada"),
		listing("c3", "Villa", "Canada"),
	})
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	for i, want := range []string{"c1", "c2", "c3"} {
		if got[i].Listing.ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].Listing.ID, want)
		}
	}
}

func TestRankCaseInsensitiveTypeAndCountry(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{Type: strPtr("apartment"), Country: strPtr("CANADA")}

	got := r.Rank(q, []models.Listing{listing("a1", "Apartment", "Canada")})
	if len(got) != 1 || got[0].Score != TypeMatchPoints+CountryMatchPoints {
		t.Fatalf("got %v, want one result with full type+country score", got)
	}
}

// Invalid numeric fields fail every comparison but never panic; the candidate
// keeps the points from its textual matches.
func TestRankInvalidNumericFields(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{
		Type:     strPtr("Apartment"),
		Country:  strPtr("Canada"),
		Bedrooms: intPtr(2),
		MaxPrice: intPtr(50_000),
	}
	bad := listing("bad", "Apartment", "Canada")
	// Bedrooms, Price and Surface left at their zero value: Valid=false.

	got := r.Rank(q, []models.Listing{bad})
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].Score != TypeMatchPoints+CountryMatchPoints {
		t.Errorf("Score = %d, want %d (numeric rules must not fire)", got[0].Score, TypeMatchPoints+CountryMatchPoints)
	}
}

func TestRankPriceBounds(t *testing.T) {
	r := NewRanker()

	cheapQuery := models.EntityBag{Country: strPtr("Canada"), MaxPrice: intPtr(40_000)}
	overpriced := listing("o1", "House", "Canada")
	overpriced.Price = models.NewFlexFloat(60_000)
	within := listing("w1", "House", "Canada")
	within.Price = models.NewFlexFloat(40_000)

	got := r.Rank(cheapQuery, []models.Listing{overpriced, within})
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Listing.ID != "w1" || got[0].Score != CountryMatchPoints+MaxPricePoints {
		t.Errorf("top = %s@%d, want w1@%d (boundary price counts as within)", got[0].Listing.ID, got[0].Score, CountryMatchPoints+MaxPricePoints)
	}
	if got[1].Score != CountryMatchPoints {
		t.Errorf("overpriced score = %d, want %d", got[1].Score, CountryMatchPoints)
	}
}

// The minimum-price rule adds points without a user-facing reason.
func TestRankMinPriceNoReason(t *testing.T) {
	r := NewRanker()
	q := models.EntityBag{Country: strPtr("Canada"), MinPrice: intPtr(10_000)}

	l := listing("m1", "House", "Canada")
	l.Price = models.NewFlexFloat(20_000)

	got := r.Rank(q, []models.Listing{l})
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].Score != CountryMatchPoints+MinPricePoints {
		t.Errorf("Score = %d, want %d", got[0].Score, CountryMatchPoints+MinPricePoints)
	}
	if !reflect.DeepEqual(got[0].Reasons, []string{"Vị trí Canada"}) {
		t.Errorf("Reasons = %v, want only the country reason", got[0].Reasons)
	}
}

func TestRankPreferenceAndSizeRules(t *testing.T) {
	r := NewRanker()

	tests := []struct {
		name       string
		q          models.EntityBag
		price      float64
		surface    float64
		wantScore  int
		wantReason string
	}{
		{"cheap under ceiling", models.EntityBag{Country: strPtr("Canada"), Preference: strPtr(models.PreferenceCheap)}, 30_000, 150, CountryMatchPoints + PreferencePoints, "Giá tốt"},
		{"cheap at ceiling misses", models.EntityBag{Country: strPtr("Canada"), Preference: strPtr(models.PreferenceCheap)}, 50_000, 150, CountryMatchPoints, ""},
		{"luxury over floor", models.EntityBag{Country: strPtr("Canada"), Preference: strPtr(models.PreferenceExpensive)}, 150_000, 150, CountryMatchPoints + PreferencePoints, "Cao cấp"},
		{"big over floor", models.EntityBag{Country: strPtr("Canada"), SizePreference: strPtr(models.SizeBig)}, 30_000, 250, CountryMatchPoints + SizePoints, "Diện tích rộng"},
		{"small under ceiling", models.EntityBag{Country: strPtr("Canada"), SizePreference: strPtr(models.SizeSmall)}, 30_000, 80, CountryMatchPoints + SizePoints, "Nhỏ gọn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listing("p1", "House", "Canada")
			l.Price = models.NewFlexFloat(tt.price)
			l.Surface = models.NewFlexFloat(tt.surface)

			got := r.Rank(tt.q, []models.Listing{l})
			if len(got) != 1 {
				t.Fatalf("got %d results, want 1", len(got))
			}
			if got[0].Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got[0].Score, tt.wantScore)
			}
			if tt.wantReason != "" {
				found := false
				for _, reason := range got[0].Reasons {
					if reason == tt.wantReason {
						found = true
					}
				}
				if !found {
					t.Errorf("Reasons = %v, want to include %q", got[0].Reasons, tt.wantReason)
				}
			}
		})
	}
}
