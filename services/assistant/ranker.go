package assistant

import (
	"fmt"
	"sort"
	"strings"

	"homematch/models"
)

// Scoring constants.
const (
	TypeMatchPoints      = 10
	CountryMatchPoints   = 10
	BedroomsMatchPoints  = 8
	BathroomsMatchPoints = 5
	MaxPricePoints       = 7
	MinPricePoints       = 5
	PreferencePoints     = 5
	SizePoints           = 5

	CheapPriceCeiling   = 50_000
	LuxuryPriceFloor    = 100_000
	BigSurfaceFloor     = 200
	SmallSurfaceCeiling = 100

	// TopResults caps the user-facing result set; the full ranked list is
	// retained in the conversation for "show more".
	TopResults = 5
)

// scoreRule is one row of the additive scoring table. match reports whether
// the rule fires for the candidate; reason renders the user-facing
// justification, or nil when the rule carries none. Keeping score and reason
// in the same row means the two can never drift apart.
type scoreRule struct {
	points int
	match  func(q *models.EntityBag, l *models.Listing) bool
	reason func(q *models.EntityBag, l *models.Listing) string
}

// Ranker scores candidate listings against the accumulated constraints using
// a fixed additive rule table. Rules fire independently; several may apply
// to one candidate. Malformed numeric fields on a candidate simply fail the
// comparisons for that field.
type Ranker struct {
	rules []scoreRule
}

// NewRanker builds the ranker with its fixed rule table, in table order.
func NewRanker() *Ranker {
	return &Ranker{rules: []scoreRule{
		{
			points: TypeMatchPoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.Type != nil && strings.EqualFold(l.Type, *q.Type)
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return fmt.Sprintf("Đúng loại %s", *q.Type)
			},
		},
		{
			points: CountryMatchPoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.Country != nil && strings.EqualFold(l.Country, *q.Country)
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return fmt.Sprintf("Vị trí %s", *q.Country)
			},
		},
		{
			points: BedroomsMatchPoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.Bedrooms != nil && l.Bedrooms.Valid && l.Bedrooms.Value == *q.Bedrooms
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return fmt.Sprintf("%d phòng ngủ", *q.Bedrooms)
			},
		},
		{
			points: BathroomsMatchPoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.Bathrooms != nil && l.Bathrooms.Valid && l.Bathrooms.Value == *q.Bathrooms
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return fmt.Sprintf("%d phòng tắm", *q.Bathrooms)
			},
		},
		{
			points: MaxPricePoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.MaxPrice != nil && l.Price.Valid && l.Price.Value <= float64(*q.MaxPrice)
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return "Trong tầm giá"
			},
		},
		{
			points: MinPricePoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.MinPrice != nil && l.Price.Valid && l.Price.Value >= float64(*q.MinPrice)
			},
		},
		{
			points: PreferencePoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.Preference != nil && *q.Preference == models.PreferenceCheap &&
					l.Price.Valid && l.Price.Value < CheapPriceCeiling
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return "Giá tốt"
			},
		},
		{
			points: PreferencePoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.Preference != nil && *q.Preference == models.PreferenceExpensive &&
					l.Price.Valid && l.Price.Value > LuxuryPriceFloor
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return "Cao cấp"
			},
		},
		{
			points: SizePoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.SizePreference != nil && *q.SizePreference == models.SizeBig &&
					l.Surface.Valid && l.Surface.Value > BigSurfaceFloor
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return "Diện tích rộng"
			},
		},
		{
			points: SizePoints,
			match: func(q *models.EntityBag, l *models.Listing) bool {
				return q.SizePreference != nil && *q.SizePreference == models.SizeSmall &&
					l.Surface.Valid && l.Surface.Value < SmallSurfaceCeiling
			},
			reason: func(q *models.EntityBag, l *models.Listing) string {
				return "Nhỏ gọn"
			},
		},
	}}
}

// Rank folds the rule table over every candidate, producing score and
// reasons together. Candidates scoring zero are dropped, never shown. The
// remainder is sorted descending by score with a stable sort: ties keep the
// relative order of the input array.
func (r *Ranker) Rank(q models.EntityBag, candidates []models.Listing) []models.ScoredListing {
	var scored []models.ScoredListing
	for i := range candidates {
		l := candidates[i]
		score := 0
		var reasons []string
		for _, rule := range r.rules {
			if !rule.match(&q, &l) {
				continue
			}
			score += rule.points
			if rule.reason != nil {
				reasons = append(reasons, rule.reason(&q, &l))
			}
		}
		if score == 0 {
			continue
		}
		scored = append(scored, models.ScoredListing{Listing: l, Score: score, Reasons: reasons})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
