package assistant

import (
	"regexp"
	"strings"
)

// Lexicon group tags.
const (
	groupRent      = "rent"
	groupApartment = "apartment"
	groupHouse     = "house"
	groupVilla     = "villa"
	groupPrice     = "price"
	groupCompare   = "compare"
	groupRecommend = "recommend"
	groupShow      = "show"
	groupCheap     = "cheap"
	groupExpensive = "expensive"
	groupBig       = "big"
	groupSmall     = "small"
	groupGreeting  = "greeting"
	groupThanks    = "thanks"
	groupHelp      = "help"
)

// countryPattern maps a canonical country name to the pattern recognising it.
type countryPattern struct {
	name string
	re   *regexp.Regexp
}

// Lexicon holds the static synonym groups, sentiment word lists and
// extraction patterns used by the classifier and the extractor. It is built
// once at startup and never mutated afterwards; all matching is
// case-insensitive substring or regex matching over the lowercased text.
type Lexicon struct {
	groups   map[string][]string
	positive []string
	negative []string

	bedroomRe  *regexp.Regexp
	bathroomRe *regexp.Regexp
	areaRe     *regexp.Regexp

	// Price patterns, evaluated in this fixed order: max, min, range.
	priceMaxRe   *regexp.Regexp
	priceMinRe   *regexp.Regexp
	priceRangeRe *regexp.Regexp

	// Unit multipliers are detected over the whole utterance, not the
	// matched numeral's local context. Kept as observed in production.
	thousandRe *regexp.Regexp
	millionRe  *regexp.Regexp

	countries []countryPattern
}

// NewLexicon builds the immutable lexicon tables.
func NewLexicon() *Lexicon {
	return &Lexicon{
		groups: map[string][]string{
			groupRent: {
				"thuê", "thue", "rent", "tìm", "tim ", "find", "search",
				"cần", "can ", "kiếm", "kiem",
			},
			groupApartment: {
				"apartment", "căn hộ", "can ho", "chung cư", "chung cu",
			},
			groupHouse: {
				"house", "nhà", "nha ", "nhà phố",
			},
			groupVilla: {
				"villa", "biệt thự", "biet thu",
			},
			groupPrice: {
				"giá", "gia bao", "price", "cost", "bao nhiêu", "bao nhieu",
				"how much",
			},
			groupCompare: {
				"so sánh", "so sanh", "compare", " vs ",
			},
			groupRecommend: {
				"gợi ý", "goi y", "recommend", "suggest", "tư vấn", "tu van",
				"nên chọn", "nen chon",
			},
			groupShow: {
				"xem", "show", "list", "danh sách", "danh sach", "hiển thị",
				"hien thi",
			},
			groupCheap: {
				"rẻ", "re nhat", "cheap", "giá rẻ", "gia re", "affordable",
				"tiết kiệm", "tiet kiem", "budget",
			},
			groupExpensive: {
				"đắt", "dat tien", "expensive", "cao cấp", "cao cap",
				"luxury", "sang trọng", "sang trong",
			},
			groupBig: {
				"rộng", "rong rai", "big", "lớn", "lon ", "large", "spacious",
			},
			groupSmall: {
				"nhỏ", "nho ", "small", "compact", "nhỏ gọn",
			},
			groupGreeting: {
				"hello", "hi ", "hey", "chào", "xin chào", "chao ",
			},
			groupThanks: {
				"cảm ơn", "cam on", "thanks", "thank you",
			},
			groupHelp: {
				"help", "giúp", "giup", "hướng dẫn", "huong dan",
			},
		},
		positive: []string{
			"thích", "thich", "tốt", "tot", "đẹp", "dep", "great", "good",
			"love", "nice", "perfect", "tuyệt", "tuyet",
		},
		negative: []string{
			"không thích", "khong thich", "tệ", "te qua", "xấu", "xau",
			"bad", "hate", "terrible", "chán", "chan",
		},

		bedroomRe:  regexp.MustCompile(`(\d+)\s*(?:phòng ngủ|phong ngu|pn\b|bedrooms?|beds?\b|br\b)`),
		bathroomRe: regexp.MustCompile(`(\d+)\s*(?:phòng tắm|phong tam|nhà vệ sinh|wc\b|toilets?|bathrooms?|baths?\b)`),
		areaRe:     regexp.MustCompile(`(\d+)\s*(?:m2|m²|mét vuông|met vuong|sqm|sq\.?\s?ft|sqft|square\s(?:meters?|feet))`),

		priceMaxRe:   regexp.MustCompile(`(?:dưới|duoi|under|below|<)\s*(\d+(?:[.,]\d+)?)`),
		priceMinRe:   regexp.MustCompile(`(?:trên|tren|over|above|>)\s*(\d+(?:[.,]\d+)?)`),
		priceRangeRe: regexp.MustCompile(`(?:từ|tu|from)\s*(\d+(?:[.,]\d+)?)\s*(?:đến|den|tới|toi|to|-)\s*(\d+(?:[.,]\d+)?)`),

		thousandRe: regexp.MustCompile(`\d\s*k\b|nghìn|nghin|ngàn|ngan`),
		millionRe:  regexp.MustCompile(`triệu|trieu|\d\s*tr\b`),

		countries: []countryPattern{
			{name: "Canada", re: regexp.MustCompile(`canada`)},
			{name: "United States", re: regexp.MustCompile(`united states|\busa\b|\bus\b|america|hoa kỳ|hoa ky|mỹ`)},
			{name: "Vietnam", re: regexp.MustCompile(`việt nam|viet\s?nam|\bvn\b`)},
		},
	}
}

// MatchesGroup reports whether any surface form of the group tag is a
// substring of the lowercased text. Unknown tags never match.
func (l *Lexicon) MatchesGroup(text, tag string) bool {
	text = strings.ToLower(text)
	for _, form := range l.groups[tag] {
		if strings.Contains(text, form) {
			return true
		}
	}
	return false
}

// Sentiment tags the text as "positive", "negative" or "" using the
// sentiment word lists. Negative words are checked first so that phrases
// like "không thích" are not shadowed by an embedded positive word.
func (l *Lexicon) Sentiment(text string) string {
	text = strings.ToLower(text)
	for _, w := range l.negative {
		if strings.Contains(text, w) {
			return "negative"
		}
	}
	for _, w := range l.positive {
		if strings.Contains(text, w) {
			return "positive"
		}
	}
	return ""
}
