package assistant

import (
	"math"
	"strconv"
	"strings"

	"homematch/models"
)

// typeGroup maps a lexicon group to the canonical property type it produces.
// Checked in this fixed order; the first hit wins.
var typeGroups = []struct {
	group     string
	canonical string
}{
	{groupApartment, "Apartment"},
	{groupHouse, "House"},
	{groupVilla, "Villa"},
}

// Extractor turns a raw utterance into a partial EntityBag. It never fails:
// unparsable fragments are simply omitted from the bag.
type Extractor struct {
	lex *Lexicon
}

// NewExtractor builds an extractor over the given lexicon.
func NewExtractor(lex *Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract runs every extraction rule independently over the utterance and
// unions the results into one bag. Fields with no match stay nil.
func (e *Extractor) Extract(utterance string) models.EntityBag {
	text := strings.ToLower(utterance)
	var bag models.EntityBag

	e.extractType(text, &bag)
	e.extractCountry(text, &bag)
	e.extractRooms(text, &bag)
	e.extractArea(text, &bag)
	e.extractPrice(text, &bag)
	e.extractPreferences(text, &bag)

	return bag
}

func (e *Extractor) extractType(text string, bag *models.EntityBag) {
	for _, tg := range typeGroups {
		if e.lex.MatchesGroup(text, tg.group) {
			v := tg.canonical
			bag.Type = &v
			return
		}
	}
}

func (e *Extractor) extractCountry(text string, bag *models.EntityBag) {
	for _, cp := range e.lex.countries {
		if cp.re.MatchString(text) {
			v := cp.name
			bag.Country = &v
			return
		}
	}
}

func (e *Extractor) extractRooms(text string, bag *models.EntityBag) {
	if m := e.lex.bedroomRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			bag.Bedrooms = &n
		}
	}
	if m := e.lex.bathroomRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			bag.Bathrooms = &n
		}
	}
}

func (e *Extractor) extractArea(text string, bag *models.EntityBag) {
	if m := e.lex.areaRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			bag.Area = &n
		}
	}
}

// extractPrice evaluates the three price patterns in fixed order (max, min,
// range) and stops at the first one that matches. The unit multiplier is
// detected by scanning the whole utterance, not the matched numeral's local
// context — kept as observed even though an unrelated unit word elsewhere in
// the sentence scales the number.
func (e *Extractor) extractPrice(text string, bag *models.EntityBag) {
	mult := 1.0
	if e.lex.thousandRe.MatchString(text) {
		mult = 1_000
	} else if e.lex.millionRe.MatchString(text) {
		mult = 1_000_000
	}

	if m := e.lex.priceMaxRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1], mult); ok {
			bag.MaxPrice = &v
		}
		return
	}
	if m := e.lex.priceMinRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1], mult); ok {
			bag.MinPrice = &v
		}
		return
	}
	if m := e.lex.priceRangeRe.FindStringSubmatch(text); m != nil {
		if lo, ok := parseAmount(m[1], mult); ok {
			bag.MinPrice = &lo
		}
		if hi, ok := parseAmount(m[2], mult); ok {
			bag.MaxPrice = &hi
		}
	}
}

// extractPreferences runs the cheap/expensive and big/small group checks
// sequentially; a later matching group overwrites an earlier one. There is
// deliberately no mutual-exclusion validation.
func (e *Extractor) extractPreferences(text string, bag *models.EntityBag) {
	if e.lex.MatchesGroup(text, groupCheap) {
		v := models.PreferenceCheap
		bag.Preference = &v
	}
	if e.lex.MatchesGroup(text, groupExpensive) {
		v := models.PreferenceExpensive
		bag.Preference = &v
	}
	if e.lex.MatchesGroup(text, groupBig) {
		v := models.SizeBig
		bag.SizePreference = &v
	}
	if e.lex.MatchesGroup(text, groupSmall) {
		v := models.SizeSmall
		bag.SizePreference = &v
	}
}

// parseAmount parses a captured numeral (comma accepted as decimal
// separator), applies the unit multiplier and rounds to the nearest integer.
func parseAmount(raw string, mult float64) (int, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(v * mult)), true
}
