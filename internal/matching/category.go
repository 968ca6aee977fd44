package matching

import (
	"strings"
)

// Canonical property types.
const (
	PropertyTypeApartment  = "daire"
	PropertyTypeVilla      = "villa"
	PropertyTypeCommercial = "isyeri"
	PropertyTypeLand       = "arsa"
	PropertyTypeBuilding   = "bina"
)

// Canonical listing statuses.
const (
	ListingStatusForSale = "Satılık"
	ListingStatusForRent = "Kiralık"
)

// CategoryRule maps normalized text to a canonical value when it contains
// any of the listed words.
type CategoryRule struct {
	words     []string
	canonical string
}

func (r CategoryRule) matches(text string) bool {
	for _, w := range r.words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// PropertyTypeRules are checked in order; the first hit wins.
var PropertyTypeRules = []CategoryRule{
	{words: []string{"daire", "rezidans", "residence", "apart", "flat", "dubleks", "studyo"}, canonical: PropertyTypeApartment},
	{words: []string{"villa", "mustakil", "yazlik"}, canonical: PropertyTypeVilla},
	{words: []string{"isyeri", "is yeri", "ofis", "buro", "dukkan", "magaza", "depo"}, canonical: PropertyTypeCommercial},
	{words: []string{"arsa", "arazi", "tarla"}, canonical: PropertyTypeLand},
	{words: []string{"bina"}, canonical: PropertyTypeBuilding},
}

// ListingStatusRules are checked in order; the first hit wins.
var ListingStatusRules = []CategoryRule{
	{words: []string{"kira"}, canonical: ListingStatusForRent},
	{words: []string{"sat"}, canonical: ListingStatusForSale},
}

func canonicalize(rules []CategoryRule, text string) (string, bool) {
	for _, r := range rules {
		if r.matches(text) {
			return r.canonical, true
		}
	}
	return "", false
}

// NormalizePropertyType collapses synonyms ("Rezidans", "Ofis", "Tarla") into
// one of the canonical property types. Unmapped values come back normalized.
func NormalizePropertyType(v any) string {
	text := Normalize(v)
	if text == "" {
		return ""
	}
	if c, ok := canonicalize(PropertyTypeRules, text); ok {
		return c
	}
	return text
}

// NormalizeListingStatus returns ListingStatusForSale, ListingStatusForRent,
// or "" when v names neither.
func NormalizeListingStatus(v any) string {
	c, _ := canonicalize(ListingStatusRules, Normalize(v))
	return c
}

// RoomTokens normalizes room layouts into a set. Entries may hold several
// comma-separated layouts; inner whitespace is dropped so "3 + 1" equals "3+1".
func RoomTokens(rooms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(rooms))
	for _, entry := range rooms {
		for _, part := range strings.Split(entry, ",") {
			tok := strings.ReplaceAll(Normalize(part), " ", "")
			if tok != "" {
				set[tok] = struct{}{}
			}
		}
	}
	return set
}

func matchCity(want, got string) bool {
	if want == "" {
		return true
	}
	return EqualsNormalized(got, want)
}

func matchDistrict(want []string, got string) bool {
	if len(want) == 0 {
		return true
	}
	return IncludesNormalized(want, got, false)
}

func matchNeighborhood(want []string, got string) bool {
	if len(want) == 0 {
		return true
	}
	return IncludesNormalized(want, got, true)
}

func matchPropertyType(want, got string) bool {
	w := NormalizePropertyType(want)
	if w == "" {
		return true
	}
	return w == NormalizePropertyType(got)
}

// matchListingStatus only constrains when both sides canonicalize.
func matchListingStatus(want, got string) bool {
	w, g := NormalizeListingStatus(want), NormalizeListingStatus(got)
	if w == "" || g == "" {
		return true
	}
	return w == g
}

func matchRooms(want, got []string) bool {
	wantSet := RoomTokens(want)
	if len(wantSet) == 0 {
		return true
	}
	for tok := range RoomTokens(got) {
		if _, ok := wantSet[tok]; ok {
			return true
		}
	}
	return false
}
