package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// turkishASCII must run before lower-casing: strings.ToLower("I") is "i",
// but the dotted capital İ would otherwise lower to "i̇".
var turkishASCII = strings.NewReplacer(
	"İ", "I", "ı", "i",
	"Ş", "S", "ş", "s",
	"Ğ", "G", "ğ", "g",
	"Ç", "C", "ç", "c",
	"Ö", "O", "ö", "o",
	"Ü", "U", "ü", "u",
)

var separators = strings.NewReplacer(".", " ", "-", " ", "_", " ", ",", " ")

// neighborhoodSuffixes are administrative tokens dropped from neighborhood names.
var neighborhoodSuffixes = map[string]struct{}{
	"mahallesi": {},
	"mah":       {},
	"mh":        {},
}

// Normalize canonicalizes free text for comparison: Turkish letters folded to
// ASCII, lower-cased, separators turned into spaces, whitespace collapsed.
// Nil and empty values give "".
func Normalize(v any) string {
	s := scalarText(v)
	if s == "" {
		return ""
	}
	s = turkishASCII.Replace(s)
	s = strings.ToLower(s)
	s = separators.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeNeighborhood is Normalize plus removal of the "mahallesi",
// "mah" and "mh" suffix words.
func NormalizeNeighborhood(v any) string {
	words := strings.Fields(Normalize(v))
	kept := words[:0]
	for _, w := range words {
		if _, ok := neighborhoodSuffixes[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// EqualsNormalized compares two values after Normalize.
func EqualsNormalized(a, b any) bool {
	return Normalize(a) == Normalize(b)
}

// IncludesNormalized reports whether v matches any member of list. With
// neighborhood set, both sides go through NormalizeNeighborhood.
func IncludesNormalized(list []string, v any, neighborhood bool) bool {
	norm := Normalize
	if neighborhood {
		norm = NormalizeNeighborhood
	}
	target := norm(v)
	for _, item := range list {
		if norm(item) == target {
			return true
		}
	}
	return false
}

// scalarText renders a raw field value as text. Unknown kinds give "".
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return scalarText(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
		return fmt.Sprint(t)
	default:
		return ""
	}
}
