package matching

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ToNumber extracts a number from v. Strings use Turkish formatting: "." is a
// thousands separator and "," the decimal mark, so "1.250.000" is 1250000 and
// "2,5" is 2.5. The first number in the text wins ("3. Kat" is 3).
// Anything unparseable returns fallback.
func ToNumber(v any, fallback float64) float64 {
	if f, ok := finiteNumber(v); ok {
		return f
	}
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil && !math.IsInf(f, 0) {
			return f
		}
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	m := numberPattern.FindString(s)
	if m == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// finiteNumber unwraps Go numeric kinds. NaN and ±Inf are rejected.
func finiteNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// TopFloor is the floor value used for roof and terrace units.
const TopFloor = 99

type floorLabel struct {
	words []string
	floor float64
}

// floorLabels is evaluated top to bottom against the normalized text.
var floorLabels = []floorLabel{
	{words: []string{"bodrum", "bahce kat", "bahce", "kot"}, floor: -1},
	{words: []string{"yuksek giris", "zemin", "giris"}, floor: 0},
	{words: []string{"cati", "teras", "en ust"}, floor: TopFloor},
}

// ParseFloor maps floor labels ("Bodrum", "Zemin", "Çatı Katı", "3. Kat") to
// a number. It returns NaN when v carries no floor information, so a missing
// floor is never mistaken for the ground floor.
func ParseFloor(v any) float64 {
	if f, ok := finiteNumber(v); ok {
		return f
	}
	text := Normalize(v)
	if text == "" {
		return math.NaN()
	}
	for _, l := range floorLabels {
		for _, w := range l.words {
			if strings.Contains(text, w) {
				return l.floor
			}
		}
	}
	return ToNumber(v, math.NaN())
}

// ParseBuildingAge maps "Sıfır" (new build) to 0 and otherwise extracts a
// number. Unparseable input returns NaN.
func ParseBuildingAge(v any) float64 {
	if f, ok := finiteNumber(v); ok {
		return f
	}
	text := Normalize(v)
	if text == "" {
		return math.NaN()
	}
	if strings.Contains(text, "sifir") {
		return 0
	}
	return ToNumber(v, math.NaN())
}
