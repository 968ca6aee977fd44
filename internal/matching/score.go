package matching

import (
	"math"
	"sort"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

// ScoredListing is an admitted listing with its distance from the request.
// Lower scores are closer.
type ScoredListing struct {
	Listing domain.Listing `json:"listing"`
	Score   float64        `json:"score"`
}

// BandCenter is the midpoint of [min, max], the single bound when only one is
// set, or nil for an open band.
func BandCenter(min, max *float64) *float64 {
	switch {
	case min != nil && max != nil:
		c := (*min + *max) / 2
		return &c
	case min != nil:
		c := *min
		return &c
	case max != nil:
		c := *max
		return &c
	default:
		return nil
	}
}

// Score sums the relative price and area deviations of l from the band
// centers. A nil center does not contribute.
func Score(l domain.Listing, priceCenter, areaCenter *float64) float64 {
	return deviation(ToNumber(l.Price, 0), priceCenter) + deviation(listingArea(l), areaCenter)
}

func deviation(v float64, center *float64) float64 {
	if center == nil {
		return 0
	}
	return math.Abs(v-*center) / math.Max(1, *center)
}

// Rank scores listings against r and sorts them ascending. Ties keep their
// input order.
func Rank(r domain.Request, listings []domain.Listing) []ScoredListing {
	priceCenter := BandCenter(priceBounds(r))
	areaCenter := BandCenter(r.MinSquareMeters, r.MaxSquareMeters)

	out := make([]ScoredListing, len(listings))
	for i, l := range listings {
		out[i] = ScoredListing{Listing: l, Score: Score(l, priceCenter, areaCenter)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}
