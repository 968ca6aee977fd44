package matching

import (
	"strings"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

// ListingField reads one raw attribute of a listing.
type ListingField struct {
	Name string
	Get  func(domain.Listing) any
}

// Ordered accessors for attributes stored under several legacy names.
// The first non-empty value wins.
var (
	ListingAreaFields = []ListingField{
		{"square_meters", func(l domain.Listing) any { return l.SquareMeters }},
		{"net_square_meters", func(l domain.Listing) any { return l.NetSquareMeters }},
		{"gross_square_meters", func(l domain.Listing) any { return l.GrossSquareMeters }},
		{"area", func(l domain.Listing) any { return l.Area }},
	}
	ListingFloorFields = []ListingField{
		{"floor", func(l domain.Listing) any { return l.Floor }},
		{"floor_number", func(l domain.Listing) any { return l.FloorNumber }},
	}
	ListingStatusFields = []ListingField{
		{"listing_status", func(l domain.Listing) any { return l.ListingStatus }},
		{"listing_type", func(l domain.Listing) any { return l.ListingType }},
	}
	ListingRoomFields = []ListingField{
		{"room_count", func(l domain.Listing) any { return []string(l.RoomCount) }},
		{"rooms", func(l domain.Listing) any { return []string(l.Rooms) }},
	}
)

// FirstNonEmpty returns the first field value of l that is not nil, blank
// text or an empty list.
func FirstNonEmpty(l domain.Listing, fields []ListingField) any {
	for _, f := range fields {
		v := f.Get(l)
		if !isEmpty(v) {
			return v
		}
	}
	return nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

func listingArea(l domain.Listing) float64 {
	return ToNumber(FirstNonEmpty(l, ListingAreaFields), 0)
}

func listingFloor(l domain.Listing) float64 {
	return ParseFloor(FirstNonEmpty(l, ListingFloorFields))
}

func listingStatus(l domain.Listing) string {
	s, _ := FirstNonEmpty(l, ListingStatusFields).(string)
	return s
}

func listingRooms(l domain.Listing) []string {
	rooms, _ := FirstNonEmpty(l, ListingRoomFields).([]string)
	return rooms
}

// priceBounds resolves the requested price band, falling back to the legacy
// single budget for both sides.
func priceBounds(r domain.Request) (min, max *float64) {
	if r.MinPrice == nil && r.MaxPrice == nil && r.Budget != nil {
		return r.Budget, r.Budget
	}
	return r.MinPrice, r.MaxPrice
}

// Gate is one admission test of the pipeline.
type Gate struct {
	Name  string
	Admit func(r domain.Request, l domain.Listing, o Options) bool
}

// Gates run in this order and stop at the first rejection.
var Gates = []Gate{
	{"published", func(_ domain.Request, l domain.Listing, _ Options) bool {
		return l.Published()
	}},
	{"location", func(r domain.Request, l domain.Listing, o Options) bool {
		if o.IgnoreLocation {
			return true
		}
		return matchCity(r.City, l.City) &&
			matchDistrict(r.Districts, l.District) &&
			matchNeighborhood(r.Neighborhoods, l.Neighborhood)
	}},
	{"property_type", func(r domain.Request, l domain.Listing, _ Options) bool {
		return matchPropertyType(r.PropertyType, l.PropertyType)
	}},
	{"listing_type", func(r domain.Request, l domain.Listing, _ Options) bool {
		return matchListingStatus(r.ListingType, listingStatus(l))
	}},
	{"rooms", func(r domain.Request, l domain.Listing, _ Options) bool {
		return matchRooms(r.RoomCount, listingRooms(l))
	}},
	{"price", func(r domain.Request, l domain.Listing, o Options) bool {
		min, max := priceBounds(r)
		return WithinTolerance(ToNumber(l.Price, 0), min, max, o.Tolerance)
	}},
	{"area", func(r domain.Request, l domain.Listing, o Options) bool {
		return WithinTolerance(listingArea(l), r.MinSquareMeters, r.MaxSquareMeters, o.Tolerance)
	}},
	{"building_age", func(r domain.Request, l domain.Listing, o Options) bool {
		if !hasBound(r.MinBuildingAge, r.MaxBuildingAge) {
			return true
		}
		return WithinTolerance(ParseBuildingAge(l.BuildingAge), r.MinBuildingAge, r.MaxBuildingAge, o.Tolerance)
	}},
	{"floor", func(r domain.Request, l domain.Listing, o Options) bool {
		if !hasBound(r.MinFloor, r.MaxFloor) {
			return true
		}
		return WithinTolerance(listingFloor(l), r.MinFloor, r.MaxFloor, o.Tolerance)
	}},
}

// Admits runs every gate. The published gate is skipped when checkPublished
// is false, which is how requests are matched against a fixed listing.
func Admits(r domain.Request, l domain.Listing, o Options, checkPublished bool) bool {
	_, ok := rejectedBy(r, l, o, checkPublished)
	return ok
}

// rejectedBy returns the name of the first failing gate.
func rejectedBy(r domain.Request, l domain.Listing, o Options, checkPublished bool) (string, bool) {
	for _, g := range Gates {
		if g.Name == "published" && !checkPublished {
			continue
		}
		if !g.Admit(r, l, o) {
			return g.Name, false
		}
	}
	return "", true
}

// FilterListings keeps the listings that satisfy r, in input order.
func FilterListings(r domain.Request, listings []domain.Listing, o Options) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if Admits(r, l, o, true) {
			out = append(out, l)
		}
	}
	return out
}

// FilterRequests keeps the requests that l satisfies, in input order.
// Publication is not checked: the listing is the fixed side.
func FilterRequests(l domain.Listing, requests []domain.Request, o Options) []domain.Request {
	out := make([]domain.Request, 0, len(requests))
	for _, r := range requests {
		if Admits(r, l, o, false) {
			out = append(out, r)
		}
	}
	return out
}

// Explain returns the name of the gate that rejects l for r, or "" when l is
// admitted.
func Explain(r domain.Request, l domain.Listing, o Options) string {
	name, _ := rejectedBy(r, l, o, true)
	return name
}
