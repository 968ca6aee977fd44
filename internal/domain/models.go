package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Request is a buyer/renter query. Nil bounds are unconstrained on that side.
type Request struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id,omitempty"`
	Title         string    `json:"title,omitempty"`
	City          string    `json:"city"`
	Districts     []string  `json:"districts,omitempty"`
	Neighborhoods []string  `json:"neighborhoods,omitempty"`
	PropertyType  string    `json:"property_type,omitempty"`
	ListingType   string    `json:"listing_type,omitempty"`
	RoomCount     RoomCount `json:"room_count,omitempty"`

	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	// Budget is the legacy single-value price; used as both bounds
	// when neither MinPrice nor MaxPrice is set.
	Budget *float64 `json:"budget,omitempty"`

	MinSquareMeters *float64 `json:"min_square_meters,omitempty"`
	MaxSquareMeters *float64 `json:"max_square_meters,omitempty"`
	MinBuildingAge  *float64 `json:"min_building_age,omitempty"`
	MaxBuildingAge  *float64 `json:"max_building_age,omitempty"`
	MinFloor        *float64 `json:"min_floor,omitempty"`
	MaxFloor        *float64 `json:"max_floor,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Listing is a seller's property record ("portfolio").
//
// Numeric attributes come from legacy documents where they are stored either
// as numbers or as free text ("1.250.000", "3. Kat", "Zemin"), so they are
// kept as raw scalars and coerced by the matching package.
type Listing struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id,omitempty"`
	Title        string `json:"title,omitempty"`
	City         string `json:"city,omitempty"`
	District     string `json:"district,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PropertyType string `json:"property_type,omitempty"`

	ListingStatus string `json:"listing_status,omitempty"`
	ListingType   string `json:"listing_type,omitempty"`

	RoomCount RoomCount `json:"room_count,omitempty"`
	Rooms     RoomCount `json:"rooms,omitempty"`

	Price             any `json:"price,omitempty"`
	SquareMeters      any `json:"square_meters,omitempty"`
	NetSquareMeters   any `json:"net_square_meters,omitempty"`
	GrossSquareMeters any `json:"gross_square_meters,omitempty"`
	Area              any `json:"area,omitempty"`
	BuildingAge       any `json:"building_age,omitempty"`
	Floor             any `json:"floor,omitempty"`
	FloorNumber       any `json:"floor_number,omitempty"`

	// IsPublished nil means the flag was never set; only an explicit false
	// hides the listing.
	IsPublished *bool `json:"is_published,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Published reports whether the listing may be offered as a match.
func (l Listing) Published() bool {
	return l.IsPublished == nil || *l.IsPublished
}

// RoomCount holds one or more room layouts such as "3+1".
// In JSON it is either a single string or an array of strings.
type RoomCount []string

func (rc *RoomCount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*rc = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one == "" {
			*rc = nil
		} else {
			*rc = RoomCount{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("room count: want string or array of strings: %w", err)
	}
	*rc = many
	return nil
}

// Float returns a pointer to v, for building optional bounds.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
