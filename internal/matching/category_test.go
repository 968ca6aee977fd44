package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePropertyType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Daire", PropertyTypeApartment},
		{"Residence", PropertyTypeApartment},
		{"Rezidans", PropertyTypeApartment},
		{"Apart", PropertyTypeApartment},
		{"Villa", PropertyTypeVilla},
		{"Müstakil Ev", PropertyTypeVilla},
		{"Ofis", PropertyTypeCommercial},
		{"Dükkan", PropertyTypeCommercial},
		{"Mağaza", PropertyTypeCommercial},
		{"İş Yeri", PropertyTypeCommercial},
		{"Arazi", PropertyTypeLand},
		{"Tarla", PropertyTypeLand},
		{"Arsa", PropertyTypeLand},
		{"Komple Bina", PropertyTypeBuilding},
		{"Çiftlik Evi", "ciftlik evi"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePropertyType(tt.in), "NormalizePropertyType(%q)", tt.in)
	}
}

func TestNormalizeListingStatus(t *testing.T) {
	assert.Equal(t, ListingStatusForSale, NormalizeListingStatus("Satılık"))
	assert.Equal(t, ListingStatusForSale, NormalizeListingStatus("satilik"))
	assert.Equal(t, ListingStatusForRent, NormalizeListingStatus("KİRALIK"))
	assert.Equal(t, ListingStatusForRent, NormalizeListingStatus("Kiralık Daire"))
	assert.Equal(t, "", NormalizeListingStatus("Devren"))
	assert.Equal(t, "", NormalizeListingStatus(nil))
}

func TestMatchPropertyType(t *testing.T) {
	assert.True(t, matchPropertyType("", "Villa"))
	assert.True(t, matchPropertyType("Residence", "Daire"))
	assert.True(t, matchPropertyType("Ofis", "Dükkan"))
	assert.False(t, matchPropertyType("Daire", "Villa"))
	assert.False(t, matchPropertyType("Daire", ""))
}

func TestMatchListingStatus_SkipsUnknown(t *testing.T) {
	assert.True(t, matchListingStatus("Satılık", "Satılık"))
	assert.False(t, matchListingStatus("Satılık", "Kiralık"))
	assert.True(t, matchListingStatus("Satılık", "Devren"))
	assert.True(t, matchListingStatus("", "Kiralık"))
}

func TestMatchRooms(t *testing.T) {
	want := []string{"3+1", "4+1"}
	assert.True(t, matchRooms(want, []string{"4+1"}))
	assert.False(t, matchRooms(want, []string{"2+1"}))
	assert.False(t, matchRooms(want, nil))
	assert.True(t, matchRooms(want, []string{"3 + 1"}))
	assert.True(t, matchRooms([]string{"2+1, 3+1"}, []string{"3+1"}))
	assert.True(t, matchRooms(nil, []string{"2+1"}))
	assert.True(t, matchRooms([]string{"Stüdyo"}, []string{"stüdyo"}))
}

func TestRoomTokens(t *testing.T) {
	got := RoomTokens([]string{"3+1", " 3 + 1 ", "", "4+1,5+1"})
	assert.Equal(t, map[string]struct{}{"3+1": {}, "4+1": {}, "5+1": {}}, got)
}
