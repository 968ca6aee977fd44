package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

func scenarioRequest() *domain.Request {
	return &domain.Request{
		City:            "Samsun",
		Districts:       []string{"İlkadım"},
		PropertyType:    "Daire",
		ListingType:     "Satılık",
		MinPrice:        domain.Float(1_000_000),
		MaxPrice:        domain.Float(1_500_000),
		MinSquareMeters: domain.Float(90),
		MaxSquareMeters: domain.Float(120),
		RoomCount:       domain.RoomCount{"3+1"},
	}
}

func scenarioListings() []domain.Listing {
	a := baseListing()
	b := baseListing()
	b.ID = "B"
	b.Price = 2_000_000.0
	c := baseListing()
	c.ID = "C"
	c.IsPublished = domain.Bool(false)
	return []domain.Listing{a, b, c}
}

func TestMatchingPortfoliosForRequest_Scenario(t *testing.T) {
	got := MatchingPortfoliosForRequest(scenarioRequest(), scenarioListings())
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ID)
}

func TestMatchingPortfoliosForRequest_EmptyInputs(t *testing.T) {
	assert.Equal(t, []domain.Listing{}, MatchingPortfoliosForRequest(nil, []domain.Listing{}))
	assert.Equal(t, []domain.Listing{}, MatchingPortfoliosForRequest(scenarioRequest(), nil))
	assert.Equal(t, []domain.Listing{}, MatchingPortfoliosForRequest(scenarioRequest(), []domain.Listing{}))
	assert.Equal(t, []domain.Request{}, MatchingRequestsForPortfolio(nil, []domain.Request{{}}))
	assert.Equal(t, []domain.Request{}, MatchingRequestsForPortfolio(&domain.Listing{}, nil))
}

func TestMatchingPortfoliosForRequest_Tolerance(t *testing.T) {
	listings := scenarioListings()
	listings[1].Price = 1_700_000.0

	assert.Len(t, MatchingPortfoliosForRequest(scenarioRequest(), listings), 1)
	assert.Len(t, MatchingPortfoliosForRequest(scenarioRequest(), listings, WithTolerance(0.2)), 2)
}

func TestMatchingPortfoliosForRequest_IgnoreLocation(t *testing.T) {
	listings := scenarioListings()
	listings[0].City = "Ordu"
	listings[0].District = "Altınordu"

	assert.Empty(t, MatchingPortfoliosForRequest(scenarioRequest(), listings))
	got := MatchingPortfoliosForRequest(scenarioRequest(), listings, WithIgnoreLocation(true))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ID)
}

func TestRankPortfoliosForRequest_KeepsScore(t *testing.T) {
	ranked := RankPortfoliosForRequest(scenarioRequest(), scenarioListings())
	require.Len(t, ranked, 1)
	// price center 1.25M, area center 105
	assert.InDelta(t, 200_000.0/1_250_000+5.0/105, ranked[0].Score, 1e-9)
}

func TestMatchingRequestsForPortfolio(t *testing.T) {
	listing := baseListing()
	listing.IsPublished = domain.Bool(false)

	match := *scenarioRequest()
	match.ID = "r1"
	wrongCity := *scenarioRequest()
	wrongCity.ID = "r2"
	wrongCity.City = "Ankara"
	tooCheap := *scenarioRequest()
	tooCheap.ID = "r3"
	tooCheap.MaxPrice = domain.Float(500_000)
	tooCheap.MinPrice = nil
	open := domain.Request{ID: "r4"}

	got := MatchingRequestsForPortfolio(&listing, []domain.Request{open, wrongCity, match, tooCheap})
	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"r4", "r1"}, ids)
}
