package matching

import (
	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

// MatchingPortfoliosForRequest returns the listings that satisfy req, closest
// first. A nil request or no listings yields an empty slice.
func MatchingPortfoliosForRequest(req *domain.Request, listings []domain.Listing, opts ...Option) []domain.Listing {
	ranked := RankPortfoliosForRequest(req, listings, opts...)
	out := make([]domain.Listing, len(ranked))
	for i, s := range ranked {
		out[i] = s.Listing
	}
	return out
}

// RankPortfoliosForRequest is MatchingPortfoliosForRequest with the scores kept.
func RankPortfoliosForRequest(req *domain.Request, listings []domain.Listing, opts ...Option) []ScoredListing {
	if req == nil || len(listings) == 0 {
		return []ScoredListing{}
	}
	o := buildOptions(DefaultOptions(), opts)
	return Rank(*req, FilterListings(*req, listings, o))
}

// MatchingRequestsForPortfolio returns the requests that listing satisfies,
// in input order. Requests are not ranked and publication is not checked.
func MatchingRequestsForPortfolio(listing *domain.Listing, requests []domain.Request, opts ...Option) []domain.Request {
	if listing == nil || len(requests) == 0 {
		return []domain.Request{}
	}
	o := buildOptions(DefaultOptions(), opts)
	return FilterRequests(*listing, requests, o)
}
