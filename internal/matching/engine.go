package matching

import (
	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

// Engine runs the facade with configured default options.
// It holds no state beyond those defaults and is safe for concurrent use.
type Engine struct {
	defaults Options
}

func NewEngine(defaults Options) *Engine {
	return &Engine{defaults: defaults}
}

// Defaults returns the options applied before per-call overrides.
func (e *Engine) Defaults() Options {
	return e.defaults
}

// RankPortfolios ranks listings for req; opts override the engine defaults.
func (e *Engine) RankPortfolios(req *domain.Request, listings []domain.Listing, opts ...Option) []ScoredListing {
	return RankPortfoliosForRequest(req, listings, e.with(opts)...)
}

// PortfoliosForRequest is the engine form of MatchingPortfoliosForRequest.
func (e *Engine) PortfoliosForRequest(req *domain.Request, listings []domain.Listing, opts ...Option) []domain.Listing {
	return MatchingPortfoliosForRequest(req, listings, e.with(opts)...)
}

// RequestsForPortfolio is the engine form of MatchingRequestsForPortfolio.
func (e *Engine) RequestsForPortfolio(listing *domain.Listing, requests []domain.Request, opts ...Option) []domain.Request {
	return MatchingRequestsForPortfolio(listing, requests, e.with(opts)...)
}

func (e *Engine) with(opts []Option) []Option {
	return append([]Option{WithOptions(e.defaults)}, opts...)
}
