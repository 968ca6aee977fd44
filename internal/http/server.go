package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
	logpkg "github.com/denisok6893-rgb/portfolio-matching/internal/logger"
	"github.com/denisok6893-rgb/portfolio-matching/internal/matching"
	"github.com/denisok6893-rgb/portfolio-matching/internal/metrics"
	"github.com/denisok6893-rgb/portfolio-matching/internal/storage"
)

type Server struct {
	Engine *matching.Engine
	Store  Store
	Logger *zap.Logger
}

func NewServer(engine *matching.Engine, store Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Engine: engine, Store: store, Logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.Logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger(s.Logger))
	r.Use(metrics.Middleware())

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/listings", func(r chi.Router) {
		r.Get("/", s.handleListingsList)
		r.Post("/", s.handleListingCreate)
		r.Get("/{id}", s.handleListingGet)
		r.Delete("/{id}", s.handleListingDelete)
		r.Get("/{id}/matches", s.handleListingMatches)
	})
	r.Route("/requests", func(r chi.Router) {
		r.Get("/", s.handleRequestsList)
		r.Post("/", s.handleRequestCreate)
		r.Get("/{id}", s.handleRequestGet)
		r.Delete("/{id}", s.handleRequestDelete)
		r.Get("/{id}/matches", s.handleRequestMatches)
	})
	r.Post("/match/portfolios", s.handleMatchPortfolios)
	r.Post("/match/requests", s.handleMatchRequests)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type listResponse[T any] struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
	Total  int `json:"total"`
	Items  []T `json:"items"`
}

// ---- listings ----

func (s *Server) handleListingsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	items, total, err := s.Store.ListListings(r.Context(), limit, offset, r.URL.Query().Get("city"))
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Listing{}
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Listing]{Limit: limit, Offset: offset, Total: total, Items: items})
}

func (s *Server) handleListingCreate(w http.ResponseWriter, r *http.Request) {
	var l domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if l.City == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "city is required")
		return
	}
	created, err := s.Store.CreateListing(r.Context(), l)
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListingGet(w http.ResponseWriter, r *http.Request) {
	l, err := s.Store.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleListingDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteListing(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListingMatches returns the stored requests this listing satisfies.
func (s *Server) handleListingMatches(w http.ResponseWriter, r *http.Request) {
	l, err := s.Store.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	opts, err := queryOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.matchRequests(w, r, l, opts)
}

// ---- requests ----

func (s *Server) handleRequestsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	items, total, err := s.Store.ListRequests(r.Context(), limit, offset, r.URL.Query().Get("city"))
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Request{}
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Request]{Limit: limit, Offset: offset, Total: total, Items: items})
}

func (s *Server) handleRequestCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if req.City == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "city is required")
		return
	}
	created, err := s.Store.CreateRequest(r.Context(), req)
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleRequestGet(w http.ResponseWriter, r *http.Request) {
	req, err := s.Store.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleRequestDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteRequest(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleRequestMatches returns the stored listings matching this request, closest first.
func (s *Server) handleRequestMatches(w http.ResponseWriter, r *http.Request) {
	req, err := s.Store.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	opts, err := queryOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.matchPortfolios(w, r, req, opts)
}

// ---- ad-hoc matching ----

// optionsBody carries per-call overrides; absent keys keep the engine defaults.
type optionsBody struct {
	Tolerance      *float64 `json:"tolerance"`
	IgnoreLocation *bool    `json:"ignore_location"`
}

func (b *optionsBody) options() []matching.Option {
	if b == nil {
		return nil
	}
	var opts []matching.Option
	if b.Tolerance != nil {
		opts = append(opts, matching.WithTolerance(*b.Tolerance))
	}
	if b.IgnoreLocation != nil {
		opts = append(opts, matching.WithIgnoreLocation(*b.IgnoreLocation))
	}
	return opts
}

type MatchPortfoliosRequest struct {
	Request *domain.Request `json:"request"`
	Options *optionsBody    `json:"options"`
}

type MatchRequestsRequest struct {
	Listing *domain.Listing `json:"listing"`
	Options *optionsBody    `json:"options"`
}

func (s *Server) handleMatchPortfolios(w http.ResponseWriter, r *http.Request) {
	var body MatchPortfoliosRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if body.Request == nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "request is required")
		return
	}
	s.matchPortfolios(w, r, *body.Request, body.Options.options())
}

func (s *Server) handleMatchRequests(w http.ResponseWriter, r *http.Request) {
	var body MatchRequestsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if body.Listing == nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "listing is required")
		return
	}
	s.matchRequests(w, r, *body.Listing, body.Options.options())
}

func (s *Server) matchPortfolios(w http.ResponseWriter, r *http.Request, req domain.Request, opts []matching.Option) {
	listings, err := s.Store.AllListings(r.Context())
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	results := s.Engine.RankPortfolios(&req, listings, opts...)
	metrics.ObserveMatch(metrics.DirectionPortfolios, len(listings), len(results))
	logpkg.FromContext(r.Context()).Debug("matched portfolios",
		zap.String("request_id", req.ID),
		zap.Int("candidates", len(listings)),
		zap.Int("matches", len(results)),
	)
	writeJSON(w, http.StatusOK, listResponse[matching.ScoredListing]{Total: len(results), Items: results})
}

func (s *Server) matchRequests(w http.ResponseWriter, r *http.Request, l domain.Listing, opts []matching.Option) {
	requests, err := s.Store.AllRequests(r.Context())
	if err != nil {
		s.handleStoreError(w, r, err)
		return
	}
	results := s.Engine.RequestsForPortfolio(&l, requests, opts...)
	metrics.ObserveMatch(metrics.DirectionRequests, len(requests), len(results))
	logpkg.FromContext(r.Context()).Debug("matched requests",
		zap.String("listing_id", l.ID),
		zap.Int("candidates", len(requests)),
		zap.Int("matches", len(results)),
	)
	writeJSON(w, http.StatusOK, listResponse[domain.Request]{Total: len(results), Items: results})
}

// queryOptions reads tolerance and ignore_location overrides from the query string.
func queryOptions(r *http.Request) ([]matching.Option, error) {
	q := r.URL.Query()
	var opts []matching.Option
	if v := q.Get("tolerance"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t < 0 || t > 1 {
			return nil, errors.New("tolerance must be a number between 0 and 1")
		}
		opts = append(opts, matching.WithTolerance(t))
	}
	if v := q.Get("ignore_location"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("ignore_location must be a boolean")
		}
		opts = append(opts, matching.WithIgnoreLocation(b))
	}
	return opts, nil
}

func (s *Server) handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "not found")
		return
	}
	logpkg.FromContext(r.Context()).Error("store error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}
