package httpapi

import (
	"context"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

// Store is the persistence the API needs. storage.SQLiteStore implements it.
type Store interface {
	Ping(ctx context.Context) error

	CreateListing(ctx context.Context, l domain.Listing) (domain.Listing, error)
	GetListing(ctx context.Context, id string) (domain.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	ListListings(ctx context.Context, limit, offset int, city string) ([]domain.Listing, int, error)
	AllListings(ctx context.Context) ([]domain.Listing, error)

	CreateRequest(ctx context.Context, r domain.Request) (domain.Request, error)
	GetRequest(ctx context.Context, id string) (domain.Request, error)
	DeleteRequest(ctx context.Context, id string) error
	ListRequests(ctx context.Context, limit, offset int, city string) ([]domain.Request, int, error)
	AllRequests(ctx context.Context) ([]domain.Request, error)
}
