package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

// LoadListingsFromFile reads a JSON array of listings.
func LoadListingsFromFile(path string) ([]domain.Listing, error) {
	var items []domain.Listing
	if err := loadJSON(path, &items); err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}
	return items, nil
}

// LoadRequestsFromFile reads a JSON array of requests.
func LoadRequestsFromFile(path string) ([]domain.Request, error) {
	var items []domain.Request
	if err := loadJSON(path, &items); err != nil {
		return nil, fmt.Errorf("load requests: %w", err)
	}
	return items, nil
}

func loadJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}
