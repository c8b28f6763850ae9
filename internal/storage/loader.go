package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// LoadShopsFromFile reads a normalized shop catalog dump from a JSON file.
func LoadShopsFromFile(path string) ([]domain.ShopRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shops file: %w", err)
	}

	var shops []domain.ShopRecord
	if err := json.Unmarshal(b, &shops); err != nil {
		return nil, fmt.Errorf("unmarshal shops: %w", err)
	}
	return shops, nil
}

// FileCatalog serves a catalog snapshot loaded once from a JSON file.
// The snapshot is read-only after construction, so it is safe to share
// across concurrent matching requests.
type FileCatalog struct {
	shops []domain.ShopRecord
}

// NewFileCatalog loads the catalog file eagerly.
func NewFileCatalog(path string) (*FileCatalog, error) {
	shops, err := LoadShopsFromFile(path)
	if err != nil {
		return nil, err
	}
	return &FileCatalog{shops: shops}, nil
}

// GetShops returns the snapshot, optionally narrowed to one area by exact
// string equality.
func (c *FileCatalog) GetShops(ctx context.Context, areaFilter string) ([]domain.ShopRecord, error) {
	if areaFilter == "" {
		out := make([]domain.ShopRecord, len(c.shops))
		copy(out, c.shops)
		return out, nil
	}
	var out []domain.ShopRecord
	for _, s := range c.shops {
		if s.Area == areaFilter {
			out = append(out, s)
		}
	}
	return out, nil
}

// Len reports the snapshot size.
func (c *FileCatalog) Len() int { return len(c.shops) }
