package inventory

import (
	"context"
	"fmt"
)

// RepositoryPort abstracts repository usage for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, sku string) (Item, error)
	SetStock(ctx context.Context, sku string, stock int) error
}

// Bumper invalidates downstream caches after a mutation.
type Bumper interface {
	Bump(ctx context.Context) error
}

// Service coordinates inventory operations.
type Service struct {
	repo  RepositoryPort
	cache Bumper
}

// NewService builds a Service.
func NewService(repo RepositoryPort, cache Bumper) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns all items with their derived status populated.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Refresh()
	}
	return items, nil
}

// AdjustStock applies a signed delta to the item's stock, clamped at zero.
// The clamp matches the client's offline fallback so both paths agree.
func (s *Service) AdjustStock(ctx context.Context, sku string, delta int) (Item, error) {
	item, err := s.repo.Get(ctx, sku)
	if err != nil {
		return Item{}, err
	}
	newStock := item.Stock + delta
	if newStock < 0 {
		newStock = 0
	}
	if err := s.repo.SetStock(ctx, sku, newStock); err != nil {
		return Item{}, fmt.Errorf("inventory: set stock %s: %w", sku, err)
	}
	item.Stock = newStock
	item.Refresh()
	if s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			return item, err
		}
	}
	return item, nil
}
