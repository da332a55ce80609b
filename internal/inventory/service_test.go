package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	items []Item
}

var _ RepositoryPort = (*memoryRepo)(nil)

func (m *memoryRepo) List(_ context.Context) ([]Item, error) {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, sku string) (Item, error) {
	for _, item := range m.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return Item{}, ErrUnknownSKU
}

func (m *memoryRepo) SetStock(_ context.Context, sku string, stock int) error {
	for i := range m.items {
		if m.items[i].SKU == sku {
			m.items[i].Stock = stock
			return nil
		}
	}
	return ErrUnknownSKU
}

type countingBumper struct {
	bumps int
}

func (b *countingBumper) Bump(_ context.Context) error {
	b.bumps++
	return nil
}

func TestListRefreshesStatus(t *testing.T) {
	repo := &memoryRepo{items: []Item{
		{SKU: "PT-130", Name: "130 DI", Category: CategoryPowerTiller, Stock: 42, ReorderLevel: 45},
		{SKU: "TR-165", Name: "165 DI ES", Category: CategoryTractor, Stock: 90, ReorderLevel: 30},
	}}
	svc := NewService(repo, nil)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, StatusLowStock, items[0].Status)
	require.Equal(t, StatusInStock, items[1].Status)
}

func TestAdjustStockAppliesDelta(t *testing.T) {
	repo := &memoryRepo{items: []Item{
		{SKU: "PT-130", Stock: 42, ReorderLevel: 45},
	}}
	bumper := &countingBumper{}
	svc := NewService(repo, bumper)

	item, err := svc.AdjustStock(context.Background(), "PT-130", 10)
	require.NoError(t, err)
	require.Equal(t, 52, item.Stock)
	require.Equal(t, 52, repo.items[0].Stock)
	require.Equal(t, 1, bumper.bumps)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	repo := &memoryRepo{items: []Item{
		{SKU: "PT-130", Stock: 5, ReorderLevel: 45},
	}}
	svc := NewService(repo, nil)

	item, err := svc.AdjustStock(context.Background(), "PT-130", -20)
	require.NoError(t, err)
	require.Zero(t, item.Stock)
	require.Zero(t, repo.items[0].Stock)
}

func TestAdjustStockRecomputesStatus(t *testing.T) {
	repo := &memoryRepo{items: []Item{
		{SKU: "PT-130", Stock: 50, ReorderLevel: 45, Status: StatusInStock},
	}}
	svc := NewService(repo, nil)

	item, err := svc.AdjustStock(context.Background(), "PT-130", -10)
	require.NoError(t, err)
	require.Equal(t, StatusLowStock, item.Status)

	item, err = svc.AdjustStock(context.Background(), "PT-130", 20)
	require.NoError(t, err)
	require.Equal(t, StatusInStock, item.Status)
}

func TestAdjustStockUnknownSKU(t *testing.T) {
	bumper := &countingBumper{}
	svc := NewService(&memoryRepo{}, bumper)

	_, err := svc.AdjustStock(context.Background(), "XX-999", 5)
	require.ErrorIs(t, err, ErrUnknownSKU)
	require.Zero(t, bumper.bumps)
}

func TestStatusForBoundary(t *testing.T) {
	require.Equal(t, StatusLowStock, StatusFor(45, 45))
	require.Equal(t, StatusInStock, StatusFor(46, 45))
	require.Equal(t, StatusLowStock, StatusFor(0, 0))
}
