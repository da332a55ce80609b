package views

import (
	"sort"

	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

// StockByCategory sums stock grouped by category.
func StockByCategory(items []inventory.Item) map[inventory.Category]int {
	totals := make(map[inventory.Category]int)
	for _, item := range items {
		totals[item.Category] += item.Stock
	}
	return totals
}

// LowStock returns the items at or below their reorder level.
func LowStock(items []inventory.Item) []inventory.Item {
	out := make([]inventory.Item, 0, len(items))
	for _, item := range items {
		if item.Stock <= item.ReorderLevel {
			out = append(out, item)
		}
	}
	return out
}

// LowStockCount counts the items at or below their reorder level.
func LowStockCount(items []inventory.Item) int {
	return len(LowStock(items))
}

// RecentOrders returns the n most recent orders by date descending.
func RecentOrders(list []orders.Order, n int) []orders.Order {
	out := make([]orders.Order, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
