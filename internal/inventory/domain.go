// Package inventory manages stocked items and signed stock adjustments.
package inventory

import "errors"

// Category enumerates the product families carried in stock.
type Category string

const (
	CategoryPowerTiller Category = "Power Tiller"
	CategoryTractor     Category = "Tractor"
	CategoryImplement   Category = "Implement"
)

// Status is derived from stock and reorder level, never stored.
type Status string

const (
	StatusInStock  Status = "in-stock"
	StatusLowStock Status = "low-stock"
)

// StatusFor derives the item status. Every code path that mutates stock must
// go through this before the item is considered consistent.
func StatusFor(stock, reorderLevel int) Status {
	if stock <= reorderLevel {
		return StatusLowStock
	}
	return StatusInStock
}

// Item is a stocked SKU. Status is recomputed from Stock and ReorderLevel on
// every read and mutation.
type Item struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Stock        int      `json:"stock"`
	ReorderLevel int      `json:"reorderLevel"`
	Status       Status   `json:"status"`
}

// Refresh recomputes the derived status in place.
func (i *Item) Refresh() {
	i.Status = StatusFor(i.Stock, i.ReorderLevel)
}

// ErrUnknownSKU indicates an adjustment against a SKU that does not exist.
var ErrUnknownSKU = errors.New("inventory: SKU not found")
