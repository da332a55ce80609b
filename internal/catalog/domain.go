// Package catalog holds the product reference data used to price orders.
package catalog

// Product is reference data: the order form multiplies UnitPrice by quantity.
// Not mutated anywhere in this system.
type Product struct {
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	UnitPrice int64  `json:"unitPrice"`
}
