// Package views derives filtered, sorted and aggregated projections from the
// session's collections. Every function is pure: the source slice is never
// mutated and equal inputs produce equal outputs.
package views

import (
	"strings"

	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/orders"
)

// FilterOrders returns the orders whose dealer, product or id contains the
// query (case-insensitive) and whose status matches the discrete filter.
// Empty query or status imposes no constraint.
func FilterOrders(list []orders.Order, query string, status orders.Status) []orders.Order {
	q := strings.ToLower(query)
	out := make([]orders.Order, 0, len(list))
	for _, o := range list {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Dealer), q) &&
			!strings.Contains(strings.ToLower(o.Product), q) &&
			!strings.Contains(strings.ToLower(o.ID), q) {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out
}

// FilterDealers returns the dealers whose name or city contains the query
// (case-insensitive) and whose region matches the discrete filter.
func FilterDealers(list []dealers.Dealer, query string, region dealers.Region) []dealers.Dealer {
	q := strings.ToLower(query)
	out := make([]dealers.Dealer, 0, len(list))
	for _, d := range list {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.City), q) {
			continue
		}
		if region != "" && d.Region != region {
			continue
		}
		out = append(out, d)
	}
	return out
}
