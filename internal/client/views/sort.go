package views

import (
	"sort"
	"strings"

	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

// Sort directions.
const (
	Ascending  = 1
	Descending = -1
)

// SortState tracks the active sort column and direction for one table.
type SortState struct {
	Key string
	Dir int
}

// Toggle applies a header click: the same key flips direction, a new key
// resets to ascending.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		if s.Dir == Descending {
			s.Dir = Ascending
		} else {
			s.Dir = Descending
		}
		return
	}
	s.Key = key
	s.Dir = Ascending
}

// SortOrders stably sorts a copy of list by the named key. Numeric keys
// compare numerically, the date key lexically (valid for ISO dates),
// everything else as case-sensitive strings. Unknown or empty keys return
// the copy unchanged.
func SortOrders(list []orders.Order, key string, dir int) []orders.Order {
	out := make([]orders.Order, len(list))
	copy(out, list)

	var cmp func(a, b orders.Order) int
	switch key {
	case "id":
		cmp = func(a, b orders.Order) int { return strings.Compare(a.ID, b.ID) }
	case "date":
		cmp = func(a, b orders.Order) int { return strings.Compare(a.Date, b.Date) }
	case "dealer":
		cmp = func(a, b orders.Order) int { return strings.Compare(a.Dealer, b.Dealer) }
	case "product":
		cmp = func(a, b orders.Order) int { return strings.Compare(a.Product, b.Product) }
	case "qty":
		cmp = func(a, b orders.Order) int { return compareInt(a.Qty, b.Qty) }
	case "amount":
		cmp = func(a, b orders.Order) int { return compareInt64(a.Amount, b.Amount) }
	case "status":
		cmp = func(a, b orders.Order) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return dir*cmp(out[i], out[j]) < 0
	})
	return out
}

// SortInventory stably sorts a copy of list by the named key.
func SortInventory(list []inventory.Item, key string, dir int) []inventory.Item {
	out := make([]inventory.Item, len(list))
	copy(out, list)

	var cmp func(a, b inventory.Item) int
	switch key {
	case "sku":
		cmp = func(a, b inventory.Item) int { return strings.Compare(a.SKU, b.SKU) }
	case "name":
		cmp = func(a, b inventory.Item) int { return strings.Compare(a.Name, b.Name) }
	case "category":
		cmp = func(a, b inventory.Item) int { return strings.Compare(string(a.Category), string(b.Category)) }
	case "stock":
		cmp = func(a, b inventory.Item) int { return compareInt(a.Stock, b.Stock) }
	case "reorderLevel":
		cmp = func(a, b inventory.Item) int { return compareInt(a.ReorderLevel, b.ReorderLevel) }
	case "status":
		cmp = func(a, b inventory.Item) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return dir*cmp(out[i], out[j]) < 0
	})
	return out
}

// SortDealers stably sorts a copy of list by the named key.
func SortDealers(list []dealers.Dealer, key string, dir int) []dealers.Dealer {
	out := make([]dealers.Dealer, len(list))
	copy(out, list)

	var cmp func(a, b dealers.Dealer) int
	switch key {
	case "code":
		cmp = func(a, b dealers.Dealer) int { return strings.Compare(a.Code, b.Code) }
	case "name":
		cmp = func(a, b dealers.Dealer) int { return strings.Compare(a.Name, b.Name) }
	case "region":
		cmp = func(a, b dealers.Dealer) int { return strings.Compare(string(a.Region), string(b.Region)) }
	case "city":
		cmp = func(a, b dealers.Dealer) int { return strings.Compare(a.City, b.City) }
	case "contact":
		cmp = func(a, b dealers.Dealer) int { return strings.Compare(a.Contact, b.Contact) }
	case "ytdSales":
		cmp = func(a, b dealers.Dealer) int { return compareInt64(a.YTDSales, b.YTDSales) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return dir*cmp(out[i], out[j]) < 0
	})
	return out
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
