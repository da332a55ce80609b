package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

func sampleOrders() []orders.Order {
	return []orders.Order{
		{ID: "ORD-2024-1842", Date: "2024-02-12", Dealer: "Agri Power Hub", Product: "165 DI ES", Qty: 5, Amount: 1875000, Status: orders.StatusDispatched},
		{ID: "ORD-2024-1841", Date: "2024-02-11", Dealer: "Green Valley Tractors", Product: "135 DI", Qty: 8, Amount: 1680000, Status: orders.StatusDelivered},
		{ID: "ORD-2024-1840", Date: "2024-02-10", Dealer: "Kisan Seva", Product: "130 DI", Qty: 12, Amount: 2340000, Status: orders.StatusPending},
		{ID: "ORD-2024-1839", Date: "2024-02-09", Dealer: "VST Motors Coimbatore", Product: "95 DI Ignito", Qty: 15, Amount: 1725000, Status: orders.StatusDispatched},
		{ID: "ORD-2024-1838", Date: "2024-02-08", Dealer: "Farm Tech India", Product: "Shakti 4WD", Qty: 3, Amount: 2100000, Status: orders.StatusDelivered},
		{ID: "ORD-2024-1837", Date: "2024-02-07", Dealer: "Rural Agri Mart", Product: "165 DI ES", Qty: 4, Amount: 1500000, Status: orders.StatusPending},
	}
}

func TestFilterOrdersByQuery(t *testing.T) {
	got := FilterOrders(sampleOrders(), "agri", "")
	require.Len(t, got, 2)
	require.Equal(t, "ORD-2024-1842", got[0].ID)
	require.Equal(t, "ORD-2024-1837", got[1].ID)
}

func TestFilterOrdersByStatus(t *testing.T) {
	got := FilterOrders(sampleOrders(), "", orders.StatusPending)
	require.Len(t, got, 2)
	for _, o := range got {
		require.Equal(t, orders.StatusPending, o.Status)
	}
}

func TestFilterOrdersCombined(t *testing.T) {
	got := FilterOrders(sampleOrders(), "165", orders.StatusPending)
	require.Len(t, got, 1)
	require.Equal(t, "ORD-2024-1837", got[0].ID)
}

func TestFilterOrdersEmptyMatchesAll(t *testing.T) {
	list := sampleOrders()
	require.Equal(t, list, FilterOrders(list, "", ""))
}

func TestFilterIsIdempotent(t *testing.T) {
	once := FilterOrders(sampleOrders(), "di", orders.StatusDispatched)
	twice := FilterOrders(once, "di", orders.StatusDispatched)
	require.Equal(t, once, twice)
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	list := sampleOrders()
	FilterOrders(list, "agri", orders.StatusPending)
	require.Equal(t, sampleOrders(), list)
}

func TestFilterDealers(t *testing.T) {
	list := []dealers.Dealer{
		{Code: "DLR-001", Name: "Agri Power Hub", Region: dealers.RegionSouth, City: "Coimbatore"},
		{Code: "DLR-002", Name: "Green Valley Tractors", Region: dealers.RegionNorth, City: "Ludhiana"},
		{Code: "DLR-004", Name: "VST Motors Coimbatore", Region: dealers.RegionSouth, City: "Coimbatore"},
	}

	got := FilterDealers(list, "coimbatore", "")
	require.Len(t, got, 2)

	got = FilterDealers(list, "", dealers.RegionNorth)
	require.Len(t, got, 1)
	require.Equal(t, "DLR-002", got[0].Code)

	got = FilterDealers(list, "vst", dealers.RegionSouth)
	require.Len(t, got, 1)
	require.Equal(t, "DLR-004", got[0].Code)
}

func TestSortOrdersNumeric(t *testing.T) {
	got := SortOrders(sampleOrders(), "qty", Ascending)
	require.Equal(t, 3, got[0].Qty)
	require.Equal(t, 15, got[len(got)-1].Qty)

	got = SortOrders(sampleOrders(), "amount", Descending)
	require.Equal(t, int64(2340000), got[0].Amount)
}

func TestSortOrdersDateLexical(t *testing.T) {
	got := SortOrders(sampleOrders(), "date", Descending)
	require.Equal(t, "2024-02-12", got[0].Date)
	require.Equal(t, "2024-02-07", got[len(got)-1].Date)
}

func TestSortOrdersUnknownKeyReturnsCopy(t *testing.T) {
	list := sampleOrders()
	got := SortOrders(list, "nope", Ascending)
	require.Equal(t, list, got)

	// The result is a copy, not the same backing array.
	got[0].Qty = 999
	require.NotEqual(t, got[0].Qty, list[0].Qty)
}

func TestSortIsStable(t *testing.T) {
	list := []orders.Order{
		{ID: "A", Qty: 5},
		{ID: "B", Qty: 5},
		{ID: "C", Qty: 2},
		{ID: "D", Qty: 5},
	}
	got := SortOrders(list, "qty", Ascending)
	require.Equal(t, []string{"C", "A", "B", "D"}, ids(got))

	// Descending then ascending restores relative order within equal keys.
	desc := SortOrders(list, "qty", Descending)
	asc := SortOrders(desc, "qty", Ascending)
	require.Equal(t, []string{"C", "A", "B", "D"}, ids(asc))
}

func ids(list []orders.Order) []string {
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = o.ID
	}
	return out
}

func TestSortDoesNotMutateSource(t *testing.T) {
	list := sampleOrders()
	SortOrders(list, "amount", Descending)
	require.Equal(t, sampleOrders(), list)
}

func TestSortInventory(t *testing.T) {
	items := []inventory.Item{
		{SKU: "PT-165", Stock: 145, ReorderLevel: 50},
		{SKU: "IMP-TL", Stock: 12, ReorderLevel: 20},
		{SKU: "TR-S4", Stock: 28, ReorderLevel: 15},
	}
	got := SortInventory(items, "stock", Ascending)
	require.Equal(t, "IMP-TL", got[0].SKU)
	require.Equal(t, "PT-165", got[2].SKU)

	got = SortInventory(items, "sku", Ascending)
	require.Equal(t, "IMP-TL", got[0].SKU)
}

func TestSortDealersByYTDSales(t *testing.T) {
	list := []dealers.Dealer{
		{Code: "DLR-001", YTDSales: 24500000},
		{Code: "DLR-004", YTDSales: 31200000},
		{Code: "DLR-005", YTDSales: 15600000},
	}
	got := SortDealers(list, "ytdSales", Descending)
	require.Equal(t, "DLR-004", got[0].Code)
	require.Equal(t, "DLR-005", got[2].Code)
}

func TestSortStateToggle(t *testing.T) {
	var s SortState

	s.Toggle("date")
	require.Equal(t, SortState{Key: "date", Dir: Ascending}, s)

	s.Toggle("date")
	require.Equal(t, SortState{Key: "date", Dir: Descending}, s)

	s.Toggle("date")
	require.Equal(t, SortState{Key: "date", Dir: Ascending}, s)

	// A new key always resets to ascending.
	s.Toggle("date")
	s.Toggle("amount")
	require.Equal(t, SortState{Key: "amount", Dir: Ascending}, s)
}

func TestStockByCategory(t *testing.T) {
	items := []inventory.Item{
		{SKU: "PT-165", Category: inventory.CategoryPowerTiller, Stock: 145},
		{SKU: "PT-135", Category: inventory.CategoryPowerTiller, Stock: 98},
		{SKU: "TR-S4", Category: inventory.CategoryTractor, Stock: 28},
		{SKU: "IMP-RT", Category: inventory.CategoryImplement, Stock: 85},
	}
	totals := StockByCategory(items)
	require.Equal(t, 243, totals[inventory.CategoryPowerTiller])
	require.Equal(t, 28, totals[inventory.CategoryTractor])
	require.Equal(t, 85, totals[inventory.CategoryImplement])
}

func TestLowStock(t *testing.T) {
	items := []inventory.Item{
		{SKU: "PT-130", Stock: 42, ReorderLevel: 45},
		{SKU: "PT-95", Stock: 210, ReorderLevel: 80},
		{SKU: "IMP-TL", Stock: 20, ReorderLevel: 20},
	}
	low := LowStock(items)
	require.Len(t, low, 2)
	require.Equal(t, "PT-130", low[0].SKU)
	require.Equal(t, "IMP-TL", low[1].SKU)
	require.Equal(t, 2, LowStockCount(items))
}

func TestRecentOrders(t *testing.T) {
	got := RecentOrders(sampleOrders(), 5)
	require.Len(t, got, 5)
	require.Equal(t, "2024-02-12", got[0].Date)
	require.Equal(t, "2024-02-08", got[4].Date)

	// n larger than the list returns everything.
	got = RecentOrders(sampleOrders(), 50)
	require.Len(t, got, 6)
}

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "1.9 Cr", FormatMoney(18750000))
	require.Equal(t, "18.8 L", FormatMoney(1875000))
	require.Equal(t, "8.5 L", FormatMoney(850000))
	require.Equal(t, "3.1 Cr", FormatMoney(31200000))
}
