package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

func TestFilename(t *testing.T) {
	now := time.Date(2024, 2, 12, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "vst-mis-sales-2024-02-12.csv", Filename(ViewSales, "csv", now))
	require.Equal(t, "vst-mis-dealers-2024-02-12.xlsx", Filename(ViewDealers, "xlsx", now))
}

func TestSalesCSV(t *testing.T) {
	csv := SalesCSV([]orders.Order{
		{ID: "ORD-2024-1842", Date: "2024-02-12", Dealer: "Agri Power Hub", Product: "165 DI ES", Qty: 5, Amount: 1875000, Status: orders.StatusDispatched},
	})
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Order ID,Date,Dealer,Product,Qty,Amount,Status", lines[0])
	require.Equal(t, `"ORD-2024-1842","2024-02-12","Agri Power Hub","165 DI ES","5","1875000","Dispatched"`, lines[1])
}

func TestInventoryCSV(t *testing.T) {
	csv := InventoryCSV([]inventory.Item{
		{SKU: "PT-130", Name: "130 DI (13 HP)", Category: inventory.CategoryPowerTiller, Stock: 42, ReorderLevel: 45, Status: inventory.StatusLowStock},
	})
	lines := strings.Split(csv, "\n")
	require.Equal(t, "SKU,Product Name,Category,Stock,Reorder Level,Status", lines[0])
	require.Equal(t, `"PT-130","130 DI (13 HP)","Power Tiller","42","45","low-stock"`, lines[1])
}

func TestDealersCSV(t *testing.T) {
	csv := DealersCSV([]dealers.Dealer{
		{Code: "DLR-001", Name: "Agri Power Hub", Region: dealers.RegionSouth, City: "Coimbatore", Contact: "98765 43210", YTDSales: 24500000},
	})
	lines := strings.Split(csv, "\n")
	require.Equal(t, "Code,Dealer Name,Region,City,Contact,YTD Sales", lines[0])
	require.Equal(t, `"DLR-001","Agri Power Hub","South","Coimbatore","98765 43210","24500000"`, lines[1])
}

func TestEmptyCSVHasHeadersOnly(t *testing.T) {
	require.Equal(t, "Order ID,Date,Dealer,Product,Qty,Amount,Status", SalesCSV(nil))
}

func TestSalesXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := SalesXLSX(&buf, []orders.Order{
		{ID: "ORD-2024-1842", Date: "2024-02-12", Dealer: "Agri Power Hub", Product: "165 DI ES", Qty: 5, Amount: 1875000, Status: orders.StatusDispatched},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, salesHeaders, rows[0])
	require.Equal(t, "ORD-2024-1842", rows[1][0])
	require.Equal(t, "Dispatched", rows[1][6])
}
