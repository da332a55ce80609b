// Package export renders the table views as downloadable CSV and XLSX
// artifacts.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

// View names accepted by Filename.
const (
	ViewSales     = "sales"
	ViewInventory = "inventory"
	ViewDealers   = "dealers"
)

// Column headers per view, fixed by the download contract.
var (
	salesHeaders     = []string{"Order ID", "Date", "Dealer", "Product", "Qty", "Amount", "Status"}
	inventoryHeaders = []string{"SKU", "Product Name", "Category", "Stock", "Reorder Level", "Status"}
	dealersHeaders   = []string{"Code", "Dealer Name", "Region", "City", "Contact", "YTD Sales"}
)

// Filename builds the artifact name for a view: vst-mis-<view>-<date>.<ext>.
func Filename(view, ext string, now time.Time) string {
	return fmt.Sprintf("vst-mis-%s-%s.%s", view, now.Format("2006-01-02"), ext)
}

// SalesCSV renders orders with the sales column set.
func SalesCSV(list []orders.Order) string {
	rows := make([][]string, len(list))
	for i, o := range list {
		rows[i] = orderRow(o)
	}
	return buildCSV(salesHeaders, rows)
}

// InventoryCSV renders items with the inventory column set.
func InventoryCSV(items []inventory.Item) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = inventoryRow(item)
	}
	return buildCSV(inventoryHeaders, rows)
}

// DealersCSV renders dealers with the dealer column set.
func DealersCSV(list []dealers.Dealer) string {
	rows := make([][]string, len(list))
	for i, d := range list {
		rows[i] = dealerRow(d)
	}
	return buildCSV(dealersHeaders, rows)
}

// buildCSV joins rows with every data field double-quoted. Headers stay bare.
func buildCSV(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(field)
			b.WriteByte('"')
		}
	}
	return b.String()
}

func orderRow(o orders.Order) []string {
	return []string{
		o.ID, o.Date, o.Dealer, o.Product,
		strconv.Itoa(o.Qty),
		strconv.FormatInt(o.Amount, 10),
		string(o.Status),
	}
}

func inventoryRow(item inventory.Item) []string {
	return []string{
		item.SKU, item.Name, string(item.Category),
		strconv.Itoa(item.Stock),
		strconv.Itoa(item.ReorderLevel),
		string(item.Status),
	}
}

func dealerRow(d dealers.Dealer) []string {
	return []string{
		d.Code, d.Name, string(d.Region), d.City, d.Contact,
		strconv.FormatInt(d.YTDSales, 10),
	}
}
