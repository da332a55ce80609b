package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

// SalesXLSX writes the sales view as a workbook.
func SalesXLSX(w io.Writer, list []orders.Order) error {
	rows := make([][]string, len(list))
	for i, o := range list {
		rows[i] = orderRow(o)
	}
	return writeWorkbook(w, "Sales", salesHeaders, rows)
}

// InventoryXLSX writes the inventory view as a workbook.
func InventoryXLSX(w io.Writer, items []inventory.Item) error {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = inventoryRow(item)
	}
	return writeWorkbook(w, "Inventory", inventoryHeaders, rows)
}

// DealersXLSX writes the dealer view as a workbook.
func DealersXLSX(w io.Writer, list []dealers.Dealer) error {
	rows := make([][]string, len(list))
	for i, d := range list {
		rows[i] = dealerRow(d)
	}
	return writeWorkbook(w, "Dealers", dealersHeaders, rows)
}

func writeWorkbook(w io.Writer, sheetName string, headers []string, data [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		if err := f.SetColWidth(sheetName, col, col, 15); err != nil {
			return err
		}
	}

	return f.Write(w)
}
