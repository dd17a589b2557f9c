// Package export renders a filtered inventory result set as an Excel
// workbook. The column set is a contract with the operators' downstream
// spreadsheets; change it deliberately.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

const sheetName = "Inventory"

var headers = []string{
	"Pan ID", "Date", "Lot", "Polymer", "Grade", "Supplier",
	"Qty (kg)", "Location", "Density", "MI", "Izod", "Status",
}

// ContentType is the media type for xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook builds the export spreadsheet: a bold header row, one row per
// record, and a total row summing quantities with decimal arithmetic so kg
// totals do not drift on large exports.
func Workbook(records []*types.InventoryRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#8EB4E3"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	total := decimal.Zero
	for i, r := range records {
		row := i + 2
		values := []any{
			strconv.FormatInt(r.PanID, 10),
			r.PanDate.Format("2006-01-02"),
			strconv.FormatInt(r.Lot, 10),
			r.PolymerCode,
			r.GradeCode,
			r.SupplierCode,
			r.AvailableQty,
			r.WarehouseName,
			cellValue(r.Density),
			cellValue(r.MI),
			cellValue(r.Izod),
			r.AllocationStatus,
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		total = total.Add(decimal.NewFromFloat(r.AvailableQty))
	}

	totalRow := len(records) + 2
	labelCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	qtyCell, _ := excelize.CoordinatesToCellName(7, totalRow)
	if err := f.SetCellValue(sheetName, labelCell, "Total"); err != nil {
		return nil, err
	}
	qty, _ := total.Float64()
	if err := f.SetCellValue(sheetName, qtyCell, qty); err != nil {
		return nil, err
	}

	if err := sizeColumns(f, records); err != nil {
		return nil, err
	}
	return f, nil
}

// Write streams the workbook for records to w.
func Write(w io.Writer, records []*types.InventoryRecord) error {
	f, err := Workbook(records)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing export workbook: %w", err)
	}
	return nil
}

func cellValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// sizeColumns approximates the original autosize: width follows the longest
// rendered value per column, within sane bounds.
func sizeColumns(f *excelize.File, records []*types.InventoryRecord) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	grow := func(col int, s string) {
		if len(s) > widths[col] {
			widths[col] = len(s)
		}
	}
	for _, r := range records {
		grow(0, strconv.FormatInt(r.PanID, 10))
		grow(1, "2006-01-02")
		grow(2, strconv.FormatInt(r.Lot, 10))
		grow(3, r.PolymerCode)
		grow(4, r.GradeCode)
		grow(5, r.SupplierCode)
		grow(7, r.WarehouseName)
		grow(11, r.AllocationStatus)
	}
	for col, w := range widths {
		if w > 48 {
			w = 48
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(w)+2); err != nil {
			return err
		}
	}
	return nil
}
