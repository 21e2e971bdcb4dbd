// Package sheet reads purchase-order spreadsheets directly, without the LLM,
// for callers that have the workbook file instead of a screenshot.
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"balju/internal/domain"
)

// Column layout of the order sheet.
// A=외주처, B=품명, C=수량, D=납기요청일, E=특이사항, F=제품코드.
const (
	colVendor = iota
	colProduct
	colQuantity
	colDeliveryDate
	colNotes
	colProductCode
)

// ReadOrders reads the first worksheet of an .xlsx order sheet and returns
// the order records. The header row is skipped, rows without a product name
// are ignored, and a blank vendor cell inherits the vendor of the nearest
// preceding row (the merged-cell convention in these sheets).
func ReadOrders(r io.Reader) ([]domain.OrderItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSheet, err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrInvalidSheet)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSheet, err)
	}

	orders := []domain.OrderItem{}
	lastVendor := ""
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		product := strings.TrimSpace(cellVal(row, colProduct))
		if product == "" {
			continue
		}

		vendor := strings.TrimSpace(cellVal(row, colVendor))
		if vendor == "" {
			vendor = lastVendor
		} else {
			lastVendor = vendor
		}
		if vendor == "" {
			// no vendor above to carry down from
			continue
		}

		orders = append(orders, domain.OrderItem{
			VendorName:   vendor,
			ProductName:  product,
			ProductCode:  strings.TrimSpace(cellVal(row, colProductCode)),
			Quantity:     strings.TrimSpace(cellVal(row, colQuantity)),
			DeliveryDate: strings.TrimSpace(cellVal(row, colDeliveryDate)),
			Notes:        strings.TrimSpace(cellVal(row, colNotes)),
		})
	}

	return orders, nil
}

// cellVal safely extracts a cell value; GetRows trims trailing empty cells.
func cellVal(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
