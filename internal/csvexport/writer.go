package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"balju/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row, matching the source sheet layout.
var columns = []string{
	"외주처",
	"품명",
	"제품코드",
	"수량",
	"납기요청일",
	"특이사항",
}

// Writer wraps csv.Writer for exporting order records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteOrders converts a batch of order records to CSV rows and writes them.
func (w *Writer) WriteOrders(orders []domain.OrderItem) error {
	for i := range orders {
		if err := w.csv.Write(orderToRow(&orders[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func orderToRow(o *domain.OrderItem) []string {
	return []string{
		o.VendorName,
		o.ProductName,
		o.ProductCode,
		o.Quantity,
		o.DeliveryDate,
		o.Notes,
	}
}

// nonFilenameChar matches characters unsafe for Content-Disposition filenames.
var nonFilenameChar = regexp.MustCompile(`[^0-9A-Za-z가-힣_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces unsafe chars with _, collapses consecutive underscores, and
// truncates to 100 bytes on a rune boundary.
func SanitizeFilename(name string) string {
	s := nonFilenameChar.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	for len(s) > 100 {
		rs := []rune(s)
		s = string(rs[:len(rs)-1])
	}
	return s
}

// BuildFilename returns a sanitized filename for the CSV download.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
