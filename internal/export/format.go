package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

// DateLayout is the wall-clock layout of the Date column.
const DateLayout = "02/01/2006 15:04:05"

// Header lists the columns of the downstream template in order.
var Header = []string{
	"No SJ", "Trx Type", "Grade", "Dest", "Date", "Barcode",
	"Gross", "Tare", "Netto", "PT", "Kode PT",
}

const (
	colDate    = 4
	colBarcode = 5
)

// Format is the deployment-wide CSV dialect. Every field is double-quoted.
type Format struct {
	Delimiter       rune
	HeaderDelimiter rune
	// Location renders scan timestamps; nil means time.Local.
	Location *time.Location
}

// DefaultFormat matches the template shipped with the scanner app.
var DefaultFormat = Format{
	Delimiter:       ';',
	HeaderDelimiter: ',',
}

func (f Format) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f Format) withDefaults() Format {
	if f.Delimiter == 0 {
		f.Delimiter = DefaultFormat.Delimiter
	}
	if f.HeaderDelimiter == 0 {
		f.HeaderDelimiter = f.Delimiter
	}
	return f
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeRecord(w *bufio.Writer, fields []string, delim rune) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := w.WriteRune(delim); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// Row returns the unquoted fields of one scan.
func Row(item models.ScanItem, loc *time.Location) []string {
	row := make([]string, len(Header))
	row[colDate] = item.ScannedAt.In(loc).Format(DateLayout)
	row[colBarcode] = item.Code
	return row
}

// Encode writes the header and one row per scan, in stored order.
func Encode(w io.Writer, batch models.Batch, format Format) error {
	format = format.withDefaults()
	bw := bufio.NewWriter(w)

	if err := writeRecord(bw, Header, format.HeaderDelimiter); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	loc := format.location()
	for i, item := range batch.Scans {
		if err := writeRecord(bw, Row(item, loc), format.Delimiter); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}
