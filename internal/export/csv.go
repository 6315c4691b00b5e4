// Package export renders collection data for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header is the fixed CSV column order.
var Header = []string{"Name", "Type", "Country", "Year", "Denomination", "Value", "Condition", "Status"}

// Filename builds the download name for an export generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("collection_%s.csv", t.Format("2006-01-02"))
}

// CSV renders the items as a UTF-8 CSV with BOM: one header line plus one
// row per item. Missing numerics render as empty cells.
func CSV(items []collectibles.Collectible) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, err
	}

	for i := range items {
		item := &items[i]
		year := ""
		if item.Year != nil {
			year = fmt.Sprintf("%d", *item.Year)
		}
		value := ""
		if item.CurrentValue != nil {
			value = fmt.Sprintf("%g", *item.CurrentValue)
		}
		row := []string{
			item.Name,
			item.Type,
			item.Country,
			year,
			item.Denomination,
			value,
			item.Condition,
			item.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
