package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	enc "github.com/kearneyfs/prearrange/internal/encoding"
	"github.com/kearneyfs/prearrange/internal/money"
)

// ApplyPriceList reads a two-column CSV (label, price) and applies it to one
// catalogue. Listed labels get the new price (new labels are added); labels
// not listed keep their built-in price. A header row containing "label" or
// "price" is skipped. Rows with an unparseable price are skipped with a
// warning.
//
// The yearly price updates come as spreadsheet exports, so the reader
// tolerates Windows-1252 and BOMs.
func (s *Set) ApplyPriceList(kind Kind, r io.Reader) (int, error) {
	table, ok := s.items[kind]
	if !ok {
		return 0, fmt.Errorf("unknown catalog kind %q", kind)
	}

	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return 0, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}

	applied := 0

	for i, row := range rows {
		if len(row) < 2 {
			continue
		}

		label := strings.TrimSpace(row[0])
		priceText := strings.TrimSpace(row[1])

		if label == "" || priceText == "" {
			continue
		}

		if isHeaderRow(label, priceText) {
			continue
		}

		price, ok := money.Parse(priceText)
		if !ok {
			slog.Warn("skipping price list row with invalid price",
				"catalog", kind, "row", i+1, "label", label, "price", priceText)
			continue
		}

		table[label] = price
		applied++
	}

	return applied, nil
}

func isHeaderRow(label, price string) bool {
	l := strings.ToLower(label)
	p := strings.ToLower(price)

	return l == "label" || l == "item" || l == "description" || p == "price"
}
