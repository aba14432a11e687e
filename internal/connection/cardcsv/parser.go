package cardcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/onm/internal/encoding"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

var dateLayouts = []string{"01/02/2006", "1/2/2006", "2006-01-02"}

// row is one parsed export line, before cursor filtering.
type row struct {
	date     civil.Date
	desc     string
	amount   decimal.Decimal
	typ      ledger.TransactionType
	primary  string
	detailed string
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// parse reads a whole export. Any row that does not parse fails the read,
// so callers never see a partial file.
func parse(p Profile, r io.Reader) ([]row, enc.Charset, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, "", fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, charset, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, charset, nil
	}

	cols, ok := headerColumns(p, records[0])
	if !ok {
		return nil, charset, fmt.Errorf("header does not match %s export: want columns %q", p.Name, p.requiredCols())
	}

	var rows []row

	for i, rec := range records[1:] {
		lineNum := i + 2

		if blank(rec) {
			continue
		}

		parsed, err := parseRow(p, cols, rec)
		if err != nil {
			return nil, charset, fmt.Errorf("line %d: %w", lineNum, err)
		}

		rows = append(rows, parsed)
	}

	return rows, charset, nil
}

func headerColumns(p Profile, header []string) (colIndex, bool) {
	cols := make(colIndex, len(header))

	for i, cell := range header {
		if name := strings.TrimSpace(cell); name != "" {
			cols[name] = i
		}
	}

	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return nil, false
		}
	}

	return cols, true
}

func parseRow(p Profile, cols colIndex, rec []string) (row, error) {
	date, err := parseDate(cellValue(rec, cols[p.DateCol]))
	if err != nil {
		return row{}, err
	}

	signed, err := parseAmount(cellValue(rec, cols[p.AmountCol]))
	if err != nil {
		return row{}, err
	}

	if p.Invert {
		signed = signed.Neg()
	}

	amount, typ := ledger.SplitSigned(signed)

	primary, detailed := splitCategory(p, ledger.SingleLine(cellValue(rec, cols[p.CategoryCol])))

	return row{
		date:     date,
		desc:     ledger.SingleLine(cellValue(rec, cols[p.DescCol])),
		amount:   amount,
		typ:      typ,
		primary:  primary,
		detailed: detailed,
	}, nil
}

func parseDate(s string) (civil.Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}

	return civil.Date{}, fmt.Errorf("invalid date %q", s)
}

// parseAmount accepts "-1,234.56" and "$12.50" style values.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.Replace(clean, "$", "", 1)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}

	return d, nil
}

func splitCategory(p Profile, s string) (string, string) {
	if p.CategorySep == "" {
		return s, ""
	}

	parts := strings.Split(s, p.CategorySep)
	if len(parts) == 1 {
		return s, ""
	}

	// Only the first two levels are kept: "A-B-C" is A and B.
	return parts[0], parts[1]
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[idx])
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
