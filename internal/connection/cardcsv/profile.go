package cardcsv

import (
	"fmt"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// Profile describes the column layout of one card issuer's CSV export.
// Adding an issuer is adding a Profile to the profiles map.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	AmountCol   string
	CategoryCol string
	// CategorySep splits a two-level category cell ("Primary-Detailed").
	// Empty means the export has a single level.
	CategorySep string
	// Invert flips the sign of the amount column, for exports that list
	// purchases as positive.
	Invert bool
}

func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.DescCol, p.AmountCol, p.CategoryCol}
}

var Amex = Profile{
	Name:        "amex",
	DateCol:     "Date",
	DescCol:     "Description",
	AmountCol:   "Amount",
	CategoryCol: "Category",
	CategorySep: "-",
}

var Apple = Profile{
	Name:        "apple",
	DateCol:     "Transaction Date",
	DescCol:     "Description",
	AmountCol:   "Amount (USD)",
	CategoryCol: "Category",
	Invert:      true,
}

var profiles = map[ledger.SourceKind]Profile{
	ledger.KindAmexCSV:  Amex,
	ledger.KindAppleCSV: Apple,
}

// ProfileFor returns the export layout of a CSV source kind.
func ProfileFor(kind ledger.SourceKind) (Profile, error) {
	p, ok := profiles[kind]
	if !ok {
		return Profile{}, fmt.Errorf("csv profile: %w: %q", ledger.ErrUnsupportedSourceKind, kind)
	}

	return p, nil
}
