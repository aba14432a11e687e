package category

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// Table maps source-native category labels to canonical categories.
// Entries are keyed by "primary" or "primary:detailed". When stripPrefix is
// set, a detailed label that repeats its primary ("TRANSPORTATION_GAS") is
// reduced to its suffix ("GAS") before the lookup.
type Table struct {
	name        string
	entries     map[string]string
	stripPrefix bool
}

func (t *Table) Name() string { return t.name }

// Values returns every category the table can produce, sorted and deduplicated.
func (t *Table) Values() []string {
	seen := make(map[string]struct{}, len(t.entries))
	for _, v := range t.entries {
		seen[v] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}

	sort.Strings(out)

	return out
}

// Normalize resolves a source-native category to a canonical one. The
// primary/detailed pair is tried first, then primary alone. Anything else is
// Unknown.
func Normalize(primary, detailed string, t *Table) string {
	if detailed != "" {
		suffix := detailed
		if t.stripPrefix {
			suffix = strings.TrimPrefix(detailed, primary+"_")
		}

		if c, ok := t.entries[primary+":"+suffix]; ok {
			return c
		}
	}

	if c, ok := t.entries[primary]; ok {
		return c
	}

	return Unknown
}

// Tables holds the fixed mapping table of every source kind. Build it once
// with DefaultTables and pass it to whatever needs to categorize.
type Tables struct {
	Plaid *Table
	Amex  *Table
	Apple *Table
}

func DefaultTables() Tables {
	return Tables{
		Plaid: plaidTable(),
		Amex:  &Table{name: "amex", entries: amexEntries},
		Apple: &Table{name: "apple", entries: appleEntries},
	}
}

func (ts Tables) For(kind ledger.SourceKind) (*Table, error) {
	switch kind {
	case ledger.KindPlaid:
		return ts.Plaid, nil
	case ledger.KindAmexCSV:
		return ts.Amex, nil
	case ledger.KindAppleCSV:
		return ts.Apple, nil
	}

	return nil, fmt.Errorf("category table: %w: %q", ledger.ErrUnsupportedSourceKind, kind)
}

// plaidTable is the identity over the canonical set, since the aggregator
// already speaks the canonical taxonomy.
func plaidTable() *Table {
	entries := make(map[string]string, len(canonical))
	for c := range canonical {
		entries[c] = c
	}

	return &Table{name: "plaid", entries: entries, stripPrefix: true}
}
