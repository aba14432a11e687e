package cardcsv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	enc "github.com/MrJamesThe3rd/onm/internal/encoding"
)

func TestSplitCategory(t *testing.T) {
	tests := []struct {
		name         string
		profile      Profile
		in           string
		wantPrimary  string
		wantDetailed string
	}{
		{
			name:         "two levels",
			profile:      Amex,
			in:           "Merchandise & Supplies-Groceries",
			wantPrimary:  "Merchandise & Supplies",
			wantDetailed: "Groceries",
		},
		{
			name:         "third level dropped",
			profile:      Amex,
			in:           "Travel-Airline-Baggage",
			wantPrimary:  "Travel",
			wantDetailed: "Airline",
		},
		{
			name:        "single level",
			profile:     Amex,
			in:          "Fees & Adjustments",
			wantPrimary: "Fees & Adjustments",
		},
		{
			name:        "no separator in profile",
			profile:     Apple,
			in:          "Gas-Station",
			wantPrimary: "Gas-Station",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, detailed := splitCategory(tt.profile, tt.in)
			assert.Equal(t, tt.wantPrimary, primary)
			assert.Equal(t, tt.wantDetailed, detailed)
		})
	}
}

func TestParse_ReportsCharset(t *testing.T) {
	const export = "Date,Description,Amount,Category\n03/10/2024,CAFÉ,-4.50,Restaurant-Coffee\n"

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(export)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want enc.Charset
	}{
		{name: "plain utf-8", in: export, want: enc.UTF8},
		{name: "utf-16 with bom", in: utf16, want: enc.UTF16LE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, charset, err := parse(Amex, bytes.NewBufferString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, charset)
			require.Len(t, rows, 1)
			assert.Equal(t, "CAFÉ", rows[0].desc)
		})
	}
}

func TestParse_FoldsQuotedLineBreaks(t *testing.T) {
	const export = "Date,Description,Amount,Category\n" +
		"03/10/2024,\"AMAZON\r\nMKTP US\",-12.50,Merchandise & Supplies-Groceries\n"

	rows, _, err := parse(Amex, strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "AMAZON MKTP US", rows[0].desc)
	assert.Equal(t, "Merchandise & Supplies", rows[0].primary)
	assert.Equal(t, "Groceries", rows[0].detailed)
}
