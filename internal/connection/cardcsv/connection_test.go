package cardcsv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/connection/cardcsv"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

const amexExport = `Date,Description,Amount,Category
03/10/2024,WHOLEFDS MKT,-12.50,Merchandise & Supplies-Groceries
03/11/2024,PAYMENT RECEIVED - THANK YOU,40.00,Fees & Adjustments
03/12/2024,VERIZON WIRELESS,-5.00,Communications-Mobile
`

const appleExport = `Transaction Date,Clearing Date,Description,Merchant,Category,Type,Amount (USD),Purchased By
03/02/2024,03/03/2024,UBER *TRIP,Uber,Transportation,Purchase,23.90,Jo
03/05/2024,03/05/2024,ACH DEPOSIT,Apple Card,Payment,Payment,-100.00,Jo
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func TestConnection_SyncTransactions_Amex(t *testing.T) {
	conn := cardcsv.New(cardcsv.Amex, writeFile(t, amexExport))

	res, err := conn.SyncTransactions(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 3)

	first := res.Transactions[0]
	assert.Equal(t, date(2024, 3, 10), first.Date)
	assert.Equal(t, "WHOLEFDS MKT", first.Description)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, ledger.TypeDebit, first.Type)
	assert.Equal(t, "Merchandise & Supplies", first.PrimaryCategory)
	assert.Equal(t, "Groceries", first.DetailedCategory)
	assert.Equal(t, "amex", first.AccountID)

	second := res.Transactions[1]
	assert.Equal(t, ledger.TypeCredit, second.Type)
	assert.Equal(t, "Fees & Adjustments", second.PrimaryCategory)
	assert.Empty(t, second.DetailedCategory)

	assert.Equal(t, cursor.Watermark{LatestDate: date(2024, 3, 12)}, res.Cursor)
}

func TestConnection_SyncTransactions_Apple(t *testing.T) {
	conn := cardcsv.New(cardcsv.Apple, writeFile(t, appleExport))

	res, err := conn.SyncTransactions(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)

	purchase := res.Transactions[0]
	assert.Equal(t, ledger.TypeDebit, purchase.Type)
	assert.True(t, purchase.Amount.Equal(decimal.RequireFromString("23.9")))
	assert.Equal(t, "Transportation", purchase.PrimaryCategory)
	assert.Empty(t, purchase.DetailedCategory)

	payment := res.Transactions[1]
	assert.Equal(t, ledger.TypeCredit, payment.Type)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, cursor.Watermark{LatestDate: date(2024, 3, 5)}, res.Cursor)
}

func TestConnection_SyncTransactions_Watermark(t *testing.T) {
	path := writeFile(t, amexExport)
	conn := cardcsv.New(cardcsv.Amex, path)
	ctx := context.Background()

	tests := []struct {
		name       string
		cursor     cursor.Cursor
		wantLen    int
		wantCursor cursor.Cursor
	}{
		{
			name:       "Strictly after watermark",
			cursor:     cursor.Watermark{LatestDate: date(2024, 3, 10)},
			wantLen:    2,
			wantCursor: cursor.Watermark{LatestDate: date(2024, 3, 12)},
		},
		{
			name:       "Nothing new keeps cursor",
			cursor:     cursor.Watermark{LatestDate: date(2024, 3, 12)},
			wantLen:    0,
			wantCursor: cursor.Watermark{LatestDate: date(2024, 3, 12)},
		},
		{
			name:       "Watermark ahead of file",
			cursor:     cursor.Watermark{LatestDate: date(2025, 1, 1)},
			wantLen:    0,
			wantCursor: cursor.Watermark{LatestDate: date(2025, 1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := conn.SyncTransactions(ctx, tt.cursor, "")
			require.NoError(t, err)
			assert.Len(t, res.Transactions, tt.wantLen)
			assert.Equal(t, tt.wantCursor, res.Cursor)
		})
	}
}

func TestConnection_SyncTransactions_GrowingFile(t *testing.T) {
	path := writeFile(t, amexExport)
	conn := cardcsv.New(cardcsv.Amex, path)
	ctx := context.Background()

	first, err := conn.SyncTransactions(ctx, nil, "")
	require.NoError(t, err)

	grown := amexExport + "03/14/2024,SHELL OIL,-30.00,Transportation-Fuel\n"
	require.NoError(t, os.WriteFile(path, []byte(grown), 0o600))

	second, err := conn.SyncTransactions(ctx, first.Cursor, "")
	require.NoError(t, err)
	require.Len(t, second.Transactions, 1)
	assert.Equal(t, "SHELL OIL", second.Transactions[0].Description)

	prev := first.Cursor.(cursor.Watermark).LatestDate
	next := second.Cursor.(cursor.Watermark).LatestDate
	assert.False(t, next.Before(prev))
}

func TestConnection_SyncTransactions_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		cursor  cursor.Cursor
		wantErr error
	}{
		{
			name:    "Missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.csv") },
			wantErr: connection.ErrConnection,
		},
		{
			name: "Wrong header",
			path: func(t *testing.T) string {
				return writeFile(t, "Posted,Memo,Value\n03/10/2024,X,1.00\n")
			},
			wantErr: connection.ErrConnection,
		},
		{
			name: "Bad amount fails the whole read",
			path: func(t *testing.T) string {
				return writeFile(t, amexExport+"03/13/2024,BROKEN,abc,Other\n")
			},
			wantErr: connection.ErrConnection,
		},
		{
			name: "Bad date fails the whole read",
			path: func(t *testing.T) string {
				return writeFile(t, amexExport+"yesterday,BROKEN,1.00,Other\n")
			},
			wantErr: connection.ErrConnection,
		},
		{
			name:    "Aggregator cursor",
			path:    func(t *testing.T) string { return writeFile(t, amexExport) },
			cursor:  cursor.Aggregator{Token: "abc"},
			wantErr: connection.ErrCursorMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := cardcsv.New(cardcsv.Amex, tt.path(t))

			res, err := conn.SyncTransactions(ctx, tt.cursor, "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestConnection_SyncTransactions_EmptyFile(t *testing.T) {
	conn := cardcsv.New(cardcsv.Amex, writeFile(t, ""))

	res, err := conn.SyncTransactions(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, res.Transactions)
	assert.Nil(t, res.Cursor)
}

func TestConnection_AccountBalances(t *testing.T) {
	conn := cardcsv.New(cardcsv.Apple, "unused.csv")

	balances, err := conn.AccountBalances(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "apple", balances[0].ID)
	assert.True(t, balances[0].Balance.IsZero())
}

func TestProfileFor(t *testing.T) {
	p, err := cardcsv.ProfileFor(ledger.KindAppleCSV)
	require.NoError(t, err)
	assert.Equal(t, cardcsv.Apple, p)

	_, err = cardcsv.ProfileFor(ledger.KindPlaid)
	assert.ErrorIs(t, err, ledger.ErrUnsupportedSourceKind)
}
