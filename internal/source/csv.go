package source

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/onm/internal/category"
	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// CSVSource is a card export. The source name doubles as its only account.
type CSVSource struct {
	name       string
	kind       ledger.SourceKind
	categories *category.Table
}

func (s *CSVSource) Name() string            { return s.name }
func (s *CSVSource) Kind() ledger.SourceKind { return s.kind }

func (s *CSVSource) AccountBalances(ctx context.Context, conn connection.Connection) ([]ledger.Account, error) {
	balances, err := conn.AccountBalances(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("get balances for %s: %w", s.name, err)
	}

	accounts := make([]ledger.Account, 0, len(balances))
	for _, b := range balances {
		accounts = append(accounts, ledger.Account{Name: s.name, Type: ledger.AccountTypeLiability, Balance: b.Balance})
	}

	return accounts, nil
}

func (s *CSVSource) SyncTransactions(ctx context.Context, conn connection.Connection, c cursor.Cursor) (*SyncResult, error) {
	res, err := conn.SyncTransactions(ctx, c, "")
	if err != nil {
		return nil, fmt.Errorf("sync transactions for %s: %w", s.name, err)
	}

	txs := make([]ledger.Transaction, 0, len(res.Transactions))
	for _, raw := range res.Transactions {
		txs = append(txs, ledger.Transaction{
			Date:        raw.Date,
			Description: raw.Description,
			Amount:      raw.Amount,
			Category:    category.Normalize(raw.PrimaryCategory, raw.DetailedCategory, s.categories),
			AccountName: s.name,
			Type:        raw.Type,
		})
	}

	return &SyncResult{Transactions: txs, Cursor: res.Cursor}, nil
}

// UpdateLink is a no-op: exports have no credential.
func (s *CSVSource) UpdateLink(context.Context, Linker) error { return nil }

func (s *CSVSource) Record() Record {
	return Record{Kind: s.kind, Name: s.name}
}
