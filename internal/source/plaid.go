package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/MrJamesThe3rd/onm/internal/category"
	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// AccountRef is the local identity given to an upstream account.
type AccountRef struct {
	Name string
	Type ledger.AccountType
}

// PlaidSource is an aggregator item. Its account map is fixed when the source
// is created.
type PlaidSource struct {
	name        string
	accessToken string
	accounts    map[string]AccountRef
	categories  *category.Table
}

func (s *PlaidSource) Name() string            { return s.name }
func (s *PlaidSource) Kind() ledger.SourceKind { return ledger.KindPlaid }

func (s *PlaidSource) AccountBalances(ctx context.Context, conn connection.Connection) ([]ledger.Account, error) {
	balances, err := conn.AccountBalances(ctx, s.accessToken)
	if err != nil {
		return nil, fmt.Errorf("get balances for %s: %w", s.name, err)
	}

	accounts := make([]ledger.Account, 0, len(balances))

	for _, b := range balances {
		ref, err := s.account(b.ID)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, ledger.Account{Name: ref.Name, Type: ref.Type, Balance: b.Balance})
	}

	return accounts, nil
}

func (s *PlaidSource) SyncTransactions(ctx context.Context, conn connection.Connection, c cursor.Cursor) (*SyncResult, error) {
	res, err := conn.SyncTransactions(ctx, c, s.accessToken)
	if err != nil {
		return nil, fmt.Errorf("sync transactions for %s: %w", s.name, err)
	}

	txs := make([]ledger.Transaction, 0, len(res.Transactions))

	for _, raw := range res.Transactions {
		ref, err := s.account(raw.AccountID)
		if err != nil {
			return nil, err
		}

		txs = append(txs, ledger.Transaction{
			Date:        raw.Date,
			Description: raw.Description,
			Amount:      raw.Amount,
			Category:    category.Normalize(raw.PrimaryCategory, raw.DetailedCategory, s.categories),
			AccountName: ref.Name,
			Type:        raw.Type,
		})
	}

	return &SyncResult{Transactions: txs, Cursor: res.Cursor}, nil
}

func (s *PlaidSource) UpdateLink(ctx context.Context, l Linker) error {
	if l == nil {
		return fmt.Errorf("update link for %s: %w", s.name, ErrNoLinker)
	}

	if err := l.UpdateLink(ctx, s.accessToken); err != nil {
		return fmt.Errorf("update link for %s: %w", s.name, err)
	}

	return nil
}

func (s *PlaidSource) Record() Record {
	accounts := make([]AccountRecord, 0, len(s.accounts))
	for id, ref := range s.accounts {
		accounts = append(accounts, AccountRecord{ID: id, Name: ref.Name, Type: ref.Type})
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return Record{
		Kind:        ledger.KindPlaid,
		Name:        s.name,
		AccessToken: s.accessToken,
		Accounts:    accounts,
	}
}

func (s *PlaidSource) account(id string) (AccountRef, error) {
	ref, ok := s.accounts[id]
	if !ok {
		return AccountRef{}, fmt.Errorf("source %s: %w: %s", s.name, ErrAccountNotMapped, id)
	}

	return ref, nil
}
