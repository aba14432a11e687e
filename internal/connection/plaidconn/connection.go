package plaidconn

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/plaid/plaid-go/v41/plaid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// Upstream is the slice of the aggregator API a Connection needs.
//
//go:generate mockgen -source=connection.go -destination=upstream_mock.go -package=plaidconn
type Upstream interface {
	AccountsBalance(ctx context.Context, accessToken string) ([]plaid.AccountBase, error)
	TransactionsSync(ctx context.Context, accessToken, cursor string) (plaid.TransactionsSyncResponse, error)
}

type Connection struct {
	upstream Upstream
	log      *slog.Logger
}

func New(upstream Upstream) *Connection {
	return &Connection{
		upstream: upstream,
		log:      slog.Default().With("connection", "plaid"),
	}
}

func (c *Connection) AccountBalances(ctx context.Context, accessToken string) ([]connection.AccountBalance, error) {
	accounts, err := c.upstream.AccountsBalance(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	balances := make([]connection.AccountBalance, 0, len(accounts))

	for _, a := range accounts {
		name := a.GetOfficialName()
		if name == "" {
			name = a.GetName()
		}

		bal := a.GetBalances()

		balances = append(balances, connection.AccountBalance{
			ID:          a.GetAccountId(),
			DisplayName: ledger.SingleLine(name),
			Type:        accountType(a.GetType()),
			Balance:     decimal.NewFromFloat(bal.GetCurrent()),
		})
	}

	return balances, nil
}

// SyncTransactions pages through the sync endpoint until the upstream reports
// no more pages, collecting every added transaction along the way.
func (c *Connection) SyncTransactions(ctx context.Context, cur cursor.Cursor, accessToken string) (*connection.SyncResult, error) {
	var next string

	if cur != nil {
		agg, ok := cur.(cursor.Aggregator)
		if !ok {
			return nil, fmt.Errorf("plaid: %w: got %s", connection.ErrCursorMismatch, cur.Kind())
		}

		next = agg.Token
	}

	var txs []connection.RawTransaction

	for page := 1; ; page++ {
		resp, err := c.upstream.TransactionsSync(ctx, accessToken, next)
		if err != nil {
			return nil, err
		}

		for _, t := range resp.GetAdded() {
			raw, err := rawTransaction(t)
			if err != nil {
				return nil, err
			}

			txs = append(txs, raw)
		}

		next = resp.GetNextCursor()

		c.log.Debug("synced page", "page", page, "added", len(resp.GetAdded()), "has_more", resp.GetHasMore())

		if !resp.GetHasMore() {
			break
		}
	}

	return &connection.SyncResult{
		Transactions: txs,
		Cursor:       cursor.Aggregator{Token: next},
	}, nil
}

func rawTransaction(t plaid.Transaction) (connection.RawTransaction, error) {
	if !t.HasPersonalFinanceCategory() {
		return connection.RawTransaction{}, &connection.Error{
			Op:      "transactions sync",
			Code:    "MALFORMED_CATEGORY",
			Message: fmt.Sprintf("transaction %s has no personal finance category", t.GetTransactionId()),
		}
	}

	date, err := civil.ParseDate(t.GetDate())
	if err != nil {
		return connection.RawTransaction{}, connection.Errorf("transactions sync", "transaction %s: %w", t.GetTransactionId(), err)
	}

	amount, typ := ledger.SplitSigned(decimal.NewFromFloat(t.GetAmount()))
	pfc := t.GetPersonalFinanceCategory()

	return connection.RawTransaction{
		Date:             date,
		Description:      ledger.SingleLine(t.GetName()),
		Amount:           amount,
		Type:             typ,
		PrimaryCategory:  pfc.GetPrimary(),
		DetailedCategory: pfc.GetDetailed(),
		AccountID:        t.GetAccountId(),
	}, nil
}

func accountType(t plaid.AccountType) ledger.AccountType {
	switch t {
	case plaid.ACCOUNTTYPE_CREDIT, plaid.ACCOUNTTYPE_LOAN:
		return ledger.AccountTypeLiability
	default:
		return ledger.AccountTypeAsset
	}
}
