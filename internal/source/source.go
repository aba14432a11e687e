package source

import (
	"context"
	"errors"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

var (
	// ErrAccountNotMapped means the upstream reported an account the source
	// did not know about when it was created.
	ErrAccountNotMapped = errors.New("upstream account not in account map")
	ErrNoLinker         = errors.New("no link provider configured")
	ErrNoAggregator     = errors.New("aggregator is not configured")
)

// Linker obtains and repairs aggregator credentials. It drives an
// interactive browser exchange.
//
//go:generate mockgen -source=source.go -destination=source_mock.go -package=source
type Linker interface {
	AccessToken(ctx context.Context) (string, error)
	UpdateLink(ctx context.Context, accessToken string) error
}

// Source names an upstream and translates what its Connection returns into
// ledger records.
type Source interface {
	Name() string
	Kind() ledger.SourceKind
	AccountBalances(ctx context.Context, conn connection.Connection) ([]ledger.Account, error)
	SyncTransactions(ctx context.Context, conn connection.Connection, c cursor.Cursor) (*SyncResult, error)
	UpdateLink(ctx context.Context, l Linker) error
	Record() Record
}

type SyncResult struct {
	Transactions []ledger.Transaction
	Cursor       cursor.Cursor
}

// Record is the persisted form of a Source. CSV sources only use Kind and Name.
type Record struct {
	Kind        ledger.SourceKind
	Name        string
	AccessToken string
	Accounts    []AccountRecord
}

type AccountRecord struct {
	ID   string
	Name string
	Type ledger.AccountType
}
