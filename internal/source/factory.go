package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/onm/internal/category"
	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/connection/cardcsv"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// Factory builds sources and the connections they sync through, keyed by kind.
type Factory struct {
	tables category.Tables
	plaid  connection.Connection
	linker Linker
}

// NewFactory wires the shared collaborators. plaid and linker may be nil when
// no aggregator credentials are configured; only plaid sources need them.
func NewFactory(tables category.Tables, plaid connection.Connection, linker Linker) *Factory {
	return &Factory{tables: tables, plaid: plaid, linker: linker}
}

func (f *Factory) Linker() Linker { return f.linker }

// Create builds a new source. For the aggregator this runs the link flow and
// freezes the account map from the first balance call.
func (f *Factory) Create(ctx context.Context, kind ledger.SourceKind, name string) (Source, error) {
	if name == "" {
		return nil, errors.New("create source: name is required")
	}

	table, err := f.tables.For(kind)
	if err != nil {
		return nil, fmt.Errorf("create source %s: %w", name, err)
	}

	if kind != ledger.KindPlaid {
		return &CSVSource{name: name, kind: kind, categories: table}, nil
	}

	if f.plaid == nil {
		return nil, fmt.Errorf("create source %s: %w", name, ErrNoAggregator)
	}

	if f.linker == nil {
		return nil, fmt.Errorf("create source %s: %w", name, ErrNoLinker)
	}

	token, err := f.linker.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("create source %s: link: %w", name, err)
	}

	balances, err := f.plaid.AccountBalances(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("create source %s: %w", name, err)
	}

	accounts := make(map[string]AccountRef, len(balances))
	for _, b := range balances {
		accounts[b.ID] = AccountRef{Name: b.DisplayName, Type: b.Type}
	}

	slog.Info("linked source", "source", name, "accounts", len(accounts))

	return &PlaidSource{name: name, accessToken: token, accounts: accounts, categories: table}, nil
}

// Deserialize rebuilds a source from its record without running the link flow.
func (f *Factory) Deserialize(r Record) (Source, error) {
	table, err := f.tables.For(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("deserialize source %s: %w", r.Name, err)
	}

	if r.Kind != ledger.KindPlaid {
		return &CSVSource{name: r.Name, kind: r.Kind, categories: table}, nil
	}

	accounts := make(map[string]AccountRef, len(r.Accounts))
	for _, a := range r.Accounts {
		accounts[a.ID] = AccountRef{Name: a.Name, Type: a.Type}
	}

	return &PlaidSource{name: r.Name, accessToken: r.AccessToken, accounts: accounts, categories: table}, nil
}

// Connection returns the connection a source of kind syncs through. CSV kinds
// need the path of the export being synced.
func (f *Factory) Connection(kind ledger.SourceKind, csvPath string) (connection.Connection, error) {
	if kind == ledger.KindPlaid {
		if f.plaid == nil {
			return nil, ErrNoAggregator
		}

		return f.plaid, nil
	}

	profile, err := cardcsv.ProfileFor(kind)
	if err != nil {
		return nil, err
	}

	if csvPath == "" {
		return nil, fmt.Errorf("%s connection: csv path is required", kind)
	}

	return cardcsv.New(profile, csvPath), nil
}
