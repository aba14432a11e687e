package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
	"github.com/MrJamesThe3rd/onm/internal/source"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=syncer
type Store interface {
	GetSource(name string) (source.Source, error)
	AddSource(src source.Source) error
	AddAccount(a ledger.Account) error
	AddTransactions(batch []ledger.Transaction) error
	SyncCursor(sourceName string) (cursor.Cursor, error)
	SetSyncCursor(sourceName string, c cursor.Cursor) error
}

// Sources builds sources and their connections.
type Sources interface {
	Create(ctx context.Context, kind ledger.SourceKind, name string) (source.Source, error)
	Connection(kind ledger.SourceKind, csvPath string) (connection.Connection, error)
	Linker() source.Linker
}

type Service struct {
	store   Store
	sources Sources
	log     *slog.Logger
}

func NewService(store Store, sources Sources) *Service {
	return &Service{store: store, sources: sources, log: slog.Default()}
}

// Report summarizes one sync pass.
type Report struct {
	RunID        string
	Accounts     []ledger.Account
	Transactions []ledger.Transaction
	Cursor       cursor.Cursor
}

// AddSource creates a source and registers it. The name is checked first so
// a taken name never starts the link flow.
func (s *Service) AddSource(ctx context.Context, kind ledger.SourceKind, name string) (source.Source, error) {
	if _, err := s.store.GetSource(name); err == nil {
		return nil, fmt.Errorf("add source: %w: %q", ledger.ErrSourceExists, name)
	} else if !errors.Is(err, ledger.ErrSourceNotFound) {
		return nil, fmt.Errorf("add source: %w", err)
	}

	src, err := s.sources.Create(ctx, kind, name)
	if err != nil {
		return nil, fmt.Errorf("add source: %w", err)
	}

	if err := s.store.AddSource(src); err != nil {
		return nil, fmt.Errorf("add source: %w", err)
	}

	s.log.Info("added source", "source", name, "kind", kind)

	return src, nil
}

// UpdateSource re-runs the link flow of an existing source, e.g. after the
// upstream asked for a fresh login.
func (s *Service) UpdateSource(ctx context.Context, name string) error {
	src, err := s.store.GetSource(name)
	if err != nil {
		return fmt.Errorf("update source: %w", err)
	}

	if err := src.UpdateLink(ctx, s.sources.Linker()); err != nil {
		return fmt.Errorf("update source: %w", err)
	}

	s.log.Info("updated source link", "source", name)

	return nil
}

// Sync runs one pass for the named source: balances are upserted, the new
// transactions are appended, and the cursor is saved last. csvPath is only
// used by CSV sources.
//
// The writes are independent: if saving the cursor fails after the
// transactions were written, the next pass fetches and appends them again.
func (s *Service) Sync(ctx context.Context, name, csvPath string) (*Report, error) {
	runID := uuid.NewString()
	log := s.log.With("run_id", runID, "source", name)

	src, err := s.store.GetSource(name)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", name, err)
	}

	conn, err := s.sources.Connection(src.Kind(), csvPath)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", name, err)
	}

	accounts, err := src.AccountBalances(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", name, err)
	}

	prev, err := s.store.SyncCursor(name)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", name, err)
	}

	log.Debug("starting sync", "kind", src.Kind(), "has_cursor", prev != nil)

	res, err := src.SyncTransactions(ctx, conn, prev)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", name, err)
	}

	for _, a := range accounts {
		if err := s.store.AddAccount(a); err != nil {
			return nil, fmt.Errorf("sync %s: %w", name, err)
		}
	}

	if err := s.store.AddTransactions(res.Transactions); err != nil {
		return nil, fmt.Errorf("sync %s: %w", name, err)
	}

	if res.Cursor != nil {
		if err := s.store.SetSyncCursor(name, res.Cursor); err != nil {
			log.Error("cursor not saved, next sync will repeat these transactions", "error", err)
			return nil, fmt.Errorf("sync %s: %w", name, err)
		}
	}

	log.Info("sync complete", "accounts", len(accounts), "transactions", len(res.Transactions))

	return &Report{
		RunID:        runID,
		Accounts:     accounts,
		Transactions: res.Transactions,
		Cursor:       res.Cursor,
	}, nil
}
