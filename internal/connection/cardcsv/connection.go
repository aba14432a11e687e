package cardcsv

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	enc "github.com/MrJamesThe3rd/onm/internal/encoding"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// Connection reads a card export from disk. The file is parsed again on every
// call; the export carries no state of its own beyond the watermark the
// caller hands back.
type Connection struct {
	profile Profile
	path    string
	log     *slog.Logger
}

func New(p Profile, path string) *Connection {
	return &Connection{
		profile: p,
		path:    path,
		log:     slog.Default().With("connection", p.Name),
	}
}

// AccountBalances reports the single card account of the export. Exports
// carry no balance, so it is always zero.
func (c *Connection) AccountBalances(_ context.Context, _ string) ([]connection.AccountBalance, error) {
	return []connection.AccountBalance{{
		ID:          c.profile.Name,
		DisplayName: c.profile.Name,
		Type:        ledger.AccountTypeLiability,
		Balance:     decimal.Zero,
	}}, nil
}

// SyncTransactions returns the rows dated strictly after the watermark and a
// watermark at the newest of them. With nothing new, the given cursor is
// returned as is.
func (c *Connection) SyncTransactions(_ context.Context, cur cursor.Cursor, _ string) (*connection.SyncResult, error) {
	var (
		after    civil.Date
		hasAfter bool
	)

	if cur != nil {
		wm, ok := cur.(cursor.Watermark)
		if !ok {
			return nil, fmt.Errorf("%s export: %w: got %s", c.profile.Name, connection.ErrCursorMismatch, cur.Kind())
		}

		after, hasAfter = wm.LatestDate, true
	}

	rows, charset, err := c.read()
	if err != nil {
		return nil, err
	}

	res := &connection.SyncResult{Cursor: cur}

	var latest civil.Date

	for _, r := range rows {
		if hasAfter && !r.date.After(after) {
			continue
		}

		if len(res.Transactions) == 0 || r.date.After(latest) {
			latest = r.date
		}

		res.Transactions = append(res.Transactions, connection.RawTransaction{
			Date:             r.date,
			Description:      r.desc,
			Amount:           r.amount,
			Type:             r.typ,
			PrimaryCategory:  r.primary,
			DetailedCategory: r.detailed,
			AccountID:        c.profile.Name,
		})
	}

	if len(res.Transactions) > 0 {
		res.Cursor = cursor.Watermark{LatestDate: latest}
	}

	c.log.Debug("read export", "path", c.path, "charset", charset, "rows", len(rows), "new", len(res.Transactions))

	return res, nil
}

func (c *Connection) read() ([]row, enc.Charset, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, "", connection.Errorf("open "+c.profile.Name+" export", "%w", err)
	}
	defer f.Close()

	rows, charset, err := parse(c.profile, f)
	if err != nil {
		return nil, "", connection.Errorf("parse "+c.profile.Name+" export", "%s: %w", c.path, err)
	}

	return rows, charset, nil
}
