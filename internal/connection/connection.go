package connection

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

var (
	// ErrConnection is matched by every *Error.
	ErrConnection = errors.New("connection error")
	// ErrCursorMismatch is returned when a connection is handed a cursor of another kind.
	ErrCursorMismatch = errors.New("cursor does not belong to this connection")
)

// AccountBalance is one upstream account as reported by a connection.
type AccountBalance struct {
	ID          string
	DisplayName string
	Type        ledger.AccountType
	Balance     decimal.Decimal
}

// RawTransaction is a transaction before it is attached to a ledger account.
// Categories are still the upstream's own labels.
type RawTransaction struct {
	Date             civil.Date
	Description      string
	Amount           decimal.Decimal // unsigned
	Type             ledger.TransactionType
	PrimaryCategory  string
	DetailedCategory string
	AccountID        string
}

// SyncResult is an incremental batch and the cursor to resume from. Cursor is
// nil only when the caller passed a nil cursor and nothing was returned.
type SyncResult struct {
	Transactions []RawTransaction
	Cursor       cursor.Cursor
}

// Connection talks to one upstream. The credential is empty for CSV exports.
//
//go:generate mockgen -source=connection.go -destination=connection_mock.go -package=connection
type Connection interface {
	AccountBalances(ctx context.Context, credential string) ([]AccountBalance, error)
	SyncTransactions(ctx context.Context, c cursor.Cursor, credential string) (*SyncResult, error)
}

// Error describes a failed upstream call.
type Error struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Code != "" {
		msg += ": " + e.Code
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConnection}
	}

	return []error{ErrConnection, e.Err}
}

// LoginRequired reports whether the upstream wants the user to re-authenticate.
func (e *Error) LoginRequired() bool {
	return e.Code == "ITEM_LOGIN_REQUIRED"
}

// Errorf builds an *Error for op around a formatted cause.
func Errorf(op, format string, args ...any) *Error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}
