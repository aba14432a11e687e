package ledger

import "errors"

var (
	ErrUnsupportedSourceKind = errors.New("unsupported source kind")
	ErrAccountNotFound       = errors.New("account not found")
	ErrSourceNotFound        = errors.New("source not found")
	ErrSourceExists          = errors.New("source already exists")
	ErrMalformedRecord       = errors.New("malformed ledger record")
)
