package ledger

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account on the balance sheet.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
)

func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(s); t {
	case AccountTypeAsset, AccountTypeLiability:
		return t, nil
	}

	return "", fmt.Errorf("unknown account type %q", s)
}

// TransactionType carries the sign of a transaction. Amounts are stored unsigned.
type TransactionType string

const (
	TypeCredit TransactionType = "CREDIT"
	TypeDebit  TransactionType = "DEBIT"
)

// SourceKind identifies the upstream provider behind a source.
type SourceKind string

const (
	KindPlaid    SourceKind = "plaid"
	KindAmexCSV  SourceKind = "amex_csv"
	KindAppleCSV SourceKind = "apple_csv"
)

// Kinds lists every supported source kind.
var Kinds = []SourceKind{KindPlaid, KindAmexCSV, KindAppleCSV}

func ParseSourceKind(s string) (SourceKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedSourceKind, s)
}

// Account is a point-in-time balance snapshot. Name is its only identity.
type Account struct {
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

// Transaction is a canonical ledger entry.
type Transaction struct {
	Date        civil.Date
	Description string
	Amount      decimal.Decimal // always >= 0
	Category    string
	AccountName string
	Type        TransactionType
}

// SignedAmount returns the amount with DEBIT entries negated.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeDebit {
		return t.Amount.Neg()
	}

	return t.Amount
}

// SplitSigned applies the sign convention: a negative amount is a DEBIT and
// every other amount is a CREDIT. The returned amount is unsigned.
func SplitSigned(amount decimal.Decimal) (decimal.Decimal, TransactionType) {
	if amount.IsNegative() {
		return amount.Neg(), TypeDebit
	}

	return amount, TypeCredit
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// SingleLine folds line breaks into spaces. Ledger files hold one field per line.
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}
