package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

const indent = "    "

// Transactions returns every stored transaction, newest first.
func (s *Store) Transactions() ([]ledger.Transaction, error) {
	f, err := os.Open(s.transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("open transactions: %w", err)
	}
	defer f.Close()

	return decodeTransactions(s.transactionsPath, f)
}

// AddTransactions appends batch. Nothing is deduplicated; the caller hands in
// only what a cursor-bounded sync returned.
func (s *Store) AddTransactions(batch []ledger.Transaction) error {
	if len(batch) == 0 {
		return nil
	}

	for _, tx := range batch {
		if err := singleLine(tx.AccountName, tx.Description, tx.Category); err != nil {
			return fmt.Errorf("add transaction dated %s: %w", tx.Date, err)
		}
	}

	txs, err := s.Transactions()
	if err != nil {
		return err
	}

	txs = append(txs, batch...)

	// Newest first; same-day entries keep their relative order.
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })

	if err := writeFile(s.transactionsPath, func(w io.Writer) error { return encodeTransactions(w, txs) }); err != nil {
		return fmt.Errorf("write transactions: %w", err)
	}

	return nil
}

// encodeTransaction renders the three-line block plus its blank separator:
//
//	2024-03-12 amex $-5
//	    VERIZON WIRELESS
//	    RENT_AND_UTILITIES:TELEPHONE
func encodeTransaction(w io.Writer, tx ledger.Transaction) error {
	_, err := fmt.Fprintf(w, "%s %s $%s\n%s%s\n%s%s\n\n",
		tx.Date, tx.AccountName, tx.SignedAmount().String(),
		indent, tx.Description,
		indent, tx.Category,
	)

	return err
}

func encodeTransactions(w io.Writer, txs []ledger.Transaction) error {
	bw := bufio.NewWriter(w)

	for _, tx := range txs {
		if err := encodeTransaction(bw, tx); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func decodeHeader(line string) (civil.Date, string, decimal.Decimal, error) {
	rawDate, rest, ok := strings.Cut(line, " ")
	if !ok {
		return civil.Date{}, "", decimal.Decimal{}, fmt.Errorf("incomplete header %q", line)
	}

	date, err := civil.ParseDate(rawDate)
	if err != nil {
		return civil.Date{}, "", decimal.Decimal{}, fmt.Errorf("invalid date in %q: %w", line, err)
	}

	idx := strings.LastIndex(rest, "$")
	if idx < 0 {
		return civil.Date{}, "", decimal.Decimal{}, fmt.Errorf("missing amount in %q", line)
	}

	account := strings.TrimSpace(rest[:idx])
	if account == "" {
		return civil.Date{}, "", decimal.Decimal{}, fmt.Errorf("empty account name in %q", line)
	}

	amount, err := decimal.NewFromString(rest[idx+1:])
	if err != nil {
		return civil.Date{}, "", decimal.Decimal{}, fmt.Errorf("invalid amount in %q: %w", line, err)
	}

	return date, account, amount, nil
}

func decodeTransactions(file string, r io.Reader) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction

	scanner := bufio.NewScanner(r)
	lineNum := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}

		lineNum++

		return scanner.Text(), true
	}

	for {
		header, ok := next()
		if !ok {
			break
		}

		if strings.TrimSpace(header) == "" {
			continue
		}

		headerLine := lineNum

		date, account, signed, err := decodeHeader(header)
		if err != nil {
			return nil, &RecordError{File: file, Line: headerLine, Err: err}
		}

		desc, ok := next()
		if !ok || !strings.HasPrefix(desc, indent) {
			return nil, malformed(file, headerLine+1, "expected indented description")
		}

		cat, ok := next()
		if !ok || !strings.HasPrefix(cat, indent) {
			return nil, malformed(file, headerLine+2, "expected indented category")
		}

		amount, typ := ledger.SplitSigned(signed)

		txs = append(txs, ledger.Transaction{
			Date:        date,
			Description: strings.TrimPrefix(desc, indent),
			Amount:      amount,
			Category:    strings.TrimPrefix(cat, indent),
			AccountName: account,
			Type:        typ,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	return txs, nil
}
