package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

// Accounts returns every account in file order.
func (s *Store) Accounts() ([]ledger.Account, error) {
	f, err := os.Open(s.accountsPath)
	if err != nil {
		return nil, fmt.Errorf("open accounts: %w", err)
	}
	defer f.Close()

	return decodeAccounts(s.accountsPath, f)
}

func (s *Store) Account(name string) (ledger.Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return ledger.Account{}, err
	}

	for _, a := range accounts {
		if a.Name == name {
			return a, nil
		}
	}

	return ledger.Account{}, fmt.Errorf("%w: %q", ledger.ErrAccountNotFound, name)
}

// AddAccount inserts a, or replaces the balance snapshot of the account with
// the same name.
func (s *Store) AddAccount(a ledger.Account) error {
	if err := singleLine(a.Name); err != nil {
		return fmt.Errorf("add account: %w", err)
	}

	accounts, err := s.Accounts()
	if err != nil {
		return err
	}

	replaced := false

	for i := range accounts {
		if accounts[i].Name == a.Name {
			accounts[i] = a
			replaced = true

			break
		}
	}

	if !replaced {
		accounts = append(accounts, a)
	}

	if err := writeFile(s.accountsPath, func(w io.Writer) error { return encodeAccounts(w, accounts) }); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}

	return nil
}

// UpdateAccount has the same upsert semantics as AddAccount.
func (s *Store) UpdateAccount(a ledger.Account) error {
	return s.AddAccount(a)
}

// encodeAccount renders "{TYPE} {name} ${balance}".
func encodeAccount(a ledger.Account) string {
	return fmt.Sprintf("%s %s $%s", a.Type, a.Name, a.Balance.String())
}

func encodeAccounts(w io.Writer, accounts []ledger.Account) error {
	bw := bufio.NewWriter(w)

	for _, a := range accounts {
		if _, err := fmt.Fprintln(bw, encodeAccount(a)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// decodeAccount parses one account line. The name may itself hold '$', so
// the balance is whatever follows the last one.
func decodeAccount(line string) (ledger.Account, error) {
	rawType, rest, ok := strings.Cut(line, " ")
	if !ok {
		return ledger.Account{}, fmt.Errorf("missing account name in %q", line)
	}

	typ, err := ledger.ParseAccountType(rawType)
	if err != nil {
		return ledger.Account{}, err
	}

	idx := strings.LastIndex(rest, "$")
	if idx < 0 {
		return ledger.Account{}, fmt.Errorf("missing balance in %q", line)
	}

	name := strings.TrimSpace(rest[:idx])
	if name == "" {
		return ledger.Account{}, fmt.Errorf("empty account name in %q", line)
	}

	balance, err := decimal.NewFromString(rest[idx+1:])
	if err != nil {
		return ledger.Account{}, fmt.Errorf("invalid balance in %q: %w", line, err)
	}

	return ledger.Account{Name: name, Type: typ, Balance: balance}, nil
}

func decodeAccounts(file string, r io.Reader) ([]ledger.Account, error) {
	var accounts []ledger.Account

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		a, err := decodeAccount(line)
		if err != nil {
			return nil, &RecordError{File: file, Line: lineNum, Err: err}
		}

		accounts = append(accounts, a)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	return accounts, nil
}
