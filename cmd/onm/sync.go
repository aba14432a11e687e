package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/subcommands"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

type syncSourceCmd struct {
	name string
	csv  string
}

func (*syncSourceCmd) Name() string     { return "sync-source" }
func (*syncSourceCmd) Synopsis() string { return "pull new balances and transactions for a source" }
func (*syncSourceCmd) Usage() string {
	return `onm sync-source -name <name> [-csv <export.csv>]

  Runs one sync pass. CSV sources read the export given with -csv; only rows
  newer than the last synced date are added.
`
}

func (c *syncSourceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Source name")
	f.StringVar(&c.csv, "csv", "", "Path to the card export (CSV sources only)")
}

func (c *syncSourceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(errors.New("-name is required"))
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	report, err := a.svc.Sync(ctx, c.name, c.csv)
	if err != nil {
		var cerr *connection.Error
		if errors.As(err, &cerr) && cerr.LoginRequired() {
			fmt.Fprintln(os.Stderr, faintStyle.Render(fmt.Sprintf("hint: run `onm update-source -name %s` to log in again", c.name)))
		}

		return fail(err)
	}

	fmt.Println(titleStyle.Render("Synced " + c.name))

	for _, acc := range report.Accounts {
		fmt.Printf("  %-30s %s\n", acc.Name, balance(acc))
	}

	fmt.Println(faintStyle.Render(fmt.Sprintf("  %d new transactions, run %s", len(report.Transactions), report.RunID)))

	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "list account balances" }
func (*accountsCmd) Usage() string            { return "onm accounts\n" }
func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	accounts, err := a.store.Accounts()
	if err != nil {
		return fail(err)
	}

	for _, acc := range accounts {
		fmt.Printf("%-10s %-30s %s\n", faintStyle.Render(string(acc.Type)), acc.Name, balance(acc))
	}

	return subcommands.ExitSuccess
}

type transactionsCmd struct {
	limit int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list stored transactions, newest first" }
func (*transactionsCmd) Usage() string    { return "onm transactions [-n <count>]\n" }

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "Number of transactions to show, 0 for all")
}

func (c *transactionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	txs, err := a.store.Transactions()
	if err != nil {
		return fail(err)
	}

	if c.limit > 0 && len(txs) > c.limit {
		txs = txs[:c.limit]
	}

	for _, tx := range txs {
		fmt.Printf("%s %-24s %12s  %s %s\n",
			tx.Date, tx.AccountName, tx.SignedAmount().StringFixed(2), tx.Description, faintStyle.Render(tx.Category))
	}

	return subcommands.ExitSuccess
}

func balance(acc ledger.Account) string {
	style := lipgloss.NewStyle()
	if acc.Type == ledger.AccountTypeLiability {
		style = style.Foreground(lipgloss.Color("214"))
	}

	return style.Render("$" + acc.Balance.StringFixed(2))
}
