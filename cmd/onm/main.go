package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/onm/internal/category"
	"github.com/MrJamesThe3rd/onm/internal/config"
	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/connection/plaidconn"
	"github.com/MrJamesThe3rd/onm/internal/ledger/store"
	"github.com/MrJamesThe3rd/onm/internal/link"
	"github.com/MrJamesThe3rd/onm/internal/source"
	"github.com/MrJamesThe3rd/onm/internal/syncer"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, "onm")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&addSourceCmd{}, "sources")
	commander.Register(&updateSourceCmd{}, "sources")
	commander.Register(&sourcesCmd{}, "sources")
	commander.Register(&syncSourceCmd{}, "sync")
	commander.Register(&accountsCmd{}, "ledger")
	commander.Register(&transactionsCmd{}, "ledger")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)

	stop()
	os.Exit(int(status))
}

type app struct {
	store *store.Store
	svc   *syncer.Service
}

// newApp loads the configuration and wires the ledger. The aggregator is only
// wired when its credentials are set; CSV sources work without it.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var (
		plaid  connection.Connection
		linker source.Linker
	)

	if cfg.PlaidEnabled() {
		client, err := plaidconn.NewClient(plaidconn.Config{
			ClientID:    cfg.Plaid.ClientID,
			Secret:      cfg.Plaid.Secret,
			Environment: cfg.Plaid.Env,
			Timeout:     cfg.Plaid.Timeout,
		})
		if err != nil {
			return nil, err
		}

		plaid = plaidconn.New(client)
		linker = link.NewServer(client, cfg.LinkAddr(), link.WithOnReady(func(url string) {
			fmt.Println(titleStyle.Render("Open this page to link your institution:"), url)
		}))
	}

	factory := source.NewFactory(category.DefaultTables(), plaid, linker)

	st, err := store.Open(cfg.Ledger.Dir, factory, ledgerOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	slog.Debug("opened ledger", "dir", cfg.Ledger.Dir, "plaid", cfg.PlaidEnabled())

	return &app{store: st, svc: syncer.NewService(st, factory)}, nil
}

func ledgerOptions(cfg *config.Config) []store.Option {
	var opts []store.Option

	if p := cfg.Ledger.AccountsPath; p != "" {
		opts = append(opts, store.WithAccountsPath(p))
	}

	if p := cfg.Ledger.TransactionsPath; p != "" {
		opts = append(opts, store.WithTransactionsPath(p))
	}

	if p := cfg.Ledger.CursorsPath; p != "" {
		opts = append(opts, store.WithCursorsPath(p))
	}

	if p := cfg.Ledger.SourcesPath; p != "" {
		opts = append(opts, store.WithSourcesPath(p))
	}

	return opts
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, errStyle.Render("error: "+err.Error()))
	return subcommands.ExitFailure
}
