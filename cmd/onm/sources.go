package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
)

type addSourceCmd struct {
	kind string
	name string
}

func (*addSourceCmd) Name() string     { return "add-source" }
func (*addSourceCmd) Synopsis() string { return "register a new source" }
func (*addSourceCmd) Usage() string {
	return `onm add-source [-kind <kind>] [-name <name>]

  Registers a source under a unique name. Missing values are prompted for.
  Aggregator sources open the link page in a browser.
`
}

func (c *addSourceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Source kind: "+kindList())
	f.StringVar(&c.name, "name", "", "Unique source name")
}

func (c *addSourceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind == "" || c.name == "" {
		if err := c.prompt(); err != nil {
			return fail(err)
		}
	}

	kind, err := ledger.ParseSourceKind(c.kind)
	if err != nil {
		return fail(err)
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	src, err := a.svc.AddSource(ctx, kind, c.name)
	if err != nil {
		return fail(err)
	}

	fmt.Println(titleStyle.Render("Added source"), src.Name(), faintStyle.Render("("+string(src.Kind())+")"))

	return subcommands.ExitSuccess
}

func (c *addSourceCmd) prompt() error {
	options := make([]huh.Option[string], 0, len(ledger.Kinds))
	for _, k := range ledger.Kinds {
		options = append(options, huh.NewOption(string(k), string(k)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source kind").
				Options(options...).
				Value(&c.kind),
			huh.NewInput().
				Title("Source name").
				Value(&c.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}

					return nil
				}),
		),
	).Run()
}

type updateSourceCmd struct {
	name string
}

func (*updateSourceCmd) Name() string     { return "update-source" }
func (*updateSourceCmd) Synopsis() string { return "re-authenticate an aggregator source" }
func (*updateSourceCmd) Usage() string {
	return `onm update-source -name <name>
`
}

func (c *updateSourceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Source name")
}

func (c *updateSourceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(errors.New("-name is required"))
	}

	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	if err := a.svc.UpdateSource(ctx, c.name); err != nil {
		return fail(err)
	}

	fmt.Println(titleStyle.Render("Updated source"), c.name)

	return subcommands.ExitSuccess
}

type sourcesCmd struct{}

func (*sourcesCmd) Name() string             { return "sources" }
func (*sourcesCmd) Synopsis() string         { return "list registered sources" }
func (*sourcesCmd) Usage() string            { return "onm sources\n" }
func (*sourcesCmd) SetFlags(_ *flag.FlagSet) {}

func (*sourcesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}

	srcs, err := a.store.Sources()
	if err != nil {
		return fail(err)
	}

	for _, s := range srcs {
		rec := s.Record()
		fmt.Printf("%s %s\n", s.Name(), faintStyle.Render(fmt.Sprintf("%s, %d accounts", s.Kind(), len(rec.Accounts))))
	}

	return subcommands.ExitSuccess
}

func kindList() string {
	kinds := make([]string, 0, len(ledger.Kinds))
	for _, k := range ledger.Kinds {
		kinds = append(kinds, string(k))
	}

	return strings.Join(kinds, ", ")
}
