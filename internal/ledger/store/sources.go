package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
	"github.com/MrJamesThe3rd/onm/internal/source"
)

// sourceEntry is one table of sources.toml, keyed by source name.
type sourceEntry struct {
	Type         string         `toml:"type"`
	AccessToken  string         `toml:"access_token,omitempty"`
	AccountIDMap []accountEntry `toml:"account_id_map,inline,multiline,omitempty"`
}

type accountEntry struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Type string `toml:"type"`
}

func (s *Store) GetSource(name string) (source.Source, error) {
	entries, err := s.sourceEntries()
	if err != nil {
		return nil, err
	}

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ledger.ErrSourceNotFound, name)
	}

	return s.rebuild(name, e)
}

// Sources returns every registered source ordered by name.
func (s *Store) Sources() ([]source.Source, error) {
	entries, err := s.sourceEntries()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}

	sort.Strings(names)

	out := make([]source.Source, 0, len(names))

	for _, name := range names {
		src, err := s.rebuild(name, entries[name])
		if err != nil {
			return nil, err
		}

		out = append(out, src)
	}

	return out, nil
}

// AddSource registers src. Names are unique.
func (s *Store) AddSource(src source.Source) error {
	entries, err := s.sourceEntries()
	if err != nil {
		return err
	}

	if _, ok := entries[src.Name()]; ok {
		return fmt.Errorf("%w: %q", ledger.ErrSourceExists, src.Name())
	}

	entries[src.Name()] = entryFromRecord(src.Record())

	if err := writeFile(s.sourcesPath, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(entries)
	}); err != nil {
		return fmt.Errorf("write sources: %w", err)
	}

	return nil
}

func (s *Store) sourceEntries() (map[string]sourceEntry, error) {
	raw, err := os.ReadFile(s.sourcesPath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	entries := map[string]sourceEntry{}

	if err := toml.Unmarshal(raw, &entries); err != nil {
		line := 0

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			line, _ = derr.Position()
		}

		return nil, &RecordError{File: s.sourcesPath, Line: line, Err: err}
	}

	return entries, nil
}

func (s *Store) rebuild(name string, e sourceEntry) (source.Source, error) {
	rec, err := recordFromEntry(name, e)
	if err != nil {
		return nil, &RecordError{File: s.sourcesPath, Err: err}
	}

	src, err := s.sources.Deserialize(rec)
	if err != nil {
		return nil, fmt.Errorf("load source %s: %w", name, err)
	}

	return src, nil
}

func entryFromRecord(r source.Record) sourceEntry {
	e := sourceEntry{Type: string(r.Kind), AccessToken: r.AccessToken}

	for _, a := range r.Accounts {
		e.AccountIDMap = append(e.AccountIDMap, accountEntry{ID: a.ID, Name: a.Name, Type: string(a.Type)})
	}

	return e
}

func recordFromEntry(name string, e sourceEntry) (source.Record, error) {
	kind, err := ledger.ParseSourceKind(e.Type)
	if err != nil {
		return source.Record{}, fmt.Errorf("source %s: %w", name, err)
	}

	rec := source.Record{Kind: kind, Name: name, AccessToken: e.AccessToken}

	for _, a := range e.AccountIDMap {
		typ, err := ledger.ParseAccountType(a.Type)
		if err != nil {
			return source.Record{}, fmt.Errorf("source %s account %s: %w", name, a.ID, err)
		}

		rec.Accounts = append(rec.Accounts, source.AccountRecord{ID: a.ID, Name: a.Name, Type: typ})
	}

	return rec, nil
}
