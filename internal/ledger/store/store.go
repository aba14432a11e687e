package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/onm/internal/ledger"
	"github.com/MrJamesThe3rd/onm/internal/source"
)

const (
	accountsFile     = "accounts"
	transactionsFile = "transactions"
	cursorsFile      = "cursors.csv"
	sourcesFile      = "sources.toml"
)

// Deserializer rebuilds a source from its registry record.
type Deserializer interface {
	Deserialize(r source.Record) (source.Source, error)
}

// Store is the plain-text ledger. Every read goes to disk and every write
// rewrites its whole file. It assumes a single writer.
type Store struct {
	accountsPath     string
	transactionsPath string
	cursorsPath      string
	sourcesPath      string
	sources          Deserializer
}

type Option func(*Store)

func WithAccountsPath(p string) Option     { return func(s *Store) { s.accountsPath = p } }
func WithTransactionsPath(p string) Option { return func(s *Store) { s.transactionsPath = p } }
func WithCursorsPath(p string) Option      { return func(s *Store) { s.cursorsPath = p } }
func WithSourcesPath(p string) Option      { return func(s *Store) { s.sourcesPath = p } }

// Open prepares the ledger under dir, creating any file that does not exist yet.
func Open(dir string, sources Deserializer, opts ...Option) (*Store, error) {
	s := &Store{
		accountsPath:     filepath.Join(dir, accountsFile),
		transactionsPath: filepath.Join(dir, transactionsFile),
		cursorsPath:      filepath.Join(dir, cursorsFile),
		sourcesPath:      filepath.Join(dir, sourcesFile),
		sources:          sources,
	}

	for _, opt := range opts {
		opt(s)
	}

	initial := []struct {
		path    string
		content string
	}{
		{s.accountsPath, ""},
		{s.transactionsPath, ""},
		{s.cursorsPath, cursorHeader},
		{s.sourcesPath, ""},
	}

	for _, f := range initial {
		if err := initFile(f.path, f.content); err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
	}

	return s, nil
}

func initFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0o600)
}

// writeFile replaces path with what encode writes, via a temp file and rename
// so a failed encode leaves the previous content in place.
func writeFile(path string, encode func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// RecordError points at a line of a ledger file that does not parse.
type RecordError struct {
	File string
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ledger.ErrMalformedRecord, e.Err}
}

func malformed(file string, line int, format string, args ...any) *RecordError {
	return &RecordError{File: file, Line: line, Err: fmt.Errorf(format, args...)}
}

// singleLine rejects values that would split a record over several lines.
func singleLine(fields ...string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return fmt.Errorf("%w: line break in %q", ledger.ErrMalformedRecord, f)
		}
	}

	return nil
}
