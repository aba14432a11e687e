package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MrJamesThe3rd/onm/internal/cursor"
)

const cursorHeader = "name,type,data\n"

type cursorRow struct {
	name string
	kind cursor.Kind
	data map[string]string
}

// SyncCursor returns the cursor stored for a source, or nil if the source has
// never been synced.
func (s *Store) SyncCursor(sourceName string) (cursor.Cursor, error) {
	rows, err := s.cursorRows()
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		if r.name != sourceName {
			continue
		}

		c, err := cursor.Deserialize(string(r.kind), r.data)
		if err != nil {
			return nil, fmt.Errorf("cursor for %s: %w", sourceName, err)
		}

		return c, nil
	}

	return nil, nil
}

// SetSyncCursor replaces the cursor stored for a source.
func (s *Store) SetSyncCursor(sourceName string, c cursor.Cursor) error {
	rows, err := s.cursorRows()
	if err != nil {
		return err
	}

	kind, data := cursor.Serialize(c)
	updated := cursorRow{name: sourceName, kind: kind, data: data}

	replaced := false

	for i := range rows {
		if rows[i].name == sourceName {
			rows[i] = updated
			replaced = true

			break
		}
	}

	if !replaced {
		rows = append(rows, updated)
	}

	if err := writeFile(s.cursorsPath, func(w io.Writer) error { return encodeCursors(w, rows) }); err != nil {
		return fmt.Errorf("write cursors: %w", err)
	}

	return nil
}

func (s *Store) cursorRows() ([]cursorRow, error) {
	f, err := os.Open(s.cursorsPath)
	if err != nil {
		return nil, fmt.Errorf("open cursors: %w", err)
	}
	defer f.Close()

	return decodeCursors(s.cursorsPath, f)
}

func encodeCursors(w io.Writer, rows []cursorRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "type", "data"}); err != nil {
		return err
	}

	for _, r := range rows {
		data, err := json.Marshal(r.data)
		if err != nil {
			return fmt.Errorf("encode cursor %s: %w", r.name, err)
		}

		if err := cw.Write([]string{r.name, string(r.kind), string(data)}); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func decodeCursors(file string, r io.Reader) ([]cursorRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	records, err := cr.ReadAll()
	if err != nil {
		line := 0

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			line = perr.Line
		}

		return nil, &RecordError{File: file, Line: line, Err: err}
	}

	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]cursorRow, 0, len(records)-1)

	// Line 1 is the header.
	for i, rec := range records[1:] {
		var data map[string]string
		if err := json.Unmarshal([]byte(rec[2]), &data); err != nil {
			return nil, malformed(file, i+2, "cursor data for %s: %v", rec[0], err)
		}

		rows = append(rows, cursorRow{name: rec[0], kind: cursor.Kind(rec[1]), data: data})
	}

	return rows, nil
}
