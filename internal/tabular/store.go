// Package tabular persists each record collection as one CSV file, read and
// rewritten wholesale. There is no merge or partial update: the last save of
// a collection wins over the whole file.
package tabular

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Record is one flat row: field name to text value.
type Record = map[string]string

// Collection describes a persisted collection: its file, its canonical
// columns, and the rows to seed an absent file with.
type Collection struct {
	Key      string
	Filename string
	Columns  []string
	Seed     []Record
}

type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore opens (creating if needed) the data directory holding the
// collection files.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, c.Filename)
}

// Load reads a whole collection. An absent or empty file is created with the
// canonical header plus any seed rows, and the seeds are returned. Canonical
// columns missing from an existing file are widened onto every record with an
// empty value; columns unknown to the schema are kept as-is.
//
// A file that cannot be read or parsed degrades to an empty collection with a
// logged warning. Callers see "no rows", never an error.
func (s *Store) Load(c Collection) []Record {
	path := s.path(c)

	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		if serr := s.Save(c, c.Seed); serr != nil {
			s.logger.Warn("failed to create collection file", "collection", c.Key, "error", serr)
			return []Record{}
		}
		return cloneRecords(c.Seed)
	}
	if err != nil {
		s.logger.Warn("failed to stat collection file", "collection", c.Key, "error", err)
		return []Record{}
	}

	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("failed to open collection file", "collection", c.Key, "error", err)
		return []Record{}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("failed to close collection file", "collection", c.Key, "error", cerr)
		}
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		s.logger.Warn("failed to parse collection file", "collection", c.Key, "error", err)
		return []Record{}
	}
	if len(rows) == 0 {
		return []Record{}
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(c.Columns))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		// Schema widening: every canonical column exists after load.
		for _, col := range c.Columns {
			if _, ok := rec[col]; !ok {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Save overwrites the whole collection file with the given records: header
// first, then one row per record in order. Canonical columns come first;
// extra fields present on any record follow in sorted order.
func (s *Store) Save(c Collection, records []Record) error {
	columns := saveColumns(c, records)

	tmp, err := os.CreateTemp(s.dir, c.Filename+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", c.Key, err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	writeErr := w.Write(columns)
	if writeErr == nil {
		row := make([]string, len(columns))
		for _, rec := range records {
			for i, col := range columns {
				row[i] = rec[col]
			}
			if writeErr = w.Write(row); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if cerr := tmp.Close(); writeErr == nil {
		writeErr = cerr
	}
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", c.Key, writeErr)
	}
	if err := os.Rename(tmpName, s.path(c)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", c.Key, err)
	}
	return nil
}

func saveColumns(c Collection, records []Record) []string {
	columns := append([]string(nil), c.Columns...)
	known := make(map[string]bool, len(columns))
	for _, col := range columns {
		known[col] = true
	}
	var extras []string
	for _, rec := range records {
		for col := range rec {
			if !known[col] {
				known[col] = true
				extras = append(extras, col)
			}
		}
	}
	sort.Strings(extras)
	return append(columns, extras...)
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		cp := make(Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
