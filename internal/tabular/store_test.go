package tabular

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCollection = Collection{
	Key:      "widgets",
	Filename: "widgets.csv",
	Columns:  []string{"id", "name", "qty", "notes"},
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileCreatesEmpty(t *testing.T) {
	s := newTestStore(t)

	records := s.Load(testCollection)
	assert.Empty(t, records)

	// The file now exists with the canonical header.
	data, err := os.ReadFile(filepath.Join(s.dir, testCollection.Filename))
	require.NoError(t, err)
	assert.Equal(t, "id,name,qty,notes\n", string(data))
}

func TestLoadMissingFileReturnsSeed(t *testing.T) {
	s := newTestStore(t)
	seeded := testCollection
	seeded.Seed = []Record{
		{"id": "1", "name": "Roller", "qty": "10", "notes": ""},
		{"id": "2", "name": "Brush", "qty": "25", "notes": ""},
	}

	records := s.Load(seeded)
	require.Len(t, records, 2)
	assert.Equal(t, "Roller", records[0]["name"])

	// A second load parses the created file and sees the same rows.
	again := s.Load(seeded)
	assert.Equal(t, records, again)
}

func TestLoadEmptyFileSeeds(t *testing.T) {
	s := newTestStore(t)
	seeded := testCollection
	seeded.Seed = []Record{{"id": "1", "name": "Roller", "qty": "10", "notes": ""}}

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, seeded.Filename), nil, 0o644))

	records := s.Load(seeded)
	require.Len(t, records, 1)
	assert.Equal(t, "Roller", records[0]["name"])
}

func TestLoadWidensMissingColumns(t *testing.T) {
	s := newTestStore(t)
	// A file written by an older revision without the notes column.
	old := "id,name,qty\n1,Roller,10\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, testCollection.Filename), []byte(old), 0o644))

	records := s.Load(testCollection)
	require.Len(t, records, 1)
	val, ok := records[0]["notes"]
	assert.True(t, ok, "canonical column widened onto the record")
	assert.Equal(t, "", val)
	assert.Equal(t, "Roller", records[0]["name"])
}

func TestLoadKeepsUnknownColumns(t *testing.T) {
	s := newTestStore(t)
	data := "id,name,qty,notes,legacy\n1,Roller,10,,old-value\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, testCollection.Filename), []byte(data), 0o644))

	records := s.Load(testCollection)
	require.Len(t, records, 1)
	assert.Equal(t, "old-value", records[0]["legacy"])

	// Saving keeps the extra column after the canonical ones.
	require.NoError(t, s.Save(testCollection, records))
	out, err := os.ReadFile(filepath.Join(s.dir, testCollection.Filename))
	require.NoError(t, err)
	assert.Equal(t, "id,name,qty,notes,legacy\n1,Roller,10,,old-value\n", string(out))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := []Record{
		{"id": "1", "name": "Roller", "qty": "10", "notes": "shelf A"},
		{"id": "2", "name": "Brush, fine", "qty": "3,5", "notes": ""},
	}

	require.NoError(t, s.Save(testCollection, records))
	got := s.Load(testCollection)
	assert.Equal(t, records, got)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(testCollection, []Record{
		{"id": "1", "name": "Roller", "qty": "10", "notes": ""},
		{"id": "2", "name": "Brush", "qty": "25", "notes": ""},
	}))
	require.NoError(t, s.Save(testCollection, []Record{
		{"id": "2", "name": "Brush", "qty": "24", "notes": ""},
	}))

	got := s.Load(testCollection)
	require.Len(t, got, 1)
	assert.Equal(t, "24", got[0]["qty"])
}

func TestLoadMalformedFileDegradesToEmpty(t *testing.T) {
	s := newTestStore(t)
	bad := "id,name,qty,notes\n\"unterminated\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, testCollection.Filename), []byte(bad), 0o644))

	records := s.Load(testCollection)
	assert.Empty(t, records)
}
