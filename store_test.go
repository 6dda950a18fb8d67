package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFile(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nope", "data.json"))
	require.NoError(t, err)

	assert.Empty(t, store.Data.Categories)
	assert.Empty(t, store.Data.Tags)
	assert.Empty(t, store.Data.Sessions)
	assert.Nil(t, store.Data.TotalWeeklyQuota)
}

func TestOpenInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestSaveRoundTrip(t *testing.T) {
	// path in a directory that does not exist yet; Save must create it
	path := filepath.Join(t.TempDir(), "share", "metron", "data.json")

	store, err := Open(path)
	require.NoError(t, err)

	quota := 20
	end := time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC)
	store.Data.Categories = []Category{{Name: "work", WeeklyQuota: 10}}
	store.Data.Tags = []Tag{{Name: "deep"}}
	store.Data.Sessions = []Session{{
		ID:       "abc",
		Title:    "review",
		Category: "work",
		Tags:     []string{"deep"},
		Start:    time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		End:      &end,
		Duration: 60,
	}}
	store.Data.TotalWeeklyQuota = &quota

	require.NoError(t, store.Save())

	loaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, store.Data, loaded.Data)
}
