package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testNow is a Wednesday, 2025-03-12 10:00 UTC. The preceding Monday is
// 2025-03-10 00:00 UTC.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

// newTestApp builds an App on a store in a temp directory with a fixed
// clock and a confirm function that always accepts. Tests override
// confirm and now as needed.
func newTestApp(t *testing.T) *App {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	return &App{
		store:   store,
		confirm: func(string) bool { return true },
		now:     func() time.Time { return testNow },
	}
}

// fileBytes reads the persisted snapshot for unchanged-on-disk checks.
func fileBytes(t *testing.T, a *App) []byte {
	t.Helper()

	raw, err := os.ReadFile(a.store.path)
	require.NoError(t, err)
	return raw
}
