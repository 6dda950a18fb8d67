package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionValidation(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.CreateCategory("work", 10))
	require.NoError(t, a.CreateTag("deep"))

	for _, duration := range []int{0, 10, 23, -15} {
		_, err := a.StartSession("review", "work", nil, duration)
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", duration)
	}

	_, err := a.StartSession("review", "nope", nil, 60)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = a.StartSession("review", "work", []string{"deep", "nope"}, 60)
	assert.ErrorIs(t, err, ErrTagNotFound)

	assert.Empty(t, a.store.Data.Sessions)
}

func TestStartSession(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.CreateCategory("work", 10))
	require.NoError(t, a.CreateTag("deep"))

	session, err := a.StartSession("review", "work", []string{"deep"}, 45)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "review", session.Title)
	assert.Equal(t, "work", session.Category)
	assert.Equal(t, []string{"deep"}, session.Tags)
	assert.Equal(t, testNow, session.Start)
	require.NotNil(t, session.End)
	assert.Equal(t, testNow.Add(45*time.Minute), *session.End)
	assert.Equal(t, 45, session.Duration)

	// ids must stay unique across sessions
	other, err := a.StartSession("mail", "work", nil, 15)
	require.NoError(t, err)
	assert.NotEqual(t, session.ID, other.ID)
}

func TestEndSessionRoundsDown(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"ended early at 22min", 22 * time.Minute, 15},
		{"exactly 45min", 45 * time.Minute, 45},
		{"under one slot", 14 * time.Minute, 0},
		{"exactly 30min", 30 * time.Minute, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			require.NoError(t, a.CreateCategory("work", 10))

			session, err := a.StartSession("review", "work", nil, 60)
			require.NoError(t, err)

			a.now = func() time.Time { return testNow.Add(tt.elapsed) }

			ended, err := a.EndSession(session.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ended.Duration)
			require.NotNil(t, ended.End)
			assert.Equal(t, testNow.Add(tt.elapsed), *ended.End)
		})
	}
}

func TestEndSessionRequiresFullID(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.CreateCategory("work", 10))

	session, err := a.StartSession("review", "work", nil, 60)
	require.NoError(t, err)

	_, err = a.EndSession(session.ID[:8])
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = a.EndSession(session.ID)
	assert.NoError(t, err)
}

func TestDeleteSession(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.CreateCategory("work", 10))

	_, err := a.DeleteSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session, err := a.StartSession("review", "work", nil, 60)
	require.NoError(t, err)
	id := session.ID

	// declined confirmation keeps the session, on disk too
	a.confirm = func(string) bool { return false }
	before := fileBytes(t, a)

	deleted, err := a.DeleteSession(id)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, a.store.Data.Sessions, 1)
	assert.Equal(t, before, fileBytes(t, a))

	a.confirm = func(string) bool { return true }
	deleted, err = a.DeleteSession(id)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, a.store.Data.Sessions)
}

func TestDeleteSessionByPrefix(t *testing.T) {
	a := newTestApp(t)
	a.store.Data.Sessions = []Session{
		{ID: "aaa111", Title: "one", Category: "work", Start: testNow},
		{ID: "aab222", Title: "two", Category: "work", Start: testNow},
	}

	// ambiguous prefix is rejected and nothing is removed
	_, err := a.DeleteSession("aa")
	assert.ErrorIs(t, err, ErrAmbiguousID)
	assert.Len(t, a.store.Data.Sessions, 2)

	// unique prefix resolves
	deleted, err := a.DeleteSession("aab")
	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, a.store.Data.Sessions, 1)
	assert.Equal(t, "aaa111", a.store.Data.Sessions[0].ID)
}

func TestDeleteSessionExactMatchBeatsPrefix(t *testing.T) {
	a := newTestApp(t)
	a.store.Data.Sessions = []Session{
		{ID: "aaa", Title: "exact", Category: "work", Start: testNow},
		{ID: "aaa111", Title: "longer", Category: "work", Start: testNow},
	}

	deleted, err := a.DeleteSession("aaa")
	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, a.store.Data.Sessions, 1)
	assert.Equal(t, "aaa111", a.store.Data.Sessions[0].ID)
}

func TestListSessionsKeepsInsertionOrder(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.CreateCategory("work", 10))

	first, err := a.StartSession("one", "work", nil, 15)
	require.NoError(t, err)
	second, err := a.StartSession("two", "work", nil, 15)
	require.NoError(t, err)

	sessions := a.ListSessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)
}
