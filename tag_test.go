package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.CreateTag("deep"))
	assert.Equal(t, []Tag{{Name: "deep"}}, a.store.Data.Tags)

	assert.ErrorIs(t, a.CreateTag("deep"), ErrDuplicateName)
	assert.Len(t, a.store.Data.Tags, 1)
}

func TestTagLimit(t *testing.T) {
	a := newTestApp(t)

	for i := 0; i < TagLimit; i++ {
		require.NoError(t, a.CreateTag(fmt.Sprintf("tag-%d", i)))
	}

	err := a.CreateTag("one-too-many")
	assert.ErrorIs(t, err, ErrTagLimitExceeded)
	assert.Len(t, a.store.Data.Tags, TagLimit)
}

func TestDeleteTag(t *testing.T) {
	a := newTestApp(t)

	_, err := a.DeleteTag("deep")
	assert.ErrorIs(t, err, ErrTagNotFound)

	require.NoError(t, a.CreateTag("deep"))

	deleted, err := a.DeleteTag("deep")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, a.store.Data.Tags)
}

func TestDeleteTagReferencedBySession(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.CreateCategory("work", 10))
	require.NoError(t, a.CreateTag("deep"))
	_, err := a.StartSession("review", "work", []string{"deep"}, 60)
	require.NoError(t, err)

	a.confirm = func(string) bool { return false }
	before := fileBytes(t, a)

	deleted, err := a.DeleteTag("deep")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, a.store.Data.Tags, 1)
	assert.Equal(t, before, fileBytes(t, a))

	a.confirm = func(string) bool { return true }
	deleted, err = a.DeleteTag("deep")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, a.store.Data.Tags)
	assert.Equal(t, []string{"deep"}, a.store.Data.Sessions[0].Tags)
}

func TestListTags(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.CreateTag("deep"))
	require.NoError(t, a.CreateTag("meeting"))

	list := a.ListTags()
	assert.Equal(t, []Tag{{Name: "deep"}, {Name: "meeting"}}, list.Tags)
	assert.Equal(t, TagLimit, list.Limit)
}
