package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	session := &Session{
		Token: "tok",
		User:  User{ID: 7, Name: "Ada", Email: "ada@example.com", AssignedCourseIDs: []uint{2, 1}},
	}
	require.NoError(t, store.Save(session))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, session, loaded)
}

func TestSessionStoreLoadMissing(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreClear(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(&Session{Token: "tok"}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
