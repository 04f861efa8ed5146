package main

import (
	"path/filepath"
	"testing"

	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/AmalFalah/expense-tracker/internal/session"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("session.file", path)
	return path
}

func TestInitClient(t *testing.T) {
	testSessionFile(t)
	viper.Set("api.base_url", "http://backend:8002")

	client, store, err := initClient()
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "http://backend:8002", client.BaseURL())
}

func TestInitClient_InvalidConfig(t *testing.T) {
	testSessionFile(t)
	viper.Set("api.base_url", "not a url ://")

	_, _, err := initClient()
	require.Error(t, err)
}

func TestRequireLogin(t *testing.T) {
	path := testSessionFile(t)
	store := session.NewStoreAt(path)

	_, err := requireLogin(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)
	assert.Contains(t, common.UserMessage(err), "spend login")

	require.NoError(t, store.Save(session.Session{
		Token: "jwt-token",
		User:  model.User{ID: 1, Email: "a@x.com", Role: model.RoleUser},
	}))

	sess, err := requireLogin(store)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", sess.User.Email)
}

func TestRequireAdmin_BlocksBeforeAnyRequest(t *testing.T) {
	path := testSessionFile(t)
	store := session.NewStoreAt(path)
	require.NoError(t, store.Save(session.Session{
		Token: "jwt-token",
		User:  model.User{ID: 1, Email: "u@x.com", Role: model.RoleUser},
	}))

	// The gate fails locally; no backend client is even constructed here,
	// so a non-admin can never issue an admin-only request through it.
	_, err := requireAdmin(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotAdmin)
	assert.Contains(t, common.UserMessage(err), "admin role")
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	path := testSessionFile(t)
	store := session.NewStoreAt(path)
	require.NoError(t, store.Save(session.Session{
		Token: "jwt-token",
		User:  model.User{ID: 1, Email: "admin@x.com", Role: model.RoleAdmin},
	}))

	sess, err := requireAdmin(store)
	require.NoError(t, err)
	assert.True(t, sess.User.IsAdmin())
}

func TestInitSessionStore_HonorsOverride(t *testing.T) {
	path := testSessionFile(t)

	store, err := initSessionStore()
	require.NoError(t, err)
	require.NoError(t, store.Save(session.Session{Token: "x"}))

	// The override path is the one that got written.
	assert.FileExists(t, path)
}
