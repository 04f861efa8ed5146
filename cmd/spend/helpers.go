package main

import (
	"fmt"

	"github.com/AmalFalah/expense-tracker/internal/api"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/config"
	"github.com/AmalFalah/expense-tracker/internal/session"
)

// initClient builds the backend client and the session store it reads its
// bearer token from.
func initClient() (*api.Client, *session.Store, error) {
	cfg, err := config.LoadAPIConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := initSessionStore()
	if err != nil {
		return nil, nil, err
	}

	return api.New(cfg.BaseURL, store.Token), store, nil
}

// initSessionStore resolves the session state file, honoring a configured
// override path.
func initSessionStore() (*session.Store, error) {
	if path := config.SessionPath(); path != "" {
		return session.NewStoreAt(path), nil
	}
	store, err := session.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// requireLogin loads the saved session or tells the user how to start one.
func requireLogin(store *session.Store) (session.Session, error) {
	sess, err := store.Require()
	if err != nil {
		return session.Session{}, common.NewUserError("Not logged in. Run 'spend login' first", err)
	}
	return sess, nil
}

// requireAdmin gates admin-only commands on the saved role before any
// request goes out. The backend's own role check remains the real boundary.
func requireAdmin(store *session.Store) (session.Session, error) {
	sess, err := requireLogin(store)
	if err != nil {
		return session.Session{}, err
	}
	if !sess.User.IsAdmin() {
		return session.Session{}, common.NewUserError(
			fmt.Sprintf("This command requires the admin role (you are %q)", sess.User.Role),
			common.ErrNotAdmin)
	}
	return sess, nil
}
