// Package session manages the persisted authentication state: one bearer
// token plus the user derived from it, stored as a single JSON file.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/model"
)

// Session is the saved authentication state. A zero Session means logged out.
type Session struct {
	SavedAt time.Time  `json:"saved_at"`
	Token   string     `json:"access_token"`
	User    model.User `json:"user"`
}

// Authenticated reports whether a token is present. No expiry checking is
// done here; a stale token surfaces as a backend 401 on the next request.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store reads and writes the session state file.
type Store struct {
	path string
}

// NewStore creates a store at the default state file location
// ($XDG_DATA_HOME/spend/session.json, falling back to ~/.local/share).
func NewStore() (*Store, error) {
	path, err := defaultStatePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session file path: %w", err)
	}
	return &Store{path: path}, nil
}

// NewStoreAt creates a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved session. A missing state file means logged out, not
// an error.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}

	return sess, nil
}

// Save persists the session. The file is owner-only: it holds a live
// credential.
func (s *Store) Save(sess Session) error {
	sess.SavedAt = time.Now()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	slog.Debug("Saved session state", "path", s.path, "user", sess.User.Email)
	return nil
}

// Clear removes the state file. Clearing an already-absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Token returns the saved bearer token, or an empty string when logged out.
// It re-reads the state file so the credential is always the one present at
// send time.
func (s *Store) Token() string {
	sess, err := s.Load()
	if err != nil {
		slog.Debug("Failed to load session for token", "error", err)
		return ""
	}
	return sess.Token
}

// Require loads the session and fails when no one is logged in.
func (s *Store) Require() (Session, error) {
	sess, err := s.Load()
	if err != nil {
		return Session{}, err
	}
	if !sess.Authenticated() {
		return Session{}, common.ErrNotLoggedIn
	}
	return sess, nil
}

func defaultStatePath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataDir, "spend", "session.json"), nil
}
