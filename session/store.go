// Package session owns the authenticated-user state of the client: a
// durable token store, an explicit session manager, and the Google
// OAuth loopback callback flow.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// Store persists the access/refresh token pair to a JSON file. The
// user object is never persisted; only the two token strings are, under
// their fixed key names.
type Store struct {
	path string

	mu      sync.Mutex
	access  string
	refresh string
	loaded  bool
}

// storedTokens is the on-disk layout.
type storedTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewStore creates a store backed by the file at path. The file is
// created lazily on the first SetTokens.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Tokens returns the stored pair, loading from disk on first use.
// Missing or unreadable files yield empty tokens.
func (s *Store) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.access, s.refresh
}

// SetTokens persists a new pair, replacing any previous one.
func (s *Store) SetTokens(pair models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	raw, err := json.Marshal(storedTokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}

	// Write-then-rename so a crash never leaves a torn token file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}

	s.access = pair.AccessToken
	s.refresh = pair.RefreshToken
	s.loaded = true
	return nil
}

// Clear removes both tokens from memory and disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""
	s.loaded = true

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

func (s *Store) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var stored storedTokens
	if err := json.Unmarshal(raw, &stored); err != nil {
		return
	}
	s.access = stored.AccessToken
	s.refresh = stored.RefreshToken
}
