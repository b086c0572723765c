package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

func TestStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")

	first := NewStore(path)
	require.NoError(t, first.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))

	second := NewStore(path)
	access, refresh := second.Tokens()
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
}

func TestStoreUsesFixedKeyNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)
	require.NoError(t, store.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, "a1", onDisk["access_token"])
	assert.Equal(t, "r1", onDisk["refresh_token"])
}

func TestStoreFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)
	require.NoError(t, store.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)
	require.NoError(t, store.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, store.Clear())

	access, refresh := store.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear())
}

func TestStoreMissingFileYieldsEmptyTokens(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	access, refresh := store.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}
