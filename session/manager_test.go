package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/client"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	api := client.New(srv.URL, store, zap.NewNop(), 0)
	return NewManager(api, store, zap.NewNop()), store
}

func authEnvelope(user *models.User, tokens *models.TokenPair, message string) []byte {
	raw, _ := json.Marshal(models.AuthResponse{User: user, Tokens: tokens, Message: message})
	return raw
}

func TestLoginAuthenticatesAndPersistsTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])
		w.Write(authEnvelope(
			&models.User{ID: "u1", Email: "jane@example.com", FullName: "Jane", Role: models.RoleCustomer},
			&models.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
			"Login successful",
		))
	})

	m, store := newTestManager(t, mux)
	user, err := m.Login(context.Background(), "jane@example.com", "Secret123!")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "u1", user.ID)

	access, refresh := store.Tokens()
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
}

func TestLoginErrorLeavesSessionAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	})

	m, store := newTestManager(t, mux)
	m.Resolve(context.Background())

	_, err := m.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.Equal(t, StateAnonymous, m.State())

	access, _ := store.Tokens()
	assert.Empty(t, access)
}

func TestRegisterWithTokensBehavesLikeLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write(authEnvelope(
			&models.User{ID: "u2", Role: models.RoleCleaner},
			&models.TokenPair{AccessToken: "a2", RefreshToken: "r2"},
			"Registration successful",
		))
	})

	m, store := newTestManager(t, mux)
	user, message, err := m.Register(context.Background(), models.RegisterInput{Email: "c@x.com"})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "Registration successful", message)

	access, _ := store.Tokens()
	assert.Equal(t, "a2", access)
}

func TestRegisterMessageOnlyStaysAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write(authEnvelope(nil, nil, "Please verify your email"))
	})

	m, store := newTestManager(t, mux)
	user, message, err := m.Register(context.Background(), models.RegisterInput{Email: "c@x.com"})
	require.NoError(t, err)

	assert.Nil(t, user)
	assert.Equal(t, "Please verify your email", message)
	assert.Equal(t, StateAnonymous, m.State())

	access, _ := store.Tokens()
	assert.Empty(t, access)
}

func TestResolveWithoutTokensIsAnonymous(t *testing.T) {
	m, _ := newTestManager(t, http.NewServeMux())
	assert.Equal(t, StateLoading, m.State())

	m.Resolve(context.Background())
	assert.Equal(t, StateAnonymous, m.State())
}

func TestResolveWithValidTokenAuthenticates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer a1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"user": models.User{ID: "u1", FullName: "Jane"}})
	})

	m, store := newTestManager(t, mux)
	require.NoError(t, store.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))

	m.Resolve(context.Background())
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "Jane", m.User().FullName)
}

func TestResolveWithDeadTokenClearsAndStaysAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "refresh token expired"})
	})

	m, store := newTestManager(t, mux)
	require.NoError(t, store.SetTokens(models.TokenPair{AccessToken: "dead", RefreshToken: "dead"}))

	m.Resolve(context.Background())
	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.User())

	access, refresh := store.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestLogoutClearsEverything(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write(authEnvelope(
			&models.User{ID: "u1"},
			&models.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
			"",
		))
	})

	m, store := newTestManager(t, mux)
	_, err := m.Login(context.Background(), "jane@example.com", "Secret123!")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.User())

	access, refresh := store.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}
