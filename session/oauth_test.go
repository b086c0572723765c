package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// oauthBackend fakes the two backend endpoints the flow touches and
// counts code exchanges.
func oauthBackend(t *testing.T, exchanges *int32, state *string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/google/login", func(w http.ResponseWriter, r *http.Request) {
		*state = r.URL.Query().Get("state")
		json.NewEncoder(w).Encode(models.GoogleLoginURL{URL: "https://accounts.google.com/o/oauth2/v2/auth?state=" + *state})
	})
	mux.HandleFunc("/api/auth/google/callback", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(exchanges, 1)
		assert.Equal(t, "one-time-code", r.URL.Query().Get("code"))
		raw, _ := json.Marshal(models.AuthResponse{
			User:   &models.User{ID: "u1", Email: "jane@example.com", FullName: "Jane"},
			Tokens: &models.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
		})
		w.Write(raw)
	})
	return mux
}

func startFlow(t *testing.T, exchanges *int32) (*GoogleFlow, *Store, string) {
	t.Helper()
	var state string
	m, store := newTestManager(t, oauthBackend(t, exchanges, &state))

	flow, authURL, err := m.StartGoogleLogin(context.Background(), "127.0.0.1:0")
	require.NoError(t, err)
	require.Contains(t, authURL, "accounts.google.com")
	require.NotEmpty(t, state)
	return flow, store, state
}

func callbackQuery(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/auth/google/callback?" + q.Encode()
}

func TestCallbackWithCodeExchangesExactlyOnce(t *testing.T) {
	var exchanges int32
	flow, store, state := startFlow(t, &exchanges)

	srv := httptest.NewServer(flow.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + callbackQuery(map[string]string{"code": "one-time-code", "state": state}))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, exchanges)

	res := <-flow.result
	require.NoError(t, res.err)
	assert.Equal(t, "jane@example.com", res.user.Email)

	access, refresh := store.Tokens()
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
}

// The callback is registered at two paths; a duplicate delivery must
// not trigger a second exchange of the consumed code.
func TestDuplicateCallbackDeliveryDoesNotReExchange(t *testing.T) {
	var exchanges int32
	flow, _, state := startFlow(t, &exchanges)

	srv := httptest.NewServer(flow.routes())
	defer srv.Close()

	first, err := http.Get(srv.URL + callbackQuery(map[string]string{"code": "one-time-code", "state": state}))
	require.NoError(t, err)
	first.Body.Close()

	second, err := http.Get(srv.URL + "/api" + callbackQuery(map[string]string{"code": "one-time-code", "state": state}))
	require.NoError(t, err)
	second.Body.Close()

	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.EqualValues(t, 1, exchanges, "a code is exchanged at most once")
}

func TestCallbackWithErrorParamNeverExchanges(t *testing.T) {
	var exchanges int32
	flow, store, _ := startFlow(t, &exchanges)

	srv := httptest.NewServer(flow.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + callbackQuery(map[string]string{"error": "access_denied"}))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.EqualValues(t, 0, exchanges)

	res := <-flow.result
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "access_denied")

	access, _ := store.Tokens()
	assert.Empty(t, access)
}

func TestCallbackStateMismatchRejected(t *testing.T) {
	var exchanges int32
	flow, _, _ := startFlow(t, &exchanges)

	srv := httptest.NewServer(flow.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + callbackQuery(map[string]string{"code": "one-time-code", "state": "forged"}))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.EqualValues(t, 0, exchanges)

	res := <-flow.result
	require.Error(t, res.err)
}
