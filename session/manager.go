package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/client"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// State of the session lifecycle.
type State string

const (
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Manager is the single owner of the authenticated-user state. It is
// constructed once at startup and handed to every command; there is no
// ambient global session.
type Manager struct {
	api    *client.APIClient
	store  *Store
	logger *zap.Logger

	mu    sync.RWMutex
	state State
	user  *models.User
}

// NewManager wires the manager to the API client and token store.
func NewManager(api *client.APIClient, store *Store, logger *zap.Logger) *Manager {
	return &Manager{
		api:    api,
		store:  store,
		logger: logger,
		state:  StateLoading,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the authenticated user, or nil.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Resolve establishes identity from stored tokens at startup. With no
// stored access token the session is anonymous immediately; otherwise
// the token is validated against /auth/me. Any failure clears the
// stored pair and leaves the session anonymous rather than blocking
// startup on a dead credential.
func (m *Manager) Resolve(ctx context.Context) {
	access, _ := m.store.Tokens()
	if access == "" {
		m.setSession(StateAnonymous, nil)
		return
	}

	user, err := m.api.Me(ctx)
	if err != nil || user == nil {
		m.logger.Debug("stored token rejected, clearing session", zap.Error(err))
		if clearErr := m.store.Clear(); clearErr != nil {
			m.logger.Warn("failed to clear token store", zap.Error(clearErr))
		}
		m.setSession(StateAnonymous, nil)
		return
	}
	m.setSession(StateAuthenticated, user)
}

// Login authenticates with credentials and persists the issued pair.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.Tokens == nil || resp.User == nil {
		return nil, fmt.Errorf("login response missing tokens")
	}
	if err := m.store.SetTokens(*resp.Tokens); err != nil {
		return nil, err
	}
	m.setSession(StateAuthenticated, resp.User)
	return resp.User, nil
}

// Register creates an account. When the backend returns a token pair
// the session behaves as a login; when it returns only a message (for
// example "verify your email") the session stays anonymous and the
// message is returned for the caller to surface.
func (m *Manager) Register(ctx context.Context, input models.RegisterInput) (*models.User, string, error) {
	resp, err := m.api.Register(ctx, input)
	if err != nil {
		return nil, "", err
	}
	if resp.Tokens == nil || resp.Tokens.AccessToken == "" {
		m.setSession(StateAnonymous, nil)
		return nil, resp.Message, nil
	}
	if err := m.store.SetTokens(*resp.Tokens); err != nil {
		return nil, "", err
	}
	m.setSession(StateAuthenticated, resp.User)
	return resp.User, resp.Message, nil
}

// Logout clears both tokens and drops the in-memory user.
func (m *Manager) Logout() error {
	err := m.store.Clear()
	m.setSession(StateAnonymous, nil)
	return err
}

// VerifyEmail confirms an email address with a mailed token.
func (m *Manager) VerifyEmail(ctx context.Context, token string) (string, error) {
	resp, err := m.api.VerifyEmail(ctx, token)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// completeOAuth installs the session produced by an OAuth code
// exchange. Shared by the loopback callback handler.
func (m *Manager) completeOAuth(resp *models.AuthResponse) error {
	if resp.Tokens == nil || resp.User == nil {
		return fmt.Errorf("authentication response missing tokens")
	}
	if err := m.store.SetTokens(*resp.Tokens); err != nil {
		return err
	}
	m.setSession(StateAuthenticated, resp.User)
	return nil
}

func (m *Manager) setSession(state State, user *models.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.mu.Unlock()
}
