package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// GoogleFlow runs one browser-based Google sign-in: fetch the
// authorization URL, send the user to it, then catch the redirect on a
// loopback listener and exchange the one-time code for a session.
//
// The callback handler is the single owner of the code exchange. It is
// registered at two paths to tolerate both the app-level and the
// backend-redirect callback URL, but both registrations share one
// handler instance, and a sync.Once guarantees at most one exchange per
// authorization code even if the redirect is delivered twice.
type GoogleFlow struct {
	manager *Manager
	logger  *zap.Logger
	addr    string
	state   string

	once   sync.Once
	result chan oauthResult
}

type oauthResult struct {
	user *models.User
	err  error
}

// StartGoogleLogin fetches the authorization URL for a new sign-in
// attempt. The returned URL must be opened in a browser; Wait then
// blocks until the redirect arrives or ctx is cancelled.
func (m *Manager) StartGoogleLogin(ctx context.Context, callbackAddr string) (*GoogleFlow, string, error) {
	state := uuid.NewString()
	login, err := m.api.GoogleLoginURL(ctx, state)
	if err != nil {
		return nil, "", err
	}
	flow := &GoogleFlow{
		manager: m,
		logger:  m.logger,
		addr:    callbackAddr,
		state:   state,
		result:  make(chan oauthResult, 1),
	}
	return flow, login.URL, nil
}

// Wait serves the loopback callback listener until the provider
// redirects back, then returns the signed-in user.
func (f *GoogleFlow) Wait(ctx context.Context) (*models.User, error) {
	srv := &http.Server{Addr: f.addr, Handler: f.routes()}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-f.result:
		return res.user, res.err
	case err := <-serveErr:
		return nil, fmt.Errorf("callback listener failed: %w", err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *GoogleFlow) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/auth/google/callback", f.handleCallback)
	engine.GET("/api/auth/google/callback", f.handleCallback)
	return engine
}

func (f *GoogleFlow) handleCallback(c *gin.Context) {
	first := false
	f.once.Do(func() {
		first = true
		f.process(c)
	})
	if !first {
		c.String(http.StatusOK, "Sign-in already processed. You can close this window.")
	}
}

// process handles the first delivery of the redirect: deny, bad state,
// or a code exchange. It always pushes exactly one result.
func (f *GoogleFlow) process(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		f.logger.Warn("google sign-in denied", zap.String("error", errParam))
		c.String(http.StatusBadRequest, "Google sign-in failed: %s. Return to the terminal and log in again.", errParam)
		f.result <- oauthResult{err: fmt.Errorf("google sign-in denied: %s", errParam)}
		return
	}

	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "Missing authorization code.")
		f.result <- oauthResult{err: fmt.Errorf("callback carried no authorization code")}
		return
	}

	if got := c.Query("state"); got != f.state {
		c.String(http.StatusBadRequest, "State mismatch, sign-in rejected.")
		f.result <- oauthResult{err: fmt.Errorf("oauth state mismatch")}
		return
	}

	resp, err := f.manager.api.ExchangeGoogleCode(c.Request.Context(), code, f.state)
	if err != nil {
		c.String(http.StatusBadGateway, "Sign-in failed: %s", err.Error())
		f.result <- oauthResult{err: err}
		return
	}
	if err := f.manager.completeOAuth(resp); err != nil {
		c.String(http.StatusBadGateway, "Sign-in failed: %s", err.Error())
		f.result <- oauthResult{err: err}
		return
	}

	c.String(http.StatusOK, "Signed in as %s. You can close this window.", resp.User.Email)
	f.result <- oauthResult{user: resp.User}
}
