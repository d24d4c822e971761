// Package services contains application services for the tribunal client.
// This file defines the authentication service: login against the API,
// account registration, session restore and logout, profile access and the
// liveness probe.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/session"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// ErrNotLoggedIn is returned by operations that need a session when there
// is none.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the front-ends.
//
// Contract:
//   - Login: authenticate against the server and install the session.
//   - Register: create a new account; does not log in.
//   - Restore: rebuild the session from the persisted token.
//   - Logout: drop the session and the persisted token.
//   - Profile/UpdateProfile: read or change the current user; a 401 drops
//     the session.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Restore(ctx context.Context) error
	Logout(ctx context.Context) error
	Current() (models.User, bool)
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.User, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and the
// process-wide session holder.
type authService struct {
	client  client.Client
	session *session.Holder
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session holder.
func NewAuthService(c client.Client, h *session.Holder, log logging.Logger) AuthService {
	return &authService{client: c, session: h, log: log.With("module", "auth")}
}

// Login returns the server's error unchanged so callers can show its message.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	s, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	if err := a.session.Login(ctx, s.User, s.Token); err != nil {
		a.log.Warn(ctx, "session token not persisted", "error", err)
	}
	a.log.Info(ctx, "logged in", "username", s.User.Username, "role", s.User.Role)
	return s.User, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	u, err := a.client.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "account registered", "username", u.Username)
	return u, nil
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Restore(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) Current() (models.User, bool) {
	return a.session.Current()
}

func (a *authService) Profile(ctx context.Context) (models.User, error) {
	token := a.session.Token()
	if token == "" {
		return models.User{}, ErrNotLoggedIn
	}
	u, err := a.client.Profile(ctx, token)
	if err != nil {
		return models.User{}, invalidateOn401(ctx, a.session, a.log, err)
	}
	return u, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.User, error) {
	token := a.session.Token()
	if token == "" {
		return models.User{}, ErrNotLoggedIn
	}
	u, err := a.client.UpdateProfile(ctx, token, upd)
	if err != nil {
		return models.User{}, invalidateOn401(ctx, a.session, a.log, err)
	}
	// keep the cached user in step with the server
	if err := a.session.Login(ctx, u, token); err != nil {
		a.log.Warn(ctx, "session token not persisted", "error", err)
	}
	return u, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// invalidateOn401 drops the session when the server rejected its token.
// err is returned unchanged.
func invalidateOn401(ctx context.Context, h *session.Holder, log logging.Logger, err error) error {
	if errors.Is(err, client.ErrUnauthorized) && h.LoggedIn() {
		if ierr := h.Invalidate(ctx); ierr != nil {
			log.Error(ctx, "failed to drop rejected session", "error", ierr)
		}
	}
	return err
}
