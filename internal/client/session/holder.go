// Package session holds the process-wide authenticated session and keeps its
// bearer token persisted across restarts.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tribunal/internal/common"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// ProfileFetcher resolves a bearer token to its user ("whoami").
type ProfileFetcher interface {
	Profile(ctx context.Context, token string) (models.User, error)
}

// Holder is safe for concurrent use. Its zero state is logged out.
type Holder struct {
	mu    sync.RWMutex
	user  models.User
	token string

	store    metadata.Repository
	profiles ProfileFetcher
	log      logging.Logger
	now      func() time.Time
}

func NewHolder(store metadata.Repository, profiles ProfileFetcher, log logging.Logger) *Holder {
	return &Holder{
		store:    store,
		profiles: profiles,
		log:      log.With("module", "session"),
		now:      time.Now,
	}
}

// Current returns the authenticated user, if any.
func (h *Holder) Current() (models.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user, h.token != ""
}

func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *Holder) LoggedIn() bool {
	return h.Token() != ""
}

func (h *Holder) set(user models.User, token string) {
	h.mu.Lock()
	h.user, h.token = user, token
	h.mu.Unlock()
}

// Restore rebuilds the session from the persisted token. A token that is
// expired, rejected, or cannot be verified is deleted and the holder stays
// logged out. Only storage failures are returned.
func (h *Holder) Restore(ctx context.Context) error {
	e, ok, err := h.store.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok || e.Value == "" {
		h.set(models.User{}, "")
		return nil
	}

	if h.expired(e.Value) {
		h.log.Info(ctx, "persisted token expired")
		return h.Logout(ctx)
	}

	user, err := h.profiles.Profile(ctx, e.Value)
	if err != nil {
		h.log.Warn(ctx, "persisted token rejected", "error", err)
		return h.Logout(ctx)
	}

	h.set(user, e.Value)
	h.log.Info(ctx, "session restored", "username", user.Username)
	return nil
}

// expired reports whether token is a JWT whose exp claim has passed. Tokens
// that are not JWTs, or carry no exp, are left to the server to judge.
func (h *Holder) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(h.now())
}

// Login installs the session and persists its token. The in-memory session
// is set even when persisting fails.
func (h *Holder) Login(ctx context.Context, user models.User, token string) error {
	h.set(user, token)
	if err := h.store.Set(ctx, common.TokenMetadataKey, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Logout clears the session and the persisted token.
func (h *Holder) Logout(ctx context.Context) error {
	h.set(models.User{}, "")
	if err := h.store.Delete(ctx, common.TokenMetadataKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Invalidate drops a session the server no longer accepts.
func (h *Holder) Invalidate(ctx context.Context) error {
	h.log.Info(ctx, "session invalidated by server")
	return h.Logout(ctx)
}
