package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"suriname/internal/backend"
	"suriname/internal/status"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account pending approval")
)

type authClient interface {
	Login(ctx context.Context, loginID, password string) (*backend.LoginResult, error)
}

// Service owns the session lifecycle: login creates one, logout and the
// global 401 handler destroy it, Current resolves it for middleware.
type Service struct {
	store   *Store
	auth    authClient
	ttl     time.Duration
	loggerf func(format string, args ...interface{})
}

func NewService(store *Store, auth authClient, ttl time.Duration, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{store: store, auth: auth, ttl: ttl, loggerf: loggerf}
}

// Login exchanges credentials with the backend and persists the
// resulting session. Accounts still pending approval can log in to the
// backend but get no gateway session.
func (s *Service) Login(ctx context.Context, loginID, password string) (*Session, error) {
	res, err := s.auth.Login(ctx, loginID, password)
	if err != nil {
		if backend.StatusOf(err) == 401 || backend.StatusOf(err) == 400 {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	role := res.Role
	if role == "" {
		role = RoleFromToken(res.AccessToken)
	}
	if role == status.RolePending {
		return nil, ErrAccountPending
	}

	sess := Session{
		ID:           uuid.NewString(),
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Name:         res.Name,
		Role:         role,
		CreatedAt:    time.Now(),
		ExpiresAt:    time.Now().Add(s.ttl),
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	s.loggerf("session: login ok for %s (role %s)", loginID, role)
	return &sess, nil
}

// Current resolves a session id to a live session.
func (s *Service) Current(ctx context.Context, id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return s.store.Get(ctx, id)
}

// Logout destroys the session. Logging out twice is a no-op.
func (s *Service) Logout(ctx context.Context, id string) {
	s.Invalidate(ctx, id)
}

// Invalidate removes a session. It is idempotent: the global 401
// handler may fire from several concurrent failed calls and each one
// lands here.
func (s *Service) Invalidate(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.loggerf("session: invalidate %s: %v", id, err)
	}
}

// UnauthorizedHook adapts Invalidate to the backend client's 401 hook.
func (s *Service) UnauthorizedHook() func(ctx context.Context) {
	return func(ctx context.Context) {
		if id, ok := IDFrom(ctx); ok {
			s.Invalidate(ctx, id)
		}
	}
}

// SaveViewState and ViewState expose the per-view stash to modules.
func (s *Service) SaveViewState(ctx context.Context, sessionID, viewKey string, payload []byte) error {
	return s.store.SaveViewState(ctx, sessionID, viewKey, payload)
}

func (s *Service) ViewState(ctx context.Context, sessionID, viewKey string) ([]byte, bool) {
	return s.store.ViewState(ctx, sessionID, viewKey)
}
