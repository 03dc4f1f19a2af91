package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/domain/auth"
	apperrors "github.com/ovenside/storefront-api/internal/errors"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	State  core.StateRepository // Required: session record persistence
	Cart   *CartService         // Required: re-keyed on every identity change
	Logger *slog.Logger         // Optional: structured logger
}

// SessionService owns the single live session of the storefront. Login is
// mocked: any non-empty user ID with a known role is accepted, no password
// or token is verified. Every identity change re-keys the cart engine so
// the new user's snapshot becomes the live cart.
type SessionService struct {
	state  core.StateRepository
	cart   *CartService
	logger *slog.Logger

	mu      sync.Mutex
	current auth.Session
}

// NewSessionService constructs a SessionService starting from the guest
// identity. Call Hydrate to restore a persisted session.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	if opts.State == nil {
		panic("StateRepository is required")
	}
	if opts.Cart == nil {
		panic("CartService is required")
	}
	return &SessionService{
		state:   opts.State,
		cart:    opts.Cart,
		logger:  opts.Logger,
		current: auth.GuestSession(),
	}
}

// Hydrate restores the persisted session at startup and keys the cart engine
// to that identity. A read failure degrades to the guest session.
func (s *SessionService) Hydrate(ctx context.Context) auth.Session {
	sess, err := s.state.LoadSession(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "load session failed", "error", err)
		}
		sess = auth.GuestSession()
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.cart.Initialize(ctx, sess.UserID)
	if s.logger != nil {
		s.logger.InfoContext(ctx, "session hydrated", "user", sess.UserID, "role", sess.Role)
	}
	return sess
}

// Current returns the active session.
func (s *SessionService) Current() auth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login establishes a session for the given role and user ID. The role must
// parse and the user ID must be non-empty; nothing else is checked. The cart
// engine is re-keyed to the new user and their snapshot loaded.
func (s *SessionService) Login(ctx context.Context, role, userID string) (auth.Session, error) {
	parsed, ok := auth.ParseRole(role)
	if !ok {
		return auth.Session{}, apperrors.ValidationField("role", "role must be one of admin, user, guest")
	}
	if userID == "" {
		return auth.Session{}, apperrors.ValidationField("user_id", "user_id is required")
	}

	sess := auth.Session{Role: parsed, UserID: userID}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := s.state.SaveSession(ctx, sess); err != nil {
		// The live session stays valid for this process; only the restart
		// restore is lost.
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "save session failed", "user", userID, "error", err)
		}
	}

	s.cart.Initialize(ctx, userID)
	if s.logger != nil {
		s.logger.InfoContext(ctx, "user logged in", "user", userID, "role", parsed)
	}
	return sess, nil
}

// Logout resets the session to guest and clears the persisted record. The
// departing user's cart snapshot and loyalty balance are left intact for the
// next login.
func (s *SessionService) Logout(ctx context.Context) auth.Session {
	s.mu.Lock()
	previous := s.current
	s.current = auth.GuestSession()
	s.mu.Unlock()

	if err := s.state.ClearSession(ctx); err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "clear session failed", "error", err)
		}
	}

	s.cart.Initialize(ctx, auth.GuestUserID)
	if s.logger != nil {
		s.logger.InfoContext(ctx, "user logged out", "user", previous.UserID)
	}
	return auth.GuestSession()
}
