package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	"github.com/harryviennot/cuisto-admin/internal/infra/sessionbus"
	"github.com/harryviennot/cuisto-admin/internal/repo/adminhttp"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	// ErrAccessDenied means the credentials were valid but the account is not
	// a moderator. The provider session is revoked before this is returned.
	ErrAccessDenied = errors.New("moderator access required")
)

type Provider interface {
	SignIn(ctx context.Context, email, password string) (model.Session, error)
	Refresh(ctx context.Context, refreshToken string) (model.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

type Verifier interface {
	Verify(ctx context.Context) (model.Principal, error)
}

type Bus interface {
	Store(ctx context.Context, session model.Session, event string) error
	Clear(ctx context.Context) error
	Load(ctx context.Context) (model.Session, bool, error)
	Subscribe(ctx context.Context, handler func(event string)) error
}

// Store holds the process-local view of the moderator session. The bus keeps
// the authoritative value; on every bus notification the store re-reads it
// instead of trusting the event payload.
type Store struct {
	provider Provider
	verifier Verifier
	bus      Bus
	log      *zap.Logger

	mu        sync.RWMutex
	current   model.Session
	principal model.Principal
}

func NewStore(provider Provider, verifier Verifier, bus Bus, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{provider: provider, verifier: verifier, bus: bus, log: log}
}

// SetVerifier attaches the moderator check after construction. The verifier
// is usually built on top of a client that uses this store as its token
// source, so it cannot exist before the store does.
func (s *Store) SetVerifier(verifier Verifier) {
	s.verifier = verifier
}

// Start adopts any session already on the bus and begins following
// session-change notifications until ctx is cancelled.
func (s *Store) Start(ctx context.Context) error {
	if s.bus == nil {
		return nil
	}

	stored, ok, err := s.bus.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored session: %w", err)
	}
	if ok {
		s.adopt(stored)
	}

	return s.bus.Subscribe(ctx, func(event string) {
		s.onBusEvent(ctx, event)
	})
}

func (s *Store) onBusEvent(ctx context.Context, event string) {
	stored, ok, err := s.bus.Load(ctx)
	if err != nil {
		s.log.Warn("re-read session after bus event failed",
			zap.String("event", event), zap.Error(err))
		return
	}
	if !ok {
		s.drop()
		s.log.Info("session cleared by another context", zap.String("event", event))
		return
	}
	s.adopt(stored)
	s.log.Debug("session updated from bus", zap.String("event", event))
}

// SignIn authenticates against the identity provider and verifies moderator
// standing with the core API. A valid account without moderator rights is
// signed out again and reported as ErrAccessDenied, distinct from bad
// credentials.
func (s *Store) SignIn(ctx context.Context, email, password string) (model.Principal, error) {
	if s.provider == nil || s.verifier == nil {
		return model.Principal{}, errors.New("session store is not configured")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return model.Principal{}, fmt.Errorf("%w: email and password are required", ErrNotSignedIn)
	}

	issued, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return model.Principal{}, err
	}

	// The token must be visible to the core API client before Verify runs.
	s.adopt(issued)

	principal, err := s.verifier.Verify(ctx)
	if err != nil || !principal.IsModerator {
		s.revoke(ctx, issued.AccessToken)
		if err != nil && !adminhttp.IsAccessDenied(err) {
			return model.Principal{}, fmt.Errorf("verify moderator access: %w", err)
		}
		return model.Principal{}, ErrAccessDenied
	}

	s.mu.Lock()
	s.principal = principal
	s.mu.Unlock()

	if s.bus != nil {
		if err := s.bus.Store(ctx, issued, sessionbus.EventSignedIn); err != nil {
			s.log.Warn("announce sign-in failed", zap.Error(err))
		}
	}

	s.log.Info("moderator signed in", zap.String("user_id", principal.UserID))
	return principal, nil
}

// SignOut revokes the provider session and clears the shared value. The local
// session is dropped even when revocation fails.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.RLock()
	token := s.current.AccessToken
	s.mu.RUnlock()

	if token != "" && s.provider != nil {
		if err := s.provider.SignOut(ctx, token); err != nil {
			s.log.Warn("provider sign-out failed", zap.Error(err))
		}
	}

	s.drop()

	if s.bus != nil {
		if err := s.bus.Clear(ctx); err != nil {
			return fmt.Errorf("clear shared session: %w", err)
		}
	}
	return nil
}

// Refresh exchanges the current refresh token for a new session and announces
// it so other contexts pick the new tokens up.
func (s *Store) Refresh(ctx context.Context) (model.Session, error) {
	if s.provider == nil {
		return model.Session{}, errors.New("session store is not configured")
	}

	s.mu.RLock()
	refreshToken := s.current.RefreshToken
	s.mu.RUnlock()
	if refreshToken == "" {
		return model.Session{}, ErrNotSignedIn
	}

	refreshed, err := s.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return model.Session{}, err
	}

	s.adopt(refreshed)

	if s.bus != nil {
		if err := s.bus.Store(ctx, refreshed, sessionbus.EventTokenRefreshed); err != nil {
			s.log.Warn("announce token refresh failed", zap.Error(err))
		}
	}
	return refreshed, nil
}

// Token implements the core API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken
}

// Current returns the local session copy; ok is false when signed out.
func (s *Store) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, !s.current.IsZero()
}

func (s *Store) Principal() (model.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal, s.principal.UserID != ""
}

func (s *Store) adopt(session model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
	if s.principal.UserID != "" && s.principal.UserID != session.UserID {
		s.principal = model.Principal{}
	}
}

func (s *Store) drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = model.Session{}
	s.principal = model.Principal{}
}

func (s *Store) revoke(ctx context.Context, accessToken string) {
	s.drop()
	if s.provider != nil && accessToken != "" {
		if err := s.provider.SignOut(ctx, accessToken); err != nil {
			s.log.Warn("revoke non-moderator session failed", zap.Error(err))
		}
	}
}
