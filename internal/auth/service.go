package auth

import (
	"context"
	"errors"
	"time"

	"github.com/incial/stockflow/internal/config"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
)

// ErrNoSession is returned when a token is valid but its identity has been
// signed out (or was never stored).
var ErrNoSession = errors.New("no active session for this token")

// Service performs the demo sign-in flow: a case-insensitive email lookup
// against the static user directory. Passwords are never verified. On
// success the identity is mirrored to the session store and a bearer token
// is issued.
type Service struct {
	catalog  repository.CatalogRepository
	sessions SessionStore
	secret   string
	tokenTTL time.Duration
}

func NewService(catalog repository.CatalogRepository, sessions SessionStore, cfg config.AuthConfig) *Service {
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		catalog:  catalog,
		sessions: sessions,
		secret:   cfg.JWTSecret,
		tokenTTL: ttl,
	}
}

// SignIn resolves the email in the directory and opens a session. Unknown
// emails fail with domain.ErrUnknownEmail and change no state.
func (s *Service) SignIn(ctx context.Context, email string) (string, domain.User, error) {
	user, ok := s.catalog.UserByEmail(email)
	if !ok {
		return "", domain.User{}, domain.ErrUnknownEmail
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return "", domain.User{}, err
	}

	token, err := generateToken(s.secret, s.tokenTTL, user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// SignOut deletes the stored identity, revoking every token issued for it.
func (s *Service) SignOut(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// Resolve validates a bearer token and restores the stored identity.
func (s *Service) Resolve(ctx context.Context, token string) (domain.User, error) {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return domain.User{}, err
	}

	user, ok, err := s.sessions.Load(ctx, claims.UserID)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, ErrNoSession
	}
	return user, nil
}
