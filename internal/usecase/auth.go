package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/foodfront/internal/pkg/auth"
)

// AuthUseCase exchanges credentials with the backend and keeps the resulting bearer token
// in a persisted session addressed by a signed cookie.
type AuthUseCase struct {
	backend  backend.AuthAPI
	sessions repository.SessionRepository
	tokens   pkgAuth.Strategy
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(api backend.AuthAPI, sessions repository.SessionRepository, strategy pkgAuth.Strategy, logger *slog.Logger) *AuthUseCase {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &AuthUseCase{backend: api, sessions: sessions, tokens: strategy, logger: logger, now: time.Now}
}

// Login authenticates against the backend and opens a session.
func (u *AuthUseCase) Login(ctx context.Context, creds model.Credentials) (*model.Session, string, error) {
	creds, err := normalizeCredentials(creds)
	if err != nil {
		return nil, "", err
	}

	res, err := u.backend.Login(ctx, creds)
	if err != nil {
		return nil, "", err
	}
	return u.open(ctx, res)
}

// Register creates a backend account and opens a session for it.
func (u *AuthUseCase) Register(ctx context.Context, reg model.Registration) (*model.Session, string, error) {
	reg, err := normalizeRegistration(reg)
	if err != nil {
		return nil, "", err
	}

	res, err := u.backend.Register(ctx, reg)
	if err != nil {
		return nil, "", err
	}
	return u.open(ctx, res)
}

func (u *AuthUseCase) open(ctx context.Context, res *model.AuthResult) (*model.Session, string, error) {
	if res == nil || res.Token == "" {
		return nil, "", fmt.Errorf("%w: empty token in auth response", domainErrors.ErrRejected)
	}

	role, ok := model.ParseRole(string(res.Role))
	if !ok {
		u.logger.Warn("unknown role in auth response, treating as customer", slog.String("role", string(res.Role)))
		role = model.RoleCustomer
	}

	now := u.now()
	session := &model.Session{
		ID:        uuid.New(),
		Token:     res.Token,
		Role:      role,
		Email:     res.Email,
		Name:      res.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(u.tokens.TTL()),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	cookie, err := u.tokens.IssueToken(session.ID)
	if err != nil {
		return nil, "", err
	}

	u.logger.Info("session opened", slog.String("session", session.ID.String()), slog.String("role", string(role)))
	return session, cookie, nil
}

// Resolve maps a session cookie back to a live session.
func (u *AuthUseCase) Resolve(ctx context.Context, cookie string) (*model.Session, error) {
	if cookie == "" {
		return nil, domainErrors.ErrNotAuthenticated
	}
	id, err := u.tokens.ParseToken(cookie)
	if err != nil {
		return nil, domainErrors.ErrNotAuthenticated
	}

	session, err := u.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotAuthenticated
		}
		return nil, err
	}

	if session.Expired(u.now()) {
		if err := u.sessions.Delete(ctx, id); err != nil {
			u.logger.Warn("failed to delete expired session", slog.String("session", id.String()), slog.String("error", err.Error()))
		}
		return nil, domainErrors.ErrNotAuthenticated
	}
	return session, nil
}

// Logout forgets the session. The backend token is simply dropped.
func (u *AuthUseCase) Logout(ctx context.Context, id uuid.UUID) error {
	if err := u.sessions.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("session closed", slog.String("session", id.String()))
	return nil
}

// Expire removes up to limit sessions that are past their expiry and returns their ids.
func (u *AuthUseCase) Expire(ctx context.Context, limit int) ([]uuid.UUID, error) {
	return u.sessions.DeleteExpired(ctx, u.now(), limit)
}

// CookieTTL is the lifetime of the session cookie.
func (u *AuthUseCase) CookieTTL() time.Duration {
	return u.tokens.TTL()
}
