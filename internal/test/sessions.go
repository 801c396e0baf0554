package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// SessionRepositoryStub keeps sessions in memory.
type SessionRepositoryStub struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]model.Session

	CreateErr error
	GetErr    error
	DeleteErr error
	ExpireErr error
}

// NewSessionRepositoryStub creates an empty repository.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{sessions: make(map[uuid.UUID]model.Session)}
}

func (s *SessionRepositoryStub) Create(_ context.Context, session *model.Session) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; ok {
		return domainErrors.ErrAlreadyExists
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *SessionRepositoryStub) Get(_ context.Context, id uuid.UUID) (*model.Session, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &session, nil
}

func (s *SessionRepositoryStub) Delete(_ context.Context, id uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionRepositoryStub) DeleteExpired(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	if s.ExpireErr != nil {
		return nil, s.ExpireErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []model.Session
	for _, session := range s.sessions {
		if session.Expired(now) {
			expired = append(expired, session)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].ExpiresAt.Before(expired[j].ExpiresAt) })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, session := range expired {
		delete(s.sessions, session.ID)
		ids = append(ids, session.ID)
	}
	return ids, nil
}

// Put stores a session directly.
func (s *SessionRepositoryStub) Put(session model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Len reports how many sessions are stored.
func (s *SessionRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StrategyStub implements auth.Strategy with plain "session-<uuid>" cookies.
type StrategyStub struct {
	IssueFn func(uuid.UUID) (string, error)
	ParseFn func(string) (uuid.UUID, error)
	TTLVal  time.Duration
}

func (s StrategyStub) IssueToken(id uuid.UUID) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(id)
	}
	return "session-" + id.String(), nil
}

func (s StrategyStub) ParseToken(token string) (uuid.UUID, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "session-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return uuid.Nil, domainErrors.ErrNotAuthenticated
	}
	return uuid.Parse(token[len(prefix):])
}

func (s StrategyStub) TTL() time.Duration {
	if s.TTLVal == 0 {
		return time.Hour
	}
	return s.TTLVal
}

func (s StrategyStub) Name() string { return "stub" }
