package auth

import (
	"time"

	"github.com/google/uuid"
)

// Strategy binds a session identifier to a tamper-evident cookie value.
type Strategy interface {
	IssueToken(sessionID uuid.UUID) (string, error)
	ParseToken(token string) (uuid.UUID, error)
	TTL() time.Duration
	Name() string
}

type Options struct {
	TTL time.Duration
}
