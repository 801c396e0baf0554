package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// HMACStrategy signs session identifiers into cookie values of the form
// "<session uuid>.<expiry, base36 unix seconds>.<signature>".
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *HMACStrategy) IssueToken(sessionID uuid.UUID) (string, error) {
	if sessionID == uuid.Nil {
		return "", fmt.Errorf("issue token: %w", ErrInvalidToken)
	}
	claims := sessionID.String() + "." + strconv.FormatInt(s.now().Add(s.ttl).Unix(), 36)
	return claims + "." + s.sign(claims), nil
}

// ParseToken checks the signature before looking at the claims, so a forged value never
// reaches the uuid or expiry parsers.
func (s *HMACStrategy) ParseToken(token string) (uuid.UUID, error) {
	cut := strings.LastIndexByte(token, '.')
	if cut <= 0 {
		return uuid.Nil, ErrInvalidToken
	}
	claims, sig := token[:cut], token[cut+1:]
	if !hmac.Equal([]byte(s.sign(claims)), []byte(sig)) {
		return uuid.Nil, ErrInvalidToken
	}

	rawID, rawExpiry, ok := strings.Cut(claims, ".")
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sessionID, err := uuid.Parse(rawID)
	if err != nil || sessionID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(rawExpiry, 36, 64)
	if err != nil || !s.now().Before(time.Unix(expiry, 0)) {
		return uuid.Nil, ErrInvalidToken
	}
	return sessionID, nil
}

func (s *HMACStrategy) TTL() time.Duration {
	return s.ttl
}

func (s *HMACStrategy) Name() string {
	return "hmac-sha256"
}

func (s *HMACStrategy) sign(claims string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(claims))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
