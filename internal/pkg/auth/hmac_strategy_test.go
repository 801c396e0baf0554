package auth

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewHMACStrategyTTL(t *testing.T) {
	if got := NewHMACStrategy("secret", Options{}).TTL(); got != 24*time.Hour {
		t.Fatalf("expected default ttl of a day, got %s", got)
	}
	if got := NewHMACStrategy("secret", Options{TTL: 2 * time.Hour}).TTL(); got != 2*time.Hour {
		t.Fatalf("expected custom ttl, got %s", got)
	}
	if got := NewHMACStrategy("secret", Options{TTL: -time.Second}).TTL(); got != 24*time.Hour {
		t.Fatalf("expected negative ttl to fall back to default, got %s", got)
	}
}

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	id := uuid.New()

	token, err := strategy.IssueToken(id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if strings.ContainsAny(token, "+/=;, ") {
		t.Fatalf("expected cookie-safe token, got %q", token)
	}
	if !strings.HasPrefix(token, id.String()+".") {
		t.Fatalf("expected token to carry the session id, got %q", token)
	}

	got, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestHMACStrategyIssueRejectsNil(t *testing.T) {
	if _, err := NewHMACStrategy("secret", Options{}).IssueToken(uuid.Nil); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyParseRejects(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	strategy.now = fixedClock(now)

	valid, err := strategy.IssueToken(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	signed := func(claims string) string { return claims + "." + strategy.sign(claims) }
	future := strconv.FormatInt(now.Add(time.Hour).Unix(), 36)

	other := NewHMACStrategy("other-secret", Options{TTL: time.Minute})
	other.now = fixedClock(now)
	foreign, _ := other.IssueToken(uuid.New())

	cases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "no separator", token: "garbage"},
		{name: "tampered signature", token: valid[:strings.LastIndexByte(valid, '.')] + ".tampered"},
		{name: "tampered claims", token: uuid.NewString() + valid[strings.IndexByte(valid, '.'):]},
		{name: "foreign secret", token: foreign},
		{name: "missing expiry", token: signed(uuid.NewString())},
		{name: "bad session id", token: signed("abc." + future)},
		{name: "nil session id", token: signed(uuid.Nil.String() + "." + future)},
		{name: "bad expiry", token: signed(uuid.NewString() + ".not-a-number!")},
		{name: "expired", token: signed(uuid.NewString() + "." + strconv.FormatInt(now.Unix(), 36))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := strategy.ParseToken(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategyExpiresAfterTTL(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	strategy.now = fixedClock(now)

	token, err := strategy.IssueToken(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	strategy.now = fixedClock(now.Add(59 * time.Second))
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token to be valid before ttl, got %v", err)
	}
	strategy.now = fixedClock(now.Add(2 * time.Minute))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	if name := NewHMACStrategy("secret", Options{}).Name(); name != "hmac-sha256" {
		t.Fatalf("unexpected name: %s", name)
	}
}
