package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestIssuer(t *testing.T, secret string, clock *fakeClock) *JWTIssuer {
	t.Helper()
	iss, err := NewJWTIssuer(JWTConfig{
		Secret:   secret,
		Issuer:   "bookstore-api",
		Audience: "bookstore-clients",
		TTL:      30 * time.Minute,
	}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return iss
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)}
	iss := newTestIssuer(t, "secret-key", clock)

	token, err := iss.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.IssuedAt.Equal(clock.now) {
		t.Fatalf("expected iat %s, got %s", clock.now, claims.IssuedAt)
	}
	if !claims.ExpiresAt.Equal(clock.now.Add(30 * time.Minute)) {
		t.Fatalf("unexpected exp %s", claims.ExpiresAt)
	}
}

func TestJWTIssuer_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)}
	iss := newTestIssuer(t, "secret-key", clock)

	token, err := iss.Issue("bob", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock.now = clock.now.Add(29 * time.Minute)
	if _, err := iss.Verify(token); err != nil {
		t.Fatalf("expected token valid before expiry, got %v", err)
	}

	clock.now = clock.now.Add(2 * time.Minute)
	if _, err := iss.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTIssuer_ForeignKeyRejected(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)}
	signer := newTestIssuer(t, "key-one", clock)
	verifier := newTestIssuer(t, "key-two", clock)

	token, err := signer.Issue("carol", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_AudienceAndIssuerChecked(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)}
	signer := newTestIssuer(t, "shared", clock)

	otherAud, err := NewJWTIssuer(JWTConfig{Secret: "shared", Issuer: "bookstore-api", Audience: "someone-else", TTL: time.Minute}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	otherIss, err := NewJWTIssuer(JWTConfig{Secret: "shared", Issuer: "elsewhere", Audience: "bookstore-clients", TTL: time.Minute}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	token, err := signer.Issue("dave", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := otherAud.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected audience mismatch to fail, got %v", err)
	}
	if _, err := otherIss.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected issuer mismatch to fail, got %v", err)
	}
}

func TestJWTIssuer_RejectsOtherAlgorithms(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)}
	iss := newTestIssuer(t, "secret-key", clock)

	claims := tokenClaims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			Issuer:    "bookstore-api",
			Audience:  jwt.ClaimStrings{"bookstore-clients"},
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := iss.Verify(unsigned); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected alg=none to fail, got %v", err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}
	if _, err := iss.Verify(hs512); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected HS512 to fail, got %v", err)
	}
}

func TestJWTIssuer_RejectsUnknownRoleClaim(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)}
	iss := newTestIssuer(t, "secret-key", clock)

	claims := tokenClaims{
		Role: "Superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "eve",
			Issuer:    "bookstore-api",
			Audience:  jwt.ClaimStrings{"bookstore-clients"},
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := iss.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTIssuer_Garbage(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	iss := newTestIssuer(t, "secret-key", clock)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := iss.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestNewJWTIssuer_Validation(t *testing.T) {
	if _, err := NewJWTIssuer(JWTConfig{TTL: time.Minute}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewJWTIssuer(JWTConfig{Secret: "x"}); err == nil {
		t.Fatalf("expected error for zero lifetime")
	}
}
