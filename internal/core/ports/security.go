package ports

import "github.com/bookstore/catalog-api/internal/core/domain"

// PasswordHasher produces and checks salted one-way password digests.
// Verify returns false for a mismatch; it never treats that as an error.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer mints and verifies signed bearer tokens.
type TokenIssuer interface {
	Issue(subject string, role domain.Role) (string, error)
	TokenVerifier
}

// TokenVerifier is the read-only half of TokenIssuer used by middleware.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
