package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookstore/catalog-api/internal/core/domain"
	"github.com/bookstore/catalog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	adminKey string
	logger   zerolog.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	adminKey string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		issuer:   issuer,
		adminKey: adminKey,
		logger:   logger,
	}
}

// Register creates a new account. Admin accounts require the configured
// admin key; an empty admin key disables admin registration entirely.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	if role == domain.RoleAdmin && !s.adminKeyMatches(in.AdminKey) {
		s.logger.Warn().Str("username", username).Msg("admin registration rejected")
		return nil, domain.ErrInvalidAdminKey
	}

	// Fast path only; Create is the authority on uniqueness.
	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role.String()).Msg("account registered")
	return created, nil
}

// Login verifies credentials and returns a signed token. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison so response time does not reveal whether the user exists.
			s.hasher.Verify(password, s.dummy())
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}
	return token, nil
}

func (s *AuthService) adminKeyMatches(supplied string) bool {
	if s.adminKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(s.adminKey)) == 1
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		b := make([]byte, 16)
		_, _ = rand.Read(b)
		digest, err := s.hasher.Hash(hex.EncodeToString(b))
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to prepare dummy password digest")
			return
		}
		s.dummyDigest = digest
	})
	return s.dummyDigest
}
