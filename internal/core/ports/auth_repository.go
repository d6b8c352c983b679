package ports

import (
	"context"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

// UserRepository defines persistence for accounts.
//
// Create must reject a second user with the same username with
// domain.ErrUserExists; the store's unique constraint is the authority on
// uniqueness, not any lookup done beforehand.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
