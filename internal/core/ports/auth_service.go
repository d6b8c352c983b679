package ports

import (
	"context"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

// RegisterInput carries a registration request from the transport layer.
type RegisterInput struct {
	Username string
	Password string
	Role     string
	AdminKey string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
