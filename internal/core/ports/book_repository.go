package ports

import (
	"context"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

// BookRepository defines persistence operations for books. Lookups of an
// unknown id return domain.ErrBookNotFound.
type BookRepository interface {
	List(ctx context.Context) ([]*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, b *domain.Book) error
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, id string) error
}
