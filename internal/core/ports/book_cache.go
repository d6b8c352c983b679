package ports

import (
	"context"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

// BookCache is a best-effort read-through cache in front of BookRepository.
// A miss is (nil, nil); errors mean the cache itself is unavailable.
type BookCache interface {
	Get(ctx context.Context, id string) (*domain.Book, error)
	Set(ctx context.Context, b *domain.Book) error
	Invalidate(ctx context.Context, id string) error
}
