package ports

import (
	"context"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

// CreateBookInput carries the fields needed to add a book.
type CreateBookInput struct {
	Title  string
	Author string
}

// UpdateBookInput carries a full replacement of a book's fields. PathID is
// the id addressed by the request; BodyID is the id the client sent in the
// payload. They must agree.
type UpdateBookInput struct {
	PathID string
	BodyID string
	Title  string
	Author string
}

// BookService defines use-case operations for the catalog.
type BookService interface {
	ListBooks(ctx context.Context) ([]*domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	CreateBook(ctx context.Context, in CreateBookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, in UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) (*domain.Book, error)
}
