package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookstore/catalog-api/internal/core/domain"
	"github.com/bookstore/catalog-api/internal/core/ports"
)

type BookService struct {
	repo   ports.BookRepository
	cache  ports.BookCache
	logger zerolog.Logger

	// invalidations counts cache invalidations issued by this process. A read
	// that observes a change across its repository fetch drops what it cached.
	invalidations atomic.Uint64
}

// NewBookService wires the catalog use cases. cache may be nil, in which case
// every read goes to the repository.
func NewBookService(repo ports.BookRepository, cache ports.BookCache, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, cache: cache, logger: logger}
}

func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook returns a single book, consulting the cache first. Cache failures
// are logged and otherwise ignored.
func (s *BookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrBookNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("book_id", id).Msg("book cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	gen := s.invalidations.Load()
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.remember(ctx, book)
	if s.cache != nil && s.invalidations.Load() != gen {
		s.forget(ctx, id)
	}
	return book, nil
}

func (s *BookService) CreateBook(ctx context.Context, in ports.CreateBookInput) (*domain.Book, error) {
	title, author := strings.TrimSpace(in.Title), strings.TrimSpace(in.Author)
	if title == "" || author == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	book := &domain.Book{
		ID:        uuid.NewString(),
		Title:     title,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.logger.Info().Str("book_id", book.ID).Str("title", book.Title).Str("actor", actor(ctx)).Msg("book created")
	return book, nil
}

// UpdateBook replaces title and author. The payload id must equal the path
// id; a mismatch is rejected before the repository is consulted.
func (s *BookService) UpdateBook(ctx context.Context, in ports.UpdateBookInput) (*domain.Book, error) {
	if strings.TrimSpace(in.BodyID) != strings.TrimSpace(in.PathID) {
		return nil, domain.ErrIDMismatch
	}
	title, author := strings.TrimSpace(in.Title), strings.TrimSpace(in.Author)
	if title == "" || author == "" {
		return nil, domain.ErrInvalidInput
	}

	book, err := s.repo.FindByID(ctx, strings.TrimSpace(in.PathID))
	if err != nil {
		return nil, err
	}

	book.Title = title
	book.Author = author
	book.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.forget(ctx, book.ID)
	s.logger.Info().Str("book_id", book.ID).Str("actor", actor(ctx)).Msg("book updated")
	return book, nil
}

// DeleteBook removes a book and returns it as it was before removal.
func (s *BookService) DeleteBook(ctx context.Context, id string) (*domain.Book, error) {
	id = strings.TrimSpace(id)
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.forget(ctx, id)
	s.logger.Info().Str("book_id", id).Str("actor", actor(ctx)).Msg("book deleted")
	return book, nil
}

func (s *BookService) remember(ctx context.Context, b *domain.Book) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, b); err != nil {
		s.logger.Warn().Err(err).Str("book_id", b.ID).Msg("book cache write failed")
	}
}

func (s *BookService) forget(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	s.invalidations.Add(1)
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("book_id", id).Msg("book cache invalidation failed")
	}
}

// actor names the authenticated caller for audit lines.
func actor(ctx context.Context) string {
	if c, ok := domain.ClaimsFromContext(ctx); ok {
		return c.Subject
	}
	return "anonymous"
}
