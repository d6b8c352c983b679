package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// List returns every book ordered by creation time.
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	var models []bookModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	out := make([]*domain.Book, 0, len(models))
	for _, m := range models {
		out = append(out, bookFromModel(m))
	}
	return out, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	var model bookModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return bookFromModel(model), nil
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) error {
	model := bookToModel(b)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// Update overwrites title, author and updated_at of an existing book.
func (r *BookRepository) Update(ctx context.Context, b *domain.Book) error {
	res := r.db.WithContext(ctx).
		Model(&bookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title":      b.Title,
			"author":     b.Author,
			"updated_at": b.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&bookModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}
