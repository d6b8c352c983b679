package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestUserRepository(t *testing.T) {
	mt := newMock(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewUserRepository(mt.DB)

		u, err := repo.Create(context.Background(), &domain.User{
			ID: "u-1", Username: "alice", PasswordHash: "digest", Role: domain.RoleUser, CreatedAt: created,
		})
		if err != nil {
			mt.Fatalf("create: %v", err)
		}
		if u.ID != "u-1" || u.Username != "alice" {
			mt.Fatalf("unexpected user %+v", u)
		}
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))
		repo := NewUserRepository(mt.DB)

		_, err := repo.Create(context.Background(), &domain.User{ID: "u-2", Username: "alice", Role: domain.RoleUser})
		if !errors.Is(err, domain.ErrUserExists) {
			mt.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("find", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-1"},
			{Key: "username", Value: "alice"},
			{Key: "password_hash", Value: "digest"},
			{Key: "role", Value: "Admin"},
			{Key: "created_at", Value: created},
		}))
		repo := NewUserRepository(mt.DB)

		u, err := repo.FindByUsername(context.Background(), "alice")
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if u.ID != "u-1" || u.Role != domain.RoleAdmin || !u.CreatedAt.Equal(created) {
			mt.Fatalf("unexpected user %+v", u)
		}
	})

	mt.Run("find missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))
		repo := NewUserRepository(mt.DB)

		if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func bookDoc(id, title string, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "author", Value: "Frank Herbert"},
		{Key: "created_at", Value: created},
		{Key: "updated_at", Value: created},
	}
}

func TestBookRepository(t *testing.T) {
	mt := newMock(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.books", mtest.FirstBatch,
			bookDoc("b-1", "Dune", created),
			bookDoc("b-2", "Dune Messiah", created.Add(time.Hour)),
		))
		repo := NewBookRepository(mt.DB)

		books, err := repo.List(context.Background())
		if err != nil {
			mt.Fatalf("list: %v", err)
		}
		if len(books) != 2 || books[0].ID != "b-1" || books[1].Title != "Dune Messiah" {
			mt.Fatalf("unexpected books %+v", books)
		}
	})

	mt.Run("find", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.books", mtest.FirstBatch, bookDoc("b-1", "Dune", created)))
		repo := NewBookRepository(mt.DB)

		b, err := repo.FindByID(context.Background(), "b-1")
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if b.Title != "Dune" || !b.CreatedAt.Equal(created) {
			mt.Fatalf("unexpected book %+v", b)
		}
	})

	mt.Run("find missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.books", mtest.FirstBatch))
		repo := NewBookRepository(mt.DB)

		if _, err := repo.FindByID(context.Background(), "nope"); !errors.Is(err, domain.ErrBookNotFound) {
			mt.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewBookRepository(mt.DB)

		if err := repo.Create(context.Background(), &domain.Book{ID: "b-1", Title: "Dune", Author: "Frank Herbert"}); err != nil {
			mt.Fatalf("create: %v", err)
		}
	})

	mt.Run("update", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})
		repo := NewBookRepository(mt.DB)

		if err := repo.Update(context.Background(), &domain.Book{ID: "b-1", Title: "Dune", Author: "F. Herbert"}); err != nil {
			mt.Fatalf("update: %v", err)
		}
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})
		repo := NewBookRepository(mt.DB)

		if err := repo.Update(context.Background(), &domain.Book{ID: "nope"}); !errors.Is(err, domain.ErrBookNotFound) {
			mt.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		repo := NewBookRepository(mt.DB)

		if err := repo.Delete(context.Background(), "b-1"); err != nil {
			mt.Fatalf("delete: %v", err)
		}
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		repo := NewBookRepository(mt.DB)

		if err := repo.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrBookNotFound) {
			mt.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})
}
