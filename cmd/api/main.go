// @title                       Bookstore API
// @version                     1.0
// @description                 Book catalog with JWT authentication and role-based access control.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore/catalog-api/internal/api"
	"github.com/bookstore/catalog-api/internal/core/ports"
	"github.com/bookstore/catalog-api/internal/core/service"
	"github.com/bookstore/catalog-api/internal/infrastructure/config"
	gormstore "github.com/bookstore/catalog-api/internal/infrastructure/db/gorm"
	mongostore "github.com/bookstore/catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/bookstore/catalog-api/internal/infrastructure/db/redis"
	"github.com/bookstore/catalog-api/internal/infrastructure/http/handlers"
	"github.com/bookstore/catalog-api/internal/infrastructure/security"
	"github.com/bookstore/catalog-api/pkg/logger"
)

// stores bundles the repositories selected by DB_DRIVER.
type stores struct {
	users   ports.UserRepository
	books   ports.BookRepository
	pingers []handlers.Pinger
	close   func(context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "bookstore-api",
	})

	log := logger.Get()
	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("bye")
}

// run expects logger.Init to have been called.
func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	var cache ports.BookCache
	readiness := st.pingers
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = redisstore.NewBookCache(rdb, cfg.Redis.CacheTTL)
		readiness = append(readiness, redisstore.Pinger{Client: rdb})
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.CacheTTL).Msg("book cache enabled")
	}

	issuer, err := security.NewJWTIssuer(security.JWTConfig{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.JWTIssuer,
		Audience: cfg.Auth.JWTAudience,
		TTL:      cfg.Auth.TokenTTL(),
	})
	if err != nil {
		return fmt.Errorf("token issuer: %w", err)
	}
	if cfg.Auth.AdminKey == "" {
		log.Warn().Msg("ADMIN_KEY is empty, admin registration is disabled")
	}

	authService := service.NewAuthService(st.users, security.NewBcryptHasher(cfg.Auth.BcryptCost), issuer, cfg.Auth.AdminKey, log)
	bookService := service.NewBookService(st.books, cache, log)

	e := api.NewRouter(api.Deps{
		Logger:      log,
		AuthService: authService,
		BookService: bookService,
		Verifier:    issuer,
		Readiness:   readiness,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.Database.Driver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			users:   mongostore.NewUserRepository(db),
			books:   mongostore.NewBookRepository(db),
			pingers: []handlers.Pinger{mongostore.Pinger{Client: client}},
			close:   client.Disconnect,
		}, nil

	default:
		db, err := gormstore.Open(ctx, gormstore.Config{
			Driver: cfg.Database.Driver,
			DSN:    cfg.Database.DSN,
			Logger: logger.GormWriter{Log: logger.Get()},
		})
		if err != nil {
			return nil, err
		}
		return &stores{
			users:   gormstore.NewUserRepository(db),
			books:   gormstore.NewBookRepository(db),
			pingers: []handlers.Pinger{gormstore.Pinger{DB: db}},
			close:   func(context.Context) error { return gormstore.Close(db) },
		}, nil
	}
}
