package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"booklib-backend/internal/config"
	"booklib-backend/internal/infrastructure/database"

	"booklib-backend/internal/domains/author"
	authorHandler "booklib-backend/internal/domains/author/handler"
	authorRepo "booklib-backend/internal/domains/author/repository"
	authorService "booklib-backend/internal/domains/author/service"

	"booklib-backend/internal/domains/book"
	bookHandler "booklib-backend/internal/domains/book/handler"
	bookRepo "booklib-backend/internal/domains/book/repository"
	bookService "booklib-backend/internal/domains/book/service"
)

// Container holds every dependency of the application and is the root of
// the dependency graph. All fields are singletons for the process lifetime.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB

	// Repositories
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// Services
	AuthorService author.Service
	BookService   book.Service

	// HTTP handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer initializes the dependency graph in order:
// config → database → repositories → services → handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")

	return c, nil
}

// Cleanup releases held resources, in reverse initialization order.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
