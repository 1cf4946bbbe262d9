package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/ncnews/news-api/internal/config"
	"github.com/ncnews/news-api/internal/platform/postgres"
	"github.com/ncnews/news-api/internal/store"
)

// application holds the process-wide dependencies. Everything is
// constructed once at startup and injected; there is no global store
// handle, and shutdown is an explicit call awaited before exit.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	topicStore   store.TopicStore
	userStore    store.UserStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
}

// newApplication wires the stores onto the database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		topicStore:   postgres.NewPostgresTopicStore(db, logger),
		userStore:    postgres.NewPostgresUserStore(db, logger),
		articleStore: postgres.NewPostgresArticleStore(db, store.DeletePolicy(cfg.Articles.DeletePolicy), logger),
		commentStore: postgres.NewPostgresCommentStore(db, logger),
	}
}

// setupDatabase establishes the connection pool with the configured
// sizing and verifies connectivity.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns))
	return db, nil
}
