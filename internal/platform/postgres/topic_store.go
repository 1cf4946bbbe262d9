package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List.
func (s *PostgresTopicStore) List(ctx context.Context) ([]*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT slug, description, img_url FROM topics`)
	if err != nil {
		log.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	topics := []*domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description, &t.ImgURL); err != nil {
			return nil, fmt.Errorf("failed to scan topic row: %w", err)
		}
		topics = append(topics, &t)
	}
	return topics, rows.Err()
}

// Create implements store.TopicStore.Create. The slug is the primary
// key, so a duplicate insert surfaces as store.ErrDuplicate.
func (s *PostgresTopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO topics (slug, description, img_url)
		VALUES ($1, $2, $3)
		RETURNING slug, description, img_url
	`
	err := s.db.QueryRowContext(ctx, query, topic.Slug, topic.Description, topic.ImgURL).
		Scan(&topic.Slug, &topic.Description, &topic.ImgURL)
	if err != nil {
		log.Error("failed to create topic",
			slog.String("error", err.Error()),
			slog.String("slug", topic.Slug))
		return MapError(err)
	}

	log.Info("topic created", slog.String("slug", topic.Slug))
	return nil
}
