package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT username, name, avatar_url FROM users`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []*domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// GetByUsername implements store.UserStore.GetByUsername. The existence
// check and the single-row select are issued together; the check's
// not-found takes precedence over the select's empty result.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)

	var (
		u        domain.User
		checkErr error
	)

	g.Go(func() error {
		if err := checkExists(ctx, s.db, "users", "username", username); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		query := `SELECT username, name, avatar_url FROM users WHERE username = $1`
		return s.db.QueryRowContext(gctx, query, username).Scan(&u.Username, &u.Name, &u.AvatarURL)
	})

	err := g.Wait()
	if checkErr != nil && store.IsNotFoundError(checkErr) {
		return nil, checkErr
	}
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, mapped
	}

	return &u, nil
}
