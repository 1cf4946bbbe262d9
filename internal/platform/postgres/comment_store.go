package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle. Comments
// have a fixed sort (created_at DESC) and a fixed article filter; the
// pagination mechanics match the article listing. The existence check is
// against the article, so an article with no comments is an empty page
// while a missing article is a not-found error.
func (s *PostgresCommentStore) ListByArticle(ctx context.Context, articleID int64, q store.PageQuery) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q = q.Normalize()
	offset := q.Offset()

	g, gctx := errgroup.WithContext(ctx)

	var (
		comments []*domain.Comment
		checkErr error
		pageErr  error
	)

	g.Go(func() error {
		// On the caller's context, so a faster failure in the paired
		// queries cannot cancel the check before it reaches a verdict.
		if err := checkExists(ctx, s.db, "articles", "article_id", articleID); err != nil {
			checkErr = err
			return err
		}
		return nil
	})

	g.Go(func() error {
		query := `
			SELECT comment_id, article_id, body, votes, author, created_at
			FROM comments
			WHERE article_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		rows, err := s.db.QueryContext(gctx, query, articleID, q.Limit, offset)
		if err != nil {
			return MapError(err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var c domain.Comment
			if err := rows.Scan(&c.ID, &c.ArticleID, &c.Body, &c.Votes, &c.Author, &c.CreatedAt); err != nil {
				return fmt.Errorf("failed to scan comment row: %w", err)
			}
			comments = append(comments, &c)
		}
		return rows.Err()
	})

	g.Go(func() error {
		countQuery := `SELECT COUNT(*)::INT AS total_count FROM comments WHERE article_id = $1`
		if _, err := verifyPage(gctx, s.db, countQuery, []any{articleID}, offset); err != nil {
			pageErr = err
			return err
		}
		return nil
	})

	err := g.Wait()
	switch {
	case checkErr != nil && store.IsNotFoundError(checkErr):
		return nil, checkErr
	case pageErr != nil && errors.Is(pageErr, store.ErrPageOutOfRange):
		return nil, pageErr
	case err != nil:
		log.Error("failed to list comments",
			slog.String("error", err.Error()),
			slog.Int64("article_id", articleID))
		return nil, err
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// Create implements store.CommentStore.Create. The article existence
// check runs concurrently with the insert and its not-found verdict
// wins, turning the foreign key violation a missing article would cause
// into a clean not-found error.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)

	var (
		created  domain.Comment
		checkErr error
	)

	g.Go(func() error {
		if err := checkExists(ctx, s.db, "articles", "article_id", comment.ArticleID); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		query := `
			INSERT INTO comments (created_at, article_id, author, body)
			VALUES ($1, $2, $3, $4)
			RETURNING comment_id, article_id, body, votes, author, created_at
		`
		return s.db.QueryRowContext(gctx, query,
			comment.CreatedAt, comment.ArticleID, comment.Author, comment.Body,
		).Scan(&created.ID, &created.ArticleID, &created.Body, &created.Votes, &created.Author, &created.CreatedAt)
	})

	err := g.Wait()
	if checkErr != nil && store.IsNotFoundError(checkErr) {
		return nil, checkErr
	}
	if err != nil {
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("article_id", comment.ArticleID))
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("article_id", created.ArticleID))
	return &created, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes.
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)

	var (
		c        domain.Comment
		checkErr error
	)

	g.Go(func() error {
		if err := checkExists(ctx, s.db, "comments", "comment_id", id); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		query := `
			UPDATE comments
			SET votes = votes + $1
			WHERE comment_id = $2
			RETURNING comment_id, article_id, body, votes, author, created_at
		`
		return s.db.QueryRowContext(gctx, query, delta, id).Scan(
			&c.ID, &c.ArticleID, &c.Body, &c.Votes, &c.Author, &c.CreatedAt,
		)
	})

	err := g.Wait()
	if checkErr != nil && store.IsNotFoundError(checkErr) {
		return nil, checkErr
	}
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to update comment votes",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, mapped
	}

	return &c, nil
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)

	var checkErr error

	g.Go(func() error {
		if err := checkExists(ctx, s.db, "comments", "comment_id", id); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		result, err := s.db.ExecContext(gctx, `DELETE FROM comments WHERE comment_id = $1`, id)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, store.ErrCommentNotFound)
	})

	err := g.Wait()
	if checkErr != nil && store.IsNotFoundError(checkErr) {
		return checkErr
	}
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete comment",
				slog.String("error", err.Error()),
				slog.Int64("comment_id", id))
		}
		return err
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
