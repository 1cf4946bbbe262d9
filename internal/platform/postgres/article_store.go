package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db           *sql.DB
	deletePolicy store.DeletePolicy
	logger       *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. It needs a *sql.DB rather than a DBTX because
// the cascade delete policy opens its own transaction.
func NewPostgresArticleStore(db *sql.DB, deletePolicy store.DeletePolicy, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:           db,
		deletePolicy: deletePolicy,
		logger:       logger.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// List implements store.ArticleStore.List. The page query, the COUNT
// query and the optional topic existence check are issued concurrently;
// a not-found verdict from the check takes precedence over whatever the
// other two returned, so filtering by a missing topic is a not-found error while
// filtering by an existing topic with no articles is an empty page.
func (s *PostgresArticleStore) List(ctx context.Context, q store.ArticleQuery) (*store.ArticleList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q = q.Normalize()
	listSQL, err := buildArticleListQuery(q)
	if err != nil {
		log.Debug("rejected article listing parameters",
			slog.String("sort_by", q.SortBy),
			slog.String("order", q.Order),
			slog.String("error", err.Error()))
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	var (
		articles []*domain.Article
		total    int
		checkErr error
		pageErr  error
	)

	if q.Topic != "" {
		g.Go(func() error {
			// On the caller's context, so a faster failure in the paired
			// queries cannot cancel the check before it reaches a verdict.
			if err := checkExists(ctx, s.db, "topics", "slug", q.Topic); err != nil {
				checkErr = err
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		rows, err := s.db.QueryContext(gctx, listSQL.Query, listSQL.QueryArgs...)
		if err != nil {
			return MapError(err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var a domain.Article
			if err := rows.Scan(
				&a.ID, &a.Title, &a.Topic, &a.Author,
				&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
			); err != nil {
				return fmt.Errorf("failed to scan article row: %w", err)
			}
			articles = append(articles, &a)
		}
		return rows.Err()
	})

	g.Go(func() error {
		n, err := verifyPage(gctx, s.db, listSQL.Count, listSQL.CountArgs, listSQL.Offset)
		if err != nil {
			pageErr = err
			return err
		}
		total = n
		return nil
	})

	err = g.Wait()
	switch {
	case checkErr != nil && store.IsNotFoundError(checkErr):
		return nil, checkErr
	case pageErr != nil && errors.Is(pageErr, store.ErrPageOutOfRange):
		return nil, pageErr
	case err != nil:
		log.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, err
	}

	if articles == nil {
		articles = []*domain.Article{}
	}
	return &store.ArticleList{Articles: articles, TotalCount: total}, nil
}

// GetByID implements store.ArticleStore.GetByID. This is the single-row
// variant of the listing query: same join shape, so the article carries
// its derived comment_count, plus the body column.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
			articles.body, articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article by ID",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, mapped
	}
	return &a, nil
}

// Create implements store.ArticleStore.Create. The topic and author
// existence checks run concurrently with the insert; the database's own
// foreign key constraints make the checks redundant, they exist to turn
// a raw constraint violation into a clean not-found error. The created
// article is re-fetched so the response carries comment_count.
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)

	var (
		id       int64
		checkErr error
	)

	g.Go(func() error {
		if err := checkExists(ctx, s.db, "topics", "slug", article.Topic); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := checkExists(ctx, s.db, "users", "username", article.Author); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		query := `
			INSERT INTO articles (created_at, title, topic, author, body, votes, article_img_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING article_id
		`
		return s.db.QueryRowContext(gctx, query,
			article.CreatedAt, article.Title, article.Topic, article.Author,
			article.Body, article.Votes, article.ArticleImgURL,
		).Scan(&id)
	})

	err := g.Wait()
	if checkErr != nil && store.IsNotFoundError(checkErr) {
		return nil, checkErr
	}
	if err != nil {
		log.Error("failed to create article",
			slog.String("error", err.Error()),
			slog.String("title", article.Title))
		return nil, MapError(err)
	}

	log.Info("article created",
		slog.Int64("article_id", id),
		slog.String("topic", article.Topic),
		slog.String("author", article.Author))
	return s.GetByID(ctx, id)
}

// IncrementVotes implements store.ArticleStore.IncrementVotes. The vote
// count is only ever mutated by a signed delta applied at the store, so
// concurrent increments cannot lose updates. The updated article is
// re-fetched so the response carries its derived comment_count.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)

	var checkErr error

	g.Go(func() error {
		if err := checkExists(ctx, s.db, "articles", "article_id", id); err != nil {
			checkErr = err
			return err
		}
		return nil
	})
	g.Go(func() error {
		var updatedID int64
		query := `
			UPDATE articles
			SET votes = votes + $1
			WHERE article_id = $2
			RETURNING article_id
		`
		return s.db.QueryRowContext(gctx, query, delta, id).Scan(&updatedID)
	})

	err := g.Wait()
	if checkErr != nil && store.IsNotFoundError(checkErr) {
		return nil, checkErr
	}
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, mapped
	}

	return s.GetByID(ctx, id)
}

// Delete implements store.ArticleStore.Delete, applying the configured
// policy for the article's comments. The schema declares no ON DELETE
// behavior, so the policy is enforced here.
func (s *PostgresArticleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkExists(ctx, s.db, "articles", "article_id", id); err != nil {
		return err
	}

	switch s.deletePolicy {
	case store.DeleteCascade:
		err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
				return MapError(err)
			}
			result, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
			if err != nil {
				return MapError(err)
			}
			return CheckRowsAffected(result, store.ErrArticleNotFound)
		})
		if err != nil {
			return err
		}

	case store.DeleteRestrict:
		var count int
		err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*)::INT FROM comments WHERE article_id = $1`, id).Scan(&count)
		if err != nil {
			return MapError(err)
		}
		if count > 0 {
			return fmt.Errorf("%w: article %d has %d comments", store.ErrDeleteRestricted, id, count)
		}
		result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
		if err != nil {
			return MapError(err)
		}
		if err := CheckRowsAffected(result, store.ErrArticleNotFound); err != nil {
			return err
		}

	default: // store.DeleteOrphan
		result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
		if err != nil {
			return MapError(err)
		}
		if err := CheckRowsAffected(result, store.ErrArticleNotFound); err != nil {
			return err
		}
	}

	log.Info("article deleted",
		slog.Int64("article_id", id),
		slog.String("policy", string(s.deletePolicy)))
	return nil
}
