package store

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
)

// DeletePolicy controls what happens to an article's comments when the
// article is deleted. The schema declares no ON DELETE behavior, so the
// policy is applied by the store.
type DeletePolicy string

const (
	// DeleteCascade removes the article's comments in the same
	// transaction as the article.
	DeleteCascade DeletePolicy = "cascade"

	// DeleteRestrict refuses to delete an article that still has
	// comments, returning ErrDeleteRestricted.
	DeleteRestrict DeletePolicy = "restrict"

	// DeleteOrphan deletes only the article, leaving its comments in
	// place. This matches the historical behavior of the service.
	DeleteOrphan DeletePolicy = "orphan"
)

// ArticleList is the result of a paginated article listing.
type ArticleList struct {
	Articles   []*domain.Article
	TotalCount int
}

// TopicStore manages topic persistence.
type TopicStore interface {
	List(ctx context.Context) ([]*domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) error
}

// UserStore manages user reads. Users are seeded, never written via the API.
type UserStore interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ArticleStore manages article persistence and the paginated listing.
type ArticleStore interface {
	List(ctx context.Context, q ArticleQuery) (*ArticleList, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// CommentStore manages comment persistence.
type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int64, q PageQuery) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
