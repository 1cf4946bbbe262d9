package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ncnews/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleIncrementVotesMissingIDFastUpdate(t *testing.T) {
	db := openFakeDB(func(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
		switch {
		case strings.Contains(query, "UPDATE articles"):
			// No row matches; the update fails before the check finishes.
			return &fakeRows{cols: []string{"article_id"}}, nil
		case strings.Contains(query, "SELECT 1 FROM articles"):
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(20 * time.Millisecond):
				return &fakeRows{cols: []string{"?column?"}}, nil
			}
		}
		return nil, fmt.Errorf("unexpected query: %s", query)
	})
	defer func() { _ = db.Close() }()

	s := NewPostgresArticleStore(db, store.DeleteCascade, slog.Default())

	_, err := s.IncrementVotes(context.Background(), 99999, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

// A vote patch re-fetches the article, so the response carries the
// derived comment_count instead of a zero placeholder.
func TestArticleIncrementVotesCarriesCommentCount(t *testing.T) {
	createdAt := time.Date(2020, 10, 16, 5, 23, 0, 0, time.UTC)

	db := openFakeDB(func(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
		switch {
		case strings.Contains(query, "SELECT 1 FROM articles"):
			return &fakeRows{
				cols: []string{"?column?"},
				rows: [][]driver.Value{{int64(1)}},
			}, nil
		case strings.Contains(query, "UPDATE articles"):
			return &fakeRows{
				cols: []string{"article_id"},
				rows: [][]driver.Value{{int64(1)}},
			}, nil
		case strings.Contains(query, "LEFT JOIN comments"):
			return &fakeRows{
				cols: []string{
					"article_id", "title", "topic", "author", "body",
					"created_at", "votes", "article_img_url", "comment_count",
				},
				rows: [][]driver.Value{{
					int64(1), "Living in the shadow of a great man", "mitch", "butter_bridge",
					"I find this existence challenging", createdAt, int64(101),
					"https://example.com/img.jpeg", int64(11),
				}},
			}, nil
		}
		return nil, fmt.Errorf("unexpected query: %s", query)
	})
	defer func() { _ = db.Close() }()

	s := NewPostgresArticleStore(db, store.DeleteCascade, slog.Default())

	article, err := s.IncrementVotes(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 101, article.Votes)
	assert.Equal(t, 11, article.CommentCount)
	assert.Equal(t, "I find this existence challenging", article.Body)
}
