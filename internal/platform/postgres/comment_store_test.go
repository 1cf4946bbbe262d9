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

// An UPDATE on a missing id learns instantly that nothing matched, while
// the concurrent existence check is still in flight. The check's verdict
// must still decide the outcome: the caller gets a not-found error, not
// a cancellation.
func TestCommentIncrementVotesMissingIDFastUpdate(t *testing.T) {
	db := openFakeDB(func(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
		switch {
		case strings.Contains(query, "UPDATE comments"):
			return &fakeRows{cols: []string{"comment_id", "article_id", "body", "votes", "author", "created_at"}}, nil
		case strings.Contains(query, "SELECT 1 FROM comments"):
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

	s := NewPostgresCommentStore(db, slog.Default())

	_, err := s.IncrementVotes(context.Background(), 99999, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCommentNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestCommentDeleteMissingIDFastDelete(t *testing.T) {
	db := openFakeDB(func(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
		switch {
		case strings.Contains(query, "DELETE FROM comments"):
			return &fakeRows{}, nil
		case strings.Contains(query, "SELECT 1 FROM comments"):
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

	s := NewPostgresCommentStore(db, slog.Default())

	err := s.Delete(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, store.IsNotFoundError(err))
}
