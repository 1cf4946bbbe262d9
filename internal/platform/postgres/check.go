package postgres

import (
	"context"
	"fmt"

	"github.com/ncnews/news-api/internal/store"
)

// existenceChecks is the allow-list of (table, column) pairs the
// existence validator may probe, mapped to the error returned when no
// row matches. Table and column names are never taken from request
// input; an unknown pair is a programming error.
var existenceChecks = map[[2]string]error{
	{"topics", "slug"}:         store.ErrTopicNotFound,
	{"users", "username"}:      store.ErrUserNotFound,
	{"articles", "article_id"}: store.ErrArticleNotFound,
	{"comments", "comment_id"}: store.ErrCommentNotFound,
}

// checkExists confirms that at least one row in table has column equal
// to value. It is issued concurrently with the operation it guards, and
// a not-found verdict takes precedence over whatever the paired
// operation returned, so a well-formed id that matches nothing yields a
// clean "not found" instead of an empty result or a raw constraint
// error. Callers pass their own context rather than the errgroup's: the
// paired operation often fails faster than the check completes (an
// UPDATE on a missing id returns no rows immediately), and a group
// cancellation at that point would discard the verdict.
func checkExists(ctx context.Context, db store.DBTX, table, column string, value any) error {
	notFound, ok := existenceChecks[[2]string{table, column}]
	if !ok {
		return fmt.Errorf("existence check not allowed for %s.%s", table, column)
	}

	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1 LIMIT 1`, table, column)

	var one int
	if err := db.QueryRowContext(ctx, query, value).Scan(&one); err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return notFound
		}
		return mapped
	}
	return nil
}

// verifyPage runs the COUNT query and checks the page offset against the
// total. A request beyond the last row fails with ErrPageOutOfRange,
// except when the result set is empty: zero rows is a valid empty page,
// not an out-of-range error. Returns the total for the response payload.
func verifyPage(ctx context.Context, db store.DBTX, countQuery string, args []any, offset int) (int, error) {
	var total int
	if err := db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, MapError(err)
	}
	if offset+1 > total && total != 0 {
		return 0, store.ErrPageOutOfRange
	}
	return total, nil
}
