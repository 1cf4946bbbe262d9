package store

// Article listing defaults. Query parameters that are absent from the
// request fall back to these values.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ArticleQuery carries the listing parameters for GET /api/articles.
// Zero values mean "not provided"; Normalize fills in the defaults.
type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Page   int
}

// Normalize returns a copy with defaults applied. Validation of SortBy
// and Order against the allow-list happens in the query builder, not
// here, so that an unknown column is rejected before any SQL is built.
func (q ArticleQuery) Normalize() ArticleQuery {
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.Order == "" {
		q.Order = DefaultOrder
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	return q
}

// Offset is the number of rows to skip before the current page's first
// row: limit * (page - 1).
func (q ArticleQuery) Offset() int {
	return q.Limit * (q.Page - 1)
}

// PageQuery carries limit/page pagination for comment listings, which
// have a fixed sort and filter.
type PageQuery struct {
	Limit int
	Page  int
}

// Normalize returns a copy with defaults applied.
func (q PageQuery) Normalize() PageQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	return q
}

// Offset is limit * (page - 1).
func (q PageQuery) Offset() int {
	return q.Limit * (q.Page - 1)
}
