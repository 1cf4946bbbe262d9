package postgres

import (
	"fmt"
	"strings"

	"github.com/ncnews/news-api/internal/store"
)

// articleSortColumns is the allow-list of accepted sort_by values mapped
// to the identifier interpolated into ORDER BY. Sort columns are the one
// place a query needs a dynamic identifier rather than a bound value, so
// anything not in this map is rejected before a query is built.
var articleSortColumns = map[string]string{
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// articleListSQL holds the two queries produced for a listing request:
// the page query and the COUNT over the same filtered, pre-limit shape.
type articleListSQL struct {
	Query     string
	QueryArgs []any
	Count     string
	CountArgs []any
	Offset    int
}

// buildArticleListQuery turns a normalized ArticleQuery into SQL. The
// topic filter is bound as a parameter; sort column and direction are
// interpolated only after resolving against the allow-list; limit and
// offset are bound as parameters.
func buildArticleListQuery(q store.ArticleQuery) (*articleListSQL, error) {
	sortCol, ok := articleSortColumns[q.SortBy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrUndefinedColumn, q.SortBy)
	}

	order := strings.ToUpper(q.Order)
	if order != "ASC" && order != "DESC" {
		return nil, fmt.Errorf("%w: %s", store.ErrInvalidOrder, q.Order)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT articles.article_id, articles.title, articles.topic, articles.author,
		articles.created_at, articles.votes, articles.article_img_url,
		COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id`)

	var queryArgs, countArgs []any
	countQuery := `SELECT COUNT(*)::INT AS total_count FROM articles`

	if q.Topic != "" {
		sb.WriteString(`
		WHERE articles.topic = $1`)
		countQuery += ` WHERE topic = $1`
		queryArgs = append(queryArgs, q.Topic)
		countArgs = append(countArgs, q.Topic)
	}

	sb.WriteString(`
		GROUP BY articles.article_id`)
	fmt.Fprintf(&sb, `
		ORDER BY %s %s`, sortCol, order)

	offset := q.Offset()
	fmt.Fprintf(&sb, `
		LIMIT $%d OFFSET $%d`, len(queryArgs)+1, len(queryArgs)+2)
	queryArgs = append(queryArgs, q.Limit, offset)

	return &articleListSQL{
		Query:     sb.String(),
		QueryArgs: queryArgs,
		Count:     countQuery,
		CountArgs: countArgs,
		Offset:    offset,
	}, nil
}
