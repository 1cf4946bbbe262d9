package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleQueryNormalize(t *testing.T) {
	q := ArticleQuery{}.Normalize()
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, "DESC", q.Order)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 1, q.Page)
	assert.Empty(t, q.Topic)

	// Provided values survive normalization untouched.
	q = ArticleQuery{SortBy: "votes", Order: "asc", Topic: "cats", Limit: 5, Page: 2}.Normalize()
	assert.Equal(t, "votes", q.SortBy)
	assert.Equal(t, "asc", q.Order)
	assert.Equal(t, "cats", q.Topic)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, 2, q.Page)
}

func TestArticleQueryOffset(t *testing.T) {
	tests := []struct {
		limit, page, want int
	}{
		{limit: 10, page: 1, want: 0},
		{limit: 10, page: 2, want: 10},
		{limit: 5, page: 3, want: 10},
		{limit: 1, page: 100, want: 99},
	}
	for _, tc := range tests {
		q := ArticleQuery{Limit: tc.limit, Page: tc.page}
		assert.Equal(t, tc.want, q.Offset())
	}
}

func TestPageQueryNormalize(t *testing.T) {
	q := PageQuery{}.Normalize()
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 0, q.Offset())

	q = PageQuery{Limit: 3, Page: 4}.Normalize()
	assert.Equal(t, 9, q.Offset())
}
