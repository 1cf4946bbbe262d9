package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticleDefaults(t *testing.T) {
	a := NewArticle("title", "mitch", "butter_bridge", "text", "")

	assert.Equal(t, DefaultArticleImgURL, a.ArticleImgURL)
	assert.Equal(t, 0, a.Votes)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Zero(t, a.ID)
}

func TestNewArticleExplicitImage(t *testing.T) {
	a := NewArticle("title", "mitch", "butter_bridge", "text", "https://example.com/cat.png")

	assert.Equal(t, "https://example.com/cat.png", a.ArticleImgURL)
}

func TestArticleJSONOmitsEmptyBody(t *testing.T) {
	// List rows are scanned without the body column; the zero value must
	// not leak into the response.
	data, err := json.Marshal(&Article{ID: 1, Title: "t"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "body")
	assert.Equal(t, float64(1), m["article_id"])
}

func TestNewComment(t *testing.T) {
	c := NewComment(3, "lurker", "well said")

	assert.EqualValues(t, 3, c.ArticleID)
	assert.Equal(t, "lurker", c.Author)
	assert.Equal(t, "well said", c.Body)
	assert.Equal(t, 0, c.Votes)
}
