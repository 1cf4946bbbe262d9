package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesClause(t *testing.T) {
	assert.Equal(t, "($1)", valuesClause(1, 1))
	assert.Equal(t, "($1, $2, $3)", valuesClause(1, 3))
	assert.Equal(t, "($1, $2), ($3, $4)", valuesClause(2, 2))
	assert.Equal(t, "($1, $2, $3), ($4, $5, $6)", valuesClause(2, 3))
}

// The comment fixtures reference articles by title and the articles
// reference topics and users by key, so a typo in any fixture would make
// the seed fail against a live database. Catch it here instead.
func TestFixtureReferentialIntegrity(t *testing.T) {
	topics := make(map[string]bool, len(topicData))
	for _, topic := range topicData {
		topics[topic.Slug] = true
	}
	users := make(map[string]bool, len(userData))
	for _, u := range userData {
		users[u.Username] = true
	}
	articles := make(map[string]bool, len(articleData))
	for _, a := range articleData {
		assert.Truef(t, topics[a.Topic], "article %q references unknown topic %q", a.Title, a.Topic)
		assert.Truef(t, users[a.Author], "article %q references unknown author %q", a.Title, a.Author)
		articles[a.Title] = true
	}
	for _, c := range commentData {
		assert.Truef(t, articles[c.ArticleTitle], "comment references unknown article %q", c.ArticleTitle)
		assert.Truef(t, users[c.Author], "comment references unknown author %q", c.Author)
	}
}

func TestMsToTime(t *testing.T) {
	ts := msToTime(1602828180000)
	assert.Equal(t, "2020-10-16", ts.Format("2006-01-02"))
	assert.Equal(t, "UTC", ts.Location().String())
}
