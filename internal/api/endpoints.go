package api

import (
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
)

// EndpointDoc describes one endpoint for the GET /api listing.
type EndpointDoc struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
}

// endpointDocs is served from GET /api as living documentation of the
// available endpoints.
var endpointDocs = map[string]EndpointDoc{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"POST /api/topics": {
		Description: "adds a topic and serves the created topic",
	},
	"GET /api/articles": {
		Description: "serves an array of all articles with their comment counts, and a total_count of rows matching the filter",
		Queries:     []string{"sort_by", "order", "topic", "limit", "p"},
	},
	"POST /api/articles": {
		Description: "adds an article and serves the created article with its comment count",
	},
	"GET /api/articles/:article_id": {
		Description: "serves the requested article with its comment count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adjusts the article's votes by inc_votes and serves the updated article",
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes the requested article",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for the requested article, newest first",
		Queries:     []string{"limit", "p"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to the requested article and serves the created comment",
	},
	"PATCH /api/comments/:comment_id": {
		Description: "adjusts the comment's votes by inc_votes and serves the updated comment",
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the requested comment",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves the requested user",
	},
}

// GetEndpoints handles GET /api.
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"endpoints": endpointDocs})
}

// NotFoundHandler is the fallback for unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
}
