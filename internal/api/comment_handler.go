package api

import (
	"log/slog"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		panic("logger cannot be nil for CommentHandler")
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// GetCommentsByArticleID handles GET /api/articles/{article_id}/comments.
// An article with no comments is an empty array, not an error; a missing
// article is a 404.
func (h *CommentHandler) GetCommentsByArticleID(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := queryInt(r, "p")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.comments.ListByArticle(r.Context(), articleID, store.PageQuery{Limit: limit, Page: page})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"comments": comments})
}

// PostCommentByArticleID handles POST /api/articles/{article_id}/comments.
// Username and body are required and must be non-empty.
func (h *CommentHandler) PostCommentByArticleID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := pathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := body.requireTruthy("username", "body"); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	username, err := body.stringField("username", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	text, err := body.stringField("body", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), domain.NewComment(articleID, username, text))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("article_id", articleID))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"comment": comment})
}

// PatchCommentByID handles PATCH /api/comments/{comment_id}.
func (h *CommentHandler) PatchCommentByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := body.requireTruthy("inc_votes"); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	delta, err := body.intField("inc_votes")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.comments.IncrementVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"comment": comment})
}

// DeleteCommentByID handles DELETE /api/comments/{comment_id}.
func (h *CommentHandler) DeleteCommentByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
