package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		panic("logger cannot be nil for ArticleHandler")
	}
	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// GetArticles handles GET /api/articles with optional sort_by, order,
// topic, limit and p query parameters.
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
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

	params := r.URL.Query()
	q := store.ArticleQuery{
		SortBy: params.Get("sort_by"),
		Order:  params.Get("order"),
		Topic:  params.Get("topic"),
		Limit:  limit,
		Page:   page,
	}

	list, err := h.articles.List(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"articles":    list.Articles,
		"total_count": list.TotalCount,
	})
}

// GetArticleByID handles GET /api/articles/{article_id}. A well-formed
// id that matches nothing reads "No matches found"; a malformed id is a
// type error, not a not-found.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArticleNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, "No matches found", err)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": article})
}

// PostArticle handles POST /api/articles. Title, topic, author and body
// are required and must be non-empty; the image URL defaults to the
// placeholder when absent.
func (h *ArticleHandler) PostArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, err := decodeBody(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := body.requireTruthy("title", "topic", "author", "body"); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	title, err := body.stringField("title", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	topic, err := body.stringField("topic", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	author, err := body.stringField("author", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	text, err := body.stringField("body", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	imgURL, err := body.stringField("article_img_url", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.Create(r.Context(), domain.NewArticle(title, topic, author, text, imgURL))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("article created", slog.Int64("article_id", article.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"article": article})
}

// PatchArticleByID handles PATCH /api/articles/{article_id}. The body
// must carry a non-zero inc_votes delta; votes are adjusted by the
// delta, never set absolutely, and no floor is applied.
func (h *ArticleHandler) PatchArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
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

	article, err := h.articles.IncrementVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": article})
}

// DeleteArticleByID handles DELETE /api/articles/{article_id}.
func (h *ArticleHandler) DeleteArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articles.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
