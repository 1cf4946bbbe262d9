// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topics store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		panic("logger cannot be nil for TopicHandler")
	}
	return &TopicHandler{
		topics: topics,
		logger: logger.With(slog.String("component", "topic_handler")),
	}
}

// GetTopics handles GET /api/topics.
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"topics": topics})
}

// PostTopic handles POST /api/topics. Slug and description are required
// and must be non-empty; the image URL is optional.
func (h *TopicHandler) PostTopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, err := decodeBody(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := body.requireTruthy("slug", "description"); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	slug, err := body.stringField("slug", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	description, err := body.stringField("description", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	imgURL, err := body.stringField("img_url", "")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	topic := &domain.Topic{Slug: slug, Description: description, ImgURL: imgURL}
	if err := h.topics.Create(r.Context(), topic); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("topic created", slog.String("slug", topic.Slug))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"topic": topic})
}
