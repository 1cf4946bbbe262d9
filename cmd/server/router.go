package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ncnews/news-api/internal/api"
	apiMiddleware "github.com/ncnews/news-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	// Bounds every store operation through the request context.
	r.Use(middleware.Timeout(app.config.Database.QueryTimeout))

	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.GetEndpoints)

		r.Get("/topics", topicHandler.GetTopics)
		r.Post("/topics", topicHandler.PostTopic)

		r.Get("/articles", articleHandler.GetArticles)
		r.Post("/articles", articleHandler.PostArticle)
		r.Get("/articles/{article_id}", articleHandler.GetArticleByID)
		r.Patch("/articles/{article_id}", articleHandler.PatchArticleByID)
		r.Delete("/articles/{article_id}", articleHandler.DeleteArticleByID)

		r.Get("/articles/{article_id}/comments", commentHandler.GetCommentsByArticleID)
		r.Post("/articles/{article_id}/comments", commentHandler.PostCommentByArticleID)

		r.Patch("/comments/{comment_id}", commentHandler.PatchCommentByID)
		r.Delete("/comments/{comment_id}", commentHandler.DeleteCommentByID)

		r.Get("/users", userHandler.GetUsers)
		r.Get("/users/{username}", userHandler.GetUserByUsername)
	})

	r.NotFound(api.NotFoundHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
