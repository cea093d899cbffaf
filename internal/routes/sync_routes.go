package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"teebox/internal/config"
	"teebox/internal/handlers"
	"teebox/internal/repository"
	"teebox/internal/services"
)

func RegisterSyncRoutes(router chi.Router, db *sql.DB, cfg *config.Config, log *zap.Logger) {
	client := services.NewGolfCourseClient(cfg.GolfAPIBaseURL, cfg.GolfAPIKey)
	h := handlers.NewSyncHandler(repository.NewCourseRepository(db), client, log)

	router.Route("/sync", func(r chi.Router) {
		r.Post("/courses", h.SyncCourses)
	})
}
