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

func RegisterCourseRoutes(router chi.Router, db *sql.DB, cfg *config.Config, log *zap.Logger) {
	client := services.NewGolfCourseClient(cfg.GolfAPIBaseURL, cfg.GolfAPIKey)
	courseHandler := handlers.NewCourseHandler(client)
	syncHandler := handlers.NewSyncHandler(repository.NewCourseRepository(db), client, log)

	router.Route("/courses", func(r chi.Router) {
		r.Get("/", courseHandler.SearchCourses)
		// Static route beats the {id} wildcard in chi.
		r.Get("/local", syncHandler.ListLocalCourses)
		r.Get("/{id}", courseHandler.GetCourse)
	})
}
