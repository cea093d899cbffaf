package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"teebox/internal/handlers"
	"teebox/internal/repository"
)

func RegisterUserRoutes(router chi.Router, db *sql.DB) {
	userRepo := repository.NewUserRepository(db)
	userHandler := handlers.NewUserHandler(userRepo)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Delete("/", userHandler.DeleteUser)
		})
	})
}
