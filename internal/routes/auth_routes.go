package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"teebox/internal/config"
	"teebox/internal/handlers"
	"teebox/internal/services"
)

func RegisterAuthRoutes(router chi.Router, db *sql.DB, cfg *config.Config, log *zap.Logger) {
	mailer := services.NewSMTPSender(cfg)
	authHandler := handlers.NewAuthHandler(db, cfg, mailer, log)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Post("/reset-password", authHandler.ResetPassword)
	})
}
