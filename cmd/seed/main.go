// cmd/seed/main.go
//
// Seeds a development database: ensures the database exists, runs
// migrations, and inserts demo accounts and a few local courses. Safe to run
// repeatedly; existing rows are skipped or refreshed.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"teebox/internal/config"
	"teebox/internal/db"
	"teebox/internal/db/migrations"
	"teebox/internal/logger"
	"teebox/internal/models"
	"teebox/internal/repository"
)

const demoPassword = "password123"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Environment == "production" {
		log.Fatal("refusing to seed a production database")
	}

	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatal("failed to ensure database exists", zap.Error(err))
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	seedUsers(ctx, repository.NewUserRepository(database.DB), log)
	seedCourses(ctx, repository.NewCourseRepository(database.DB), log)

	log.Info("seeding complete")
}

func seedUsers(ctx context.Context, users repository.UserRepository, log *zap.Logger) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash demo password", zap.Error(err))
	}

	demo := []models.User{
		{Email: "admin@teebox.local", Name: "Admin", PasswordHash: string(hash)},
		{Email: "player@teebox.local", Name: "Demo Player", PasswordHash: string(hash)},
		// Social-login-only account: no password hash, so it is not
		// eligible for password reset.
		{Email: "social@teebox.local", Name: "Social Player"},
	}

	for i := range demo {
		u := &demo[i]
		u.ID = uuid.NewString()
		u.CreatedAt = time.Now().UTC()

		if err := users.Create(ctx, u); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				log.Info("user already seeded", zap.String("email", u.Email))
				continue
			}
			log.Fatal("failed to seed user", zap.String("email", u.Email), zap.Error(err))
		}
		log.Info("seeded user", zap.String("email", u.Email))
	}
}

func seedCourses(ctx context.Context, courses repository.CourseRepository, log *zap.Logger) {
	demo := []models.Course{
		{ExternalID: 1001, ClubName: "Pebble Creek Golf Club", CourseName: "Championship", City: "Springfield", State: "IL", Holes: 18},
		{ExternalID: 1002, ClubName: "Willow Bend Country Club", CourseName: "North", City: "Des Moines", State: "IA", Holes: 18},
		{ExternalID: 1003, ClubName: "Cedar Ridge Municipal", City: "Topeka", State: "KS", Holes: 9},
	}

	now := time.Now().UTC()
	for i := range demo {
		c := &demo[i]
		c.ID = uuid.NewString()
		c.SyncedAt = now

		if err := courses.Upsert(ctx, c); err != nil {
			log.Fatal("failed to seed course", zap.String("club", c.ClubName), zap.Error(err))
		}
		log.Info("seeded course", zap.String("club", c.ClubName))
	}
}
