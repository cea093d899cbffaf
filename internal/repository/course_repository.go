package repository

import (
	"context"
	"database/sql"

	"teebox/internal/models"
)

type CourseRepository interface {
	Upsert(ctx context.Context, course *models.Course) error
	ListAll(ctx context.Context) ([]models.Course, error)
	Count(ctx context.Context) (int, error)
}

type courseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Upsert(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (id, external_id, club_name, course_name, city, state, holes, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_id) DO UPDATE
		SET club_name = EXCLUDED.club_name,
			course_name = EXCLUDED.course_name,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			holes = EXCLUDED.holes,
			synced_at = EXCLUDED.synced_at
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		course.ID, course.ExternalID, course.ClubName, course.CourseName,
		course.City, course.State, course.Holes, course.SyncedAt,
	).Scan(&course.ID)
}

func (r *courseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, external_id, club_name, course_name, city, state, holes, synced_at
		FROM courses
		ORDER BY club_name, course_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.ExternalID, &c.ClubName, &c.CourseName, &c.City, &c.State, &c.Holes, &c.SyncedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

func (r *courseRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
