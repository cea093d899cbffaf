package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"teebox/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	SetResetToken(ctx context.Context, email string, token string, expiry time.Time) error
	ResetPassword(ctx context.Context, token string, passwordHash string, now time.Time) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, password_hash, reset_token, reset_token_expiry, created_at`

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	passwordHash := sql.NullString{String: user.PasswordHash, Valid: user.PasswordHash != ""}
	return r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, passwordHash, user.CreatedAt,
	).Scan(&user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail matches the email exactly, including case.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) ListAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, email, name, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// SetResetToken writes both token fields in one statement. A repeated call
// overwrites the previous token, which invalidates it (last writer wins).
func (r *userRepository) SetResetToken(ctx context.Context, email string, token string, expiry time.Time) error {
	query := `
		UPDATE users
		SET reset_token = $1, reset_token_expiry = $2
		WHERE email = $3
	`
	res, err := r.db.ExecContext(ctx, query, token, expiry, email)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// ResetPassword consumes an outstanding token: the new hash is stored and
// both token fields are cleared in a single conditional update, so a token
// is usable at most once and only before its expiry.
func (r *userRepository) ResetPassword(ctx context.Context, token string, passwordHash string, now time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token = $2 AND reset_token_expiry > $3
	`
	res, err := r.db.ExecContext(ctx, query, passwordHash, token, now)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var passwordHash sql.NullString
	var resetToken sql.NullString
	var resetTokenExpiry sql.NullTime

	err := row.Scan(&u.ID, &u.Email, &u.Name, &passwordHash, &resetToken, &resetTokenExpiry, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.PasswordHash = passwordHash.String
	if resetToken.Valid {
		u.ResetToken = &resetToken.String
	}
	if resetTokenExpiry.Valid {
		u.ResetTokenExpiry = &resetTokenExpiry.Time
	}
	return &u, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
