package models

import "time"

// User is an account row. PasswordHash is empty for social-login-only
// accounts; those are not eligible for password reset. ResetToken and
// ResetTokenExpiry are always set and cleared together.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email" validate:"required,email"`
	Name             string     `json:"name,omitempty"`
	PasswordHash     string     `json:"-"`
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
}

// HasPassword reports whether the account carries a password credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=512"`
}

type ForgotPasswordResponse struct {
	Message string `json:"message"`
	// ResetURL is populated only when the server runs with
	// AUTH_EXPOSE_RESET_LINK on (development).
	ResetURL string `json:"resetUrl,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
