package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"teebox/internal/config"
	"teebox/internal/models"
	"teebox/internal/repository"
	"teebox/internal/services"
)

// resetAckMessage is returned for every well-formed forgot-password request,
// whether or not the account exists.
const resetAckMessage = "If an account with that email exists, a password reset link has been sent."

type AuthHandler struct {
	users  repository.UserRepository
	resets *services.PasswordResetService
	log    *zap.Logger
	v      *validator.Validate
}

func NewAuthHandler(db *sql.DB, cfg *config.Config, mailer services.EmailSender, log *zap.Logger) *AuthHandler {
	users := repository.NewUserRepository(db)
	resets := services.NewPasswordResetService(
		users, mailer, log,
		cfg.AppBaseURL, cfg.ResetTokenTTL, cfg.AuthExposeResetLink,
	)
	return &AuthHandler{
		users:  users,
		resets: resets,
		log:    log,
		v:      validator.New(),
	}
}

// @Tags Auth
// @Summary Create an account
// @Accept json
// @Produce json
// @Param body body models.SignupRequest true "Signup request"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "signup_failed", "Failed to create account")
		return
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.users.Create(r.Context(), u); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			writeJSONErrorResponse(w, http.StatusBadRequest, "email_taken", "An account with that email already exists")
			return
		}
		h.log.Error("signup failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "signup_failed", "Failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	})
}

// @Tags Auth
// @Summary Request a password reset link
// @Description Responds identically whether or not the email is registered.
// @Accept json
// @Produce json
// @Param body body models.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} models.ForgotPasswordResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	out, err := h.resets.RequestReset(r.Context(), req.Email)
	if err != nil {
		// Full detail stays in the server log; the client gets nothing
		// it could use to probe accounts or internals.
		h.log.Error("password reset request failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, models.ForgotPasswordResponse{
		Message:  resetAckMessage,
		ResetURL: out.ResetURL,
	})
}

// @Tags Auth
// @Summary Complete a password reset
// @Accept json
// @Produce json
// @Param body body models.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "reset_failed", "Failed to reset password")
		return
	}

	err = h.users.ResetPassword(r.Context(), req.Token, string(hash), time.Now().UTC())
	if err != nil {
		// Used, expired, superseded and never-issued tokens are
		// indistinguishable to the caller.
		if errors.Is(err, repository.ErrNotFound) {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_token", "Invalid or expired token")
			return
		}
		h.log.Error("password reset completion failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "reset_failed", "Failed to reset password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Password reset successful"})
}
