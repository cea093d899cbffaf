// Package services holds the application services and outbound
// collaborators (mailer, upstream golf-course API client).
package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"teebox/internal/models"
	"teebox/internal/repository"
)

// resetTokenBytes is the entropy of a reset token; hex-encoding doubles the
// length on the wire.
const resetTokenBytes = 32

// DependencyError wraps a failure of an external collaborator (the account
// store, the system RNG). Handlers log it in full and answer the client with
// a generic 500.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *DependencyError) Unwrap() error { return e.Err }

// UserStore is the slice of the account store the password reset flow needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetToken(ctx context.Context, email string, token string, expiry time.Time) error
}

// PasswordResetService issues single-use, time-limited reset tokens. All
// collaborators are injected; the service keeps no state of its own.
type PasswordResetService struct {
	store           UserStore
	mailer          EmailSender
	log             *zap.Logger
	appBaseURL      string
	tokenTTL        time.Duration
	exposeResetLink bool
	now             func() time.Time
}

func NewPasswordResetService(
	store UserStore,
	mailer EmailSender,
	log *zap.Logger,
	appBaseURL string,
	tokenTTL time.Duration,
	exposeResetLink bool,
) *PasswordResetService {
	return &PasswordResetService{
		store:           store,
		mailer:          mailer,
		log:             log,
		appBaseURL:      strings.TrimRight(appBaseURL, "/"),
		tokenTTL:        tokenTTL,
		exposeResetLink: exposeResetLink,
		now:             time.Now,
	}
}

// ResetRequestOutcome is the result of a reset request. ResetURL is set only
// when the service is configured to expose reset links (development).
type ResetRequestOutcome struct {
	ResetURL string
}

// RequestReset looks the account up by exact email match and, if it exists
// and carries a password credential, persists a fresh token with its expiry.
// A request for an unknown or passwordless account returns the same outcome
// as a successful one and mutates nothing, so responses never reveal whether
// an email is registered. A new token overwrites any outstanding one.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (ResetRequestOutcome, error) {
	var out ResetRequestOutcome

	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return out, nil
		}
		return out, &DependencyError{Op: "look up account", Err: err}
	}
	if !u.HasPassword() {
		// Social-login-only account; nothing to reset.
		return out, nil
	}

	token, err := generateResetToken()
	if err != nil {
		return out, &DependencyError{Op: "generate reset token", Err: err}
	}
	expiry := s.now().UTC().Add(s.tokenTTL)

	if err := s.store.SetResetToken(ctx, u.Email, token, expiry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Account disappeared between lookup and update; same answer
			// as if it never existed.
			return out, nil
		}
		return out, &DependencyError{Op: "store reset token", Err: err}
	}

	resetURL := s.appBaseURL + "/reset-password?token=" + token
	s.deliver(u.Email, resetURL)

	if s.exposeResetLink {
		out.ResetURL = resetURL
	}
	return out, nil
}

func (s *PasswordResetService) deliver(email, resetURL string) {
	if s.mailer == nil {
		return
	}
	body := "We received a request to reset your password.\n\n" +
		"Open this link to choose a new one:\n\n" + resetURL + "\n\n" +
		"The link expires in " + s.tokenTTL.String() + ". If you did not ask for a reset, ignore this email."
	if err := s.mailer.Send(email, "Reset your Teebox password", body); err != nil {
		s.log.Warn("reset email delivery failed", zap.String("email", email), zap.Error(err))
	}
}

// generateResetToken draws 32 bytes from the system CSPRNG and hex-encodes
// them, yielding a 64-character URL-safe opaque token.
func generateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
