package services

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"teebox/internal/models"
	"teebox/internal/repository"
)

type stubUserStore struct {
	user       *models.User
	findErr    error
	setErr     error
	setCalls   int
	lastToken  string
	lastExpiry time.Time
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.user == nil || s.user.Email != email {
		return nil, repository.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserStore) SetResetToken(ctx context.Context, email string, token string, expiry time.Time) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.lastToken = token
	s.lastExpiry = expiry
	return nil
}

type recordingMailer struct {
	to    string
	body  string
	sends int
}

func (m *recordingMailer) Send(to string, subject string, body string) error {
	m.to = to
	m.body = body
	m.sends++
	return nil
}

func eligibleUser() *models.User {
	return &models.User{ID: "u1", Email: "user@example.com", PasswordHash: "$2a$10$hash"}
}

func TestRequestResetPersistsTokenForEligibleAccount(t *testing.T) {
	store := &stubUserStore{user: eligibleUser()}
	mailer := &recordingMailer{}
	svc := NewPasswordResetService(store, mailer, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	before := time.Now().UTC()
	out, err := svc.RequestReset(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("RequestReset: %v", err)
	}

	if store.setCalls != 1 {
		t.Fatalf("expected 1 token write, got %d", store.setCalls)
	}
	if len(store.lastToken) != 64 {
		t.Fatalf("expected 64-char token, got %d chars", len(store.lastToken))
	}
	if _, err := hex.DecodeString(store.lastToken); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if !store.lastExpiry.After(before) {
		t.Fatalf("expiry %v not after issuance %v", store.lastExpiry, before)
	}
	wantURL := "http://localhost:3000/reset-password?token=" + store.lastToken
	if out.ResetURL != wantURL {
		t.Fatalf("expected reset URL %q, got %q", wantURL, out.ResetURL)
	}
	if mailer.sends != 1 || mailer.to != "user@example.com" {
		t.Fatalf("expected one email to the account, got %+v", mailer)
	}
	if !strings.Contains(mailer.body, store.lastToken) {
		t.Fatalf("email body does not contain the reset link")
	}
}

func TestRequestResetUnknownEmailMutatesNothing(t *testing.T) {
	store := &stubUserStore{}
	svc := NewPasswordResetService(store, nil, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	out, err := svc.RequestReset(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if store.setCalls != 0 {
		t.Fatalf("expected no token write, got %d", store.setCalls)
	}
	if out.ResetURL != "" {
		t.Fatalf("expected empty reset URL, got %q", out.ResetURL)
	}
}

func TestRequestResetPasswordlessAccountMutatesNothing(t *testing.T) {
	store := &stubUserStore{user: &models.User{ID: "u2", Email: "social@example.com"}}
	mailer := &recordingMailer{}
	svc := NewPasswordResetService(store, mailer, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	out, err := svc.RequestReset(context.Background(), "social@example.com")
	if err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if store.setCalls != 0 {
		t.Fatalf("expected no token write, got %d", store.setCalls)
	}
	if out.ResetURL != "" || mailer.sends != 0 {
		t.Fatalf("expected no reset URL and no email, got %q / %d sends", out.ResetURL, mailer.sends)
	}
}

func TestRequestResetStoreFailureIsDependencyError(t *testing.T) {
	store := &stubUserStore{findErr: errors.New("connection refused")}
	svc := NewPasswordResetService(store, nil, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	_, err := svc.RequestReset(context.Background(), "user@example.com")
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if depErr.Op != "look up account" {
		t.Fatalf("unexpected op %q", depErr.Op)
	}
}

func TestRequestResetWriteFailureIsDependencyError(t *testing.T) {
	store := &stubUserStore{user: eligibleUser(), setErr: errors.New("connection reset")}
	svc := NewPasswordResetService(store, nil, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	_, err := svc.RequestReset(context.Background(), "user@example.com")
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
}

func TestRequestResetAccountVanishedBetweenLookupAndWrite(t *testing.T) {
	store := &stubUserStore{user: eligibleUser(), setErr: repository.ErrNotFound}
	svc := NewPasswordResetService(store, nil, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	out, err := svc.RequestReset(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if out.ResetURL != "" {
		t.Fatalf("expected empty reset URL, got %q", out.ResetURL)
	}
}

func TestRequestResetConsecutiveTokensDiffer(t *testing.T) {
	store := &stubUserStore{user: eligibleUser()}
	svc := NewPasswordResetService(store, nil, zap.NewNop(), "http://localhost:3000", time.Hour, true)

	if _, err := svc.RequestReset(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("first RequestReset: %v", err)
	}
	first := store.lastToken

	if _, err := svc.RequestReset(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("second RequestReset: %v", err)
	}
	if store.lastToken == first {
		t.Fatalf("expected a fresh token, got the same one twice")
	}
	if store.setCalls != 2 {
		t.Fatalf("expected the second token to overwrite the first, got %d writes", store.setCalls)
	}
}

func TestRequestResetDoesNotExposeLinkWhenDisabled(t *testing.T) {
	store := &stubUserStore{user: eligibleUser()}
	svc := NewPasswordResetService(store, nil, zap.NewNop(), "http://localhost:3000", time.Hour, false)

	out, err := svc.RequestReset(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("RequestReset: %v", err)
	}
	if store.setCalls != 1 {
		t.Fatalf("expected the token to be persisted, got %d writes", store.setCalls)
	}
	if out.ResetURL != "" {
		t.Fatalf("reset URL must not be exposed, got %q", out.ResetURL)
	}
}
