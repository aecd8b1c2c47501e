// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

var (
	ErrCredentialsRequired      = errors.New("email and password are required")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrPasswordsRequired        = errors.New("both passwords are required")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrPasswordTooShort         = fmt.Errorf("new password must be at least %d characters long", auth.MinPasswordLength)
)

// AuthService checks admin credentials against the admin_users table.
// The table is read on every call; nothing is cached in process.
type AuthService struct {
	queries *store.Queries
	codec   *auth.SessionCodec
	logger  *slog.Logger
	now     func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates an auth service issuing tokens through codec.
func NewAuthService(db *sql.DB, codec *auth.SessionCodec, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		queries: store.New(db),
		codec:   codec,
		logger:  logger,
		now:     time.Now,
	}
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies email and password and returns a fresh session token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrCredentialsRequired
	}

	user, err := s.queries.GetAdminUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Spend the same argon2 work so response time does not reveal the email.
			_, _ = auth.CheckPassword(password, s.dummy())
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("loading admin user: %w", err)
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("stored password hash is unreadable", "email", email, "error", err)
		return "", ErrInvalidCredentials
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	if auth.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, email, password)
	}

	token, err := s.codec.Issue(user.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

// ChangePassword replaces the password of email after re-checking current.
// On any failure the stored hash is left untouched.
func (s *AuthService) ChangePassword(ctx context.Context, email, current, next string) error {
	if current == "" || next == "" {
		return ErrPasswordsRequired
	}

	user, err := s.queries.GetAdminUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCurrentPasswordIncorrect
		}
		return fmt.Errorf("loading admin user: %w", err)
	}

	ok, err := auth.CheckPassword(current, user.PasswordHash)
	if err != nil || !ok {
		return ErrCurrentPasswordIncorrect
	}

	if err := auth.ValidateNewPassword(next); err != nil {
		return ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.queries.UpdateAdminUserPassword(ctx, store.UpdateAdminUserPasswordParams{
		PasswordHash: hash,
		UpdatedAt:    s.now().UTC(),
		Email:        user.Email,
	}); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

// VerifySession returns the admin email a token was issued for. The token
// must verify and its subject must still be an admin row.
func (s *AuthService) VerifySession(ctx context.Context, token string) (string, error) {
	email, err := s.codec.Parse(token)
	if err != nil {
		return "", auth.ErrInvalidSession
	}

	user, err := s.queries.GetAdminUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("session lookup failed", "error", err)
		}
		return "", auth.ErrInvalidSession
	}
	return user.Email, nil
}

// Codec returns the codec used to issue session tokens.
func (s *AuthService) Codec() *auth.SessionCodec {
	return s.codec
}

func (s *AuthService) rehash(ctx context.Context, email, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Warn("password rehash failed", "email", email, "error", err)
		return
	}
	if err := s.queries.UpdateAdminUserPassword(ctx, store.UpdateAdminUserPasswordParams{
		PasswordHash: hash,
		UpdatedAt:    s.now().UTC(),
		Email:        email,
	}); err != nil {
		s.logger.Warn("password rehash failed", "email", email, "error", err)
	}
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("not-a-real-password")
	})
	return s.dummyHash
}
