// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookieName is the cookie carrying the admin session token.
	SessionCookieName = "admin-session"

	// SessionLifetime is how long a token stays valid after it was issued.
	SessionLifetime = 24 * time.Hour

	sessionIssuer = "frankfurter-rebels"
)

// ErrInvalidSession is returned for any token that does not prove a recent login.
var ErrInvalidSession = errors.New("invalid session")

// SessionCodec issues and verifies HMAC-signed session tokens.
// Tokens are self-contained: subject is the admin email, iat the issue time.
type SessionCodec struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewSessionCodec creates a codec signing with secret.
func NewSessionCodec(secret []byte) *SessionCodec {
	return &SessionCodec{
		secret:   secret,
		lifetime: SessionLifetime,
		now:      time.Now,
	}
}

// WithClock returns a copy of the codec that reads time from now.
func (c *SessionCodec) WithClock(now func() time.Time) *SessionCodec {
	cp := *c
	cp.now = now
	return &cp
}

// Issue returns a signed token for email.
func (c *SessionCodec) Issue(email string) (string, error) {
	if email == "" {
		return "", errors.New("issuing session: empty email")
	}

	issuedAt := c.now()
	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.lifetime)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing session: %w", err)
	}
	return token, nil
}

// Parse verifies token and returns the admin email it was issued for.
// Every failure, including garbage input, is reported as ErrInvalidSession.
func (c *SessionCodec) Parse(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if claims.Subject == "" || claims.IssuedAt == nil {
		return "", ErrInvalidSession
	}

	// The age bound holds even if exp was minted with a longer lifetime.
	if age := c.now().Sub(claims.IssuedAt.Time); age < 0 || age >= c.lifetime {
		return "", ErrInvalidSession
	}

	return claims.Subject, nil
}

// Validate reports whether token is a valid session token.
func (c *SessionCodec) Validate(token string) bool {
	_, err := c.Parse(token)
	return err == nil
}

// NewSessionCookie wraps token in the admin-session cookie.
func NewSessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionLifetime / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie returns a cookie that removes the admin session.
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
