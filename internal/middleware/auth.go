// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the admin session gate,
// login protection, security headers and request context handling.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request data.
const (
	ContextKeyAdminEmail  ContextKey = "admin_email"
	ContextKeyRequestPath ContextKey = "request_path"
)

// Admin routes.
const (
	AdminPrefix    = "/cricket"
	AdminLoginPath = "/cricket/login"
)

// SessionVerifier resolves a session token to the admin email it was
// issued for.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (string, error)
}

// IsProtectedPath reports whether path is inside the admin tree and is not
// the login page.
func IsProtectedPath(path string) bool {
	if path != AdminPrefix && !strings.HasPrefix(path, AdminPrefix+"/") {
		return false
	}
	return strings.TrimSuffix(path, "/") != AdminLoginPath
}

// sessionEmail verifies the admin-session cookie of r.
func sessionEmail(r *http.Request, v SessionVerifier) (string, bool) {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	email, err := v.VerifySession(r.Context(), cookie.Value)
	if err != nil {
		return "", false
	}
	return email, true
}

// AdminGate redirects requests for protected admin paths to the login page
// unless they carry a valid session. Other paths pass through unchecked.
func AdminGate(v SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			email, ok := sessionEmail(r, v)
			if !ok {
				slog.Debug("admin session missing or invalid", "path", r.URL.Path)
				http.Redirect(w, r, AdminLoginPath, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdminEmail, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAPISession answers 401 with a JSON error unless the request
// carries a valid session.
func RequireAPISession(v SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := sessionEmail(r, v)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdminEmail, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminEmail returns the email of the signed-in admin, or "" when the
// request did not pass a session check.
func GetAdminEmail(r *http.Request) string {
	email, _ := r.Context().Value(ContextKeyAdminEmail).(string)
	return email
}

// RequestPath creates middleware that stores the request path in the context.
// This is used by the logging handler to include the URL in error logs.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath retrieves the request path from the context.
func GetRequestPath(ctx context.Context) string {
	path, ok := ctx.Value(ContextKeyRequestPath).(string)
	if !ok {
		return ""
	}
	return path
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
