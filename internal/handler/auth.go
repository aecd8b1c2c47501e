// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/render"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

// AuthHandler handles the admin login, logout and password forms.
type AuthHandler struct {
	auth            *service.AuthService
	eventService    *service.EventService
	loginProtection *middleware.LoginProtection
	renderer        *render.Renderer
	secureCookies   bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc *service.AuthService, events *service.EventService, lp *middleware.LoginProtection, renderer *render.Renderer, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:            authSvc,
		eventService:    events,
		loginProtection: lp,
		renderer:        renderer,
		secureCookies:   secureCookies,
	}
}

// LoginData is the login form state.
type LoginData struct {
	Email string
}

// LoginForm renders the login page. Signed-in admins go to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.SessionCookieName); err == nil {
		if _, err := h.auth.VerifySession(r.Context(), c.Value); err == nil {
			http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
			return
		}
	}

	renderPage(w, r, h.renderer, http.StatusOK, "auth/login", render.TemplateData{
		Title: "Admin Login",
		Data:  LoginData{},
	})
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := service.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = email

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelWarning, "Login blocked: account locked", meta)
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Account temporarily locked. Try again in %d minutes.", int(remaining.Minutes())+1))
			return
		}
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err)
			flashError(w, r, h.renderer, redirectLogin, "Login failed, please try again")
			return
		}

		_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelWarning, "Login failed: invalid credentials", meta)
		msg := "Invalid credentials"
		if h.loginProtection != nil {
			if locked, d := h.loginProtection.RecordFailedAttempt(email); locked {
				meta.Extra = map[string]any{"lockout": d.String()}
				_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelWarning, "Account locked after repeated login failures", meta)
				msg = fmt.Sprintf("Too many failed attempts. Account locked for %d minutes.", int(d.Minutes()))
			} else if remaining := h.loginProtection.RemainingAttempts(email); remaining <= 2 {
				msg = fmt.Sprintf("Invalid credentials. %d attempts remaining.", remaining)
			}
		}
		flashError(w, r, h.renderer, redirectLogin, msg)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}
	_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelInfo, "Admin logged in", meta)

	http.SetCookie(w, auth.NewSessionCookie(token, h.secureCookies))
	flashSuccess(w, r, h.renderer, redirectAdmin, "Welcome back!")
}

// Logout clears the admin session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if email := middleware.GetAdminEmail(r); email != "" {
		meta := service.EventMetaFromRequest(r)
		meta.ActorEmail = email
		_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelInfo, "Admin logged out", meta)
	}

	http.SetCookie(w, auth.ClearSessionCookie(h.secureCookies))
	flashSuccess(w, r, h.renderer, redirectLogin, "You have been logged out")
}

// ChangePassword handles the dashboard password form.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdmin) {
		return
	}

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	if current == "" || next == "" {
		flashError(w, r, h.renderer, redirectAdmin, "Both passwords are required")
		return
	}
	if next != confirm {
		flashError(w, r, h.renderer, redirectAdmin, "New passwords do not match")
		return
	}

	email := middleware.GetAdminEmail(r)
	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = email

	err := h.auth.ChangePassword(r.Context(), email, current, next)
	switch {
	case err == nil:
		_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelInfo, "Admin password changed", meta)
		flashSuccess(w, r, h.renderer, redirectAdmin, "Password changed successfully")
	case errors.Is(err, service.ErrPasswordsRequired):
		flashError(w, r, h.renderer, redirectAdmin, "Both passwords are required")
	case errors.Is(err, service.ErrCurrentPasswordIncorrect):
		_ = h.eventService.LogAuthEvent(r.Context(), service.EventLevelWarning, "Password change rejected: wrong current password", meta)
		flashError(w, r, h.renderer, redirectAdmin, "Current password is incorrect")
	case errors.Is(err, service.ErrPasswordTooShort):
		flashError(w, r, h.renderer, redirectAdmin,
			fmt.Sprintf("New password must be at least %d characters long", auth.MinPasswordLength))
	default:
		slog.Error("password change failed", "email", email, "error", err)
		flashError(w, r, h.renderer, redirectAdmin, "Failed to change password")
	}
}
