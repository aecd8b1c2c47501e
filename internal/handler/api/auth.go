// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	email := service.NormalizeEmail(req.Email)
	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = email

	if email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if h.login != nil {
		if locked, remaining := h.login.IsAccountLocked(email); locked {
			h.logAuthEvent(r, service.EventLevelWarning, "Login blocked: account locked", meta)
			WriteError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Account temporarily locked. Try again in %d minutes.", int(remaining.Minutes())+1))
			return
		}
	}

	token, err := h.auth.Login(r.Context(), email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialsRequired):
			WriteError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			h.recordFailure(r, email, meta)
			WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.logger.ErrorContext(r.Context(), "login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if h.login != nil {
		h.login.RecordSuccessfulLogin(email)
	}
	h.logAuthEvent(r, service.EventLevelInfo, "Admin logged in", meta)

	http.SetCookie(w, auth.NewSessionCookie(token, h.secureCookies))
	WriteSuccess(w, "Login successful")
}

func (h *Handler) recordFailure(r *http.Request, email string, meta service.EventMeta) {
	h.logAuthEvent(r, service.EventLevelWarning, "Login failed: invalid credentials", meta)
	if h.login == nil {
		return
	}
	if locked, d := h.login.RecordFailedAttempt(email); locked {
		meta.Extra = map[string]any{"lockout": d.String()}
		h.logAuthEvent(r, service.EventLevelWarning, "Account locked after repeated login failures", meta)
	}
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.SessionCookieName); err == nil {
		if email, err := h.auth.VerifySession(r.Context(), c.Value); err == nil {
			meta := service.EventMetaFromRequest(r)
			meta.ActorEmail = email
			h.logAuthEvent(r, service.EventLevelInfo, "Admin logged out", meta)
		}
	}

	http.SetCookie(w, auth.ClearSessionCookie(h.secureCookies))
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// ChangePassword handles POST /api/auth/change-password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	email := middleware.GetAdminEmail(r)
	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = email

	err := h.auth.ChangePassword(r.Context(), email, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		h.logAuthEvent(r, service.EventLevelInfo, "Admin password changed", meta)
		WriteSuccess(w, "Password changed successfully")
	case errors.Is(err, service.ErrPasswordsRequired):
		WriteError(w, http.StatusBadRequest, "Both passwords are required")
	case errors.Is(err, service.ErrCurrentPasswordIncorrect):
		h.logAuthEvent(r, service.EventLevelWarning, "Password change rejected: wrong current password", meta)
		WriteError(w, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, service.ErrPasswordTooShort):
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("New password must be at least %d characters long", auth.MinPasswordLength))
	default:
		h.logger.ErrorContext(r.Context(), "password change failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to change password")
	}
}
