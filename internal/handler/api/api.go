// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON API under /api: one resource family per
// content table, the upload endpoint and the auth endpoints.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

// maxJSONBody bounds request bodies of the entity endpoints.
const maxJSONBody = 1 << 20

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	entities *service.EntityService
	auth     *service.AuthService
	uploads  *service.UploadService
	events   *service.EventService
	login    *middleware.LoginProtection
	logger   *slog.Logger

	secureCookies bool
}

// Config holds the services the API forwards to.
type Config struct {
	Entities      *service.EntityService
	Auth          *service.AuthService
	Uploads       *service.UploadService
	Events        *service.EventService
	Login         *middleware.LoginProtection
	Logger        *slog.Logger
	SecureCookies bool
}

// NewHandler creates a new API handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		entities:      cfg.Entities,
		auth:          cfg.Auth,
		uploads:       cfg.Uploads,
		events:        cfg.Events,
		login:         cfg.Login,
		logger:        logger,
		secureCookies: cfg.SecureCookies,
	}
}

// Routes mounts the API on r. Mutations go through RequireAPISession;
// reads, login and logout are public.
func (h *Handler) Routes(r chi.Router) {
	requireSession := middleware.RequireAPISession(h.auth)

	r.Route("/auth", func(r chi.Router) {
		if h.login != nil {
			r.With(h.login.Middleware()).Post("/login", h.Login)
		} else {
			r.Post("/login", h.Login)
		}
		r.Post("/logout", h.Logout)
		r.With(requireSession).Post("/change-password", h.ChangePassword)
	})

	r.With(requireSession).Post("/upload", h.Upload)

	mountResource(r, "/sections", h, h.entities.Sections, func(q queryValues) service.Filter {
		return service.Filter{Page: q.Get("page")}
	})
	mountResource(r, "/about-content", h, h.entities.About, func(q queryValues) service.Filter {
		return service.Filter{SectionType: q.Get("section_type")}
	})
	mountResource(r, "/contact-info", h, h.entities.Contact, func(q queryValues) service.Filter {
		return service.Filter{Type: q.Get("type")}
	})
	mountResource(r, "/players", h, h.entities.Players, func(q queryValues) service.Filter {
		return service.Filter{Featured: q.Get("featured") == "true", Season: q.Get("season")}
	})
	mountResource(r, "/gallery", h, h.entities.Gallery, func(q queryValues) service.Filter {
		return service.Filter{Category: q.Get("category"), Season: q.Get("season")}
	})
	mountResource(r, "/team-stats", h, h.entities.Stats, func(queryValues) service.Filter {
		return service.Filter{}
	})
	mountResource(r, "/team-info", h, h.entities.TeamInfo, func(queryValues) service.Filter {
		return service.Filter{}
	})
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// ErrorResponse is the error body of every API failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes {"error": message}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// SuccessResponse is the body of actions that return no entity.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WriteSuccess writes {"success": true, "message": message}.
func WriteSuccess(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: message})
}

// parseID reads the {id} URL parameter.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// readBody reads a bounded request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
}

// writeServiceError maps service errors onto the API error taxonomy.
// Unknown errors are logged and answered with fallback.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	var verr *service.ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		WriteError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrInvalidJSON), errors.As(err, &maxErr):
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, notFound)
	default:
		h.logger.ErrorContext(r.Context(), "api request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, http.StatusInternalServerError, fallback)
	}
}
