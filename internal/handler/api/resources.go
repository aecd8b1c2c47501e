// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

type queryValues = url.Values

// resourceHandler serves one entity family.
type resourceHandler[T any, In any] struct {
	h      *Handler
	res    *service.Resource[T, In]
	filter func(queryValues) service.Filter
}

func mountResource[T any, In any](r chi.Router, pattern string, h *Handler, res *service.Resource[T, In], filter func(queryValues) service.Filter) {
	rh := &resourceHandler[T, In]{h: h, res: res, filter: filter}
	requireSession := middleware.RequireAPISession(h.auth)

	r.Route(pattern, func(r chi.Router) {
		r.Get("/", rh.list)
		r.Get("/{id}", rh.get)

		r.Group(func(r chi.Router) {
			r.Use(requireSession)
			r.Post("/", rh.create)
			r.Put("/{id}", rh.update)
			r.Delete("/{id}", rh.delete)
		})
	})
}

func (rh *resourceHandler[T, In]) notFound() string {
	return rh.res.Singular + " not found"
}

func (rh *resourceHandler[T, In]) list(w http.ResponseWriter, r *http.Request) {
	rows, err := rh.res.List(r.Context(), rh.filter(r.URL.Query()))
	if err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to fetch "+rh.res.Plural)
		return
	}
	if rows == nil {
		rows = []T{}
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (rh *resourceHandler[T, In]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	get := rh.res.GetPublic
	if rh.h.signedIn(r) {
		get = rh.res.Get
	}
	row, err := get(r.Context(), id)
	if err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to fetch "+strings.ToLower(rh.res.Singular))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (rh *resourceHandler[T, In]) create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to create "+strings.ToLower(rh.res.Singular))
		return
	}

	row, err := rh.res.Create(r.Context(), body)
	if err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to create "+strings.ToLower(rh.res.Singular))
		return
	}

	rh.h.logContentEvent(r, rh.res.Singular+" created")
	WriteJSON(w, http.StatusCreated, row)
}

func (rh *resourceHandler[T, In]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to update "+strings.ToLower(rh.res.Singular))
		return
	}

	row, err := rh.res.Update(r.Context(), id, body)
	if err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to update "+strings.ToLower(rh.res.Singular))
		return
	}

	rh.h.logContentEvent(r, rh.res.Singular+" updated")
	WriteJSON(w, http.StatusOK, row)
}

func (rh *resourceHandler[T, In]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := rh.res.Delete(r.Context(), id); err != nil {
		rh.h.writeServiceError(w, r, err, rh.notFound(), "Failed to delete "+strings.ToLower(rh.res.Singular))
		return
	}

	rh.h.logContentEvent(r, rh.res.Singular+" deleted")
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// signedIn reports whether r carries a valid admin session. Signed-in
// reads also see inactive rows.
func (h *Handler) signedIn(r *http.Request) bool {
	c, err := r.Cookie(auth.SessionCookieName)
	if err != nil || c.Value == "" {
		return false
	}
	_, err = h.auth.VerifySession(r.Context(), c.Value)
	return err == nil
}

func (h *Handler) logContentEvent(r *http.Request, message string) {
	if h.events == nil {
		return
	}
	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = middleware.GetAdminEmail(r)
	_ = h.events.LogContentEvent(r.Context(), message, meta)
}

func (h *Handler) logUploadEvent(r *http.Request, path string) {
	if h.events == nil {
		return
	}
	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = middleware.GetAdminEmail(r)
	meta.Extra = map[string]any{"path": path}
	_ = h.events.LogEvent(r.Context(), service.EventLevelInfo, service.EventCategoryUpload, "File uploaded", meta)
}

// logAuthEvent records a login, logout or password event. meta already
// names the actor.
func (h *Handler) logAuthEvent(r *http.Request, level, message string, meta service.EventMeta) {
	if h.events == nil {
		return
	}
	_ = h.events.LogAuthEvent(r.Context(), level, message, meta)
}
