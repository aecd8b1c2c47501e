// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PinkuChanda/frankfurter-rebels/internal/content"
	"github.com/PinkuChanda/frankfurter-rebels/internal/render"
)

// FrontendHandler serves the public pages.
type FrontendHandler struct {
	pages    *content.Service
	renderer *render.Renderer
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(pages *content.Service, renderer *render.Renderer) *FrontendHandler {
	return &FrontendHandler{pages: pages, renderer: renderer}
}

// ErrorData is the data of the content error panel.
type ErrorData struct {
	Heading string
	Message string
	Retry   string
	Action  string
}

// Home renders the landing page.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "public/home", "", h.pages.Home)
}

// About renders the about page.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "public/about", "About Us", h.pages.About)
}

// Team renders the squad page.
func (h *FrontendHandler) Team(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "public/team", "Our Team", h.pages.Team)
}

// Gallery renders the gallery.
func (h *FrontendHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "public/gallery", "Gallery", h.pages.Gallery)
}

// Contact renders the contact page.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "public/contact", "Contact", h.pages.Contact)
}

// NotFound renders the 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusNotFound, "public/error", render.TemplateData{
		Title: "Page Not Found",
		Data: ErrorData{
			Heading: "Page Not Found",
			Message: "The page you are looking for does not exist.",
			Retry:   "/",
			Action:  "Go Home",
		},
	})
}

func serve[T any](h *FrontendHandler, w http.ResponseWriter, r *http.Request, name, title string, load func(context.Context) (*T, error)) {
	page, err := load(r.Context())
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelDebug
		}
		slog.Log(r.Context(), level, "failed to load page content", "page", name, "error", err)
		renderPage(w, r, h.renderer, http.StatusInternalServerError, "public/error", render.TemplateData{
			Title: "Error Loading Content",
			Data: ErrorData{
				Heading: "Error Loading Content",
				Message: "We couldn't load this page right now. Please try again in a moment.",
				Retry:   r.URL.Path,
				Action:  "Try Again",
			},
		})
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, name, render.TemplateData{
		Title: title,
		Data:  page,
	})
}
