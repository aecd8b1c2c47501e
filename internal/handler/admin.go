// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/PinkuChanda/frankfurter-rebels/internal/render"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

// dashboardEventLimit is the number of events listed on the dashboard.
const dashboardEventLimit = 10

// AdminHandler handles the admin dashboard.
type AdminHandler struct {
	resources    *ResourcesHandler
	eventService *service.EventService
	renderer     *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(resources *ResourcesHandler, events *service.EventService, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		resources:    resources,
		eventService: events,
		renderer:     renderer,
	}
}

// DashboardCount is the row count of one admin section.
type DashboardCount struct {
	Title string
	Slug  string
	Count int64
}

// DashboardData is the data of the dashboard page.
type DashboardData struct {
	Counts []DashboardCount
	Events []service.EventView
}

// Dashboard renders the admin dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data DashboardData

	for _, cfg := range h.resources.Configs() {
		n, err := cfg.res.count(ctx)
		if err != nil {
			slog.Error("failed to count rows", "resource", cfg.Slug, "error", err)
		}
		data.Counts = append(data.Counts, DashboardCount{Title: cfg.Title, Slug: cfg.Slug, Count: n})
	}

	events, err := h.eventService.Recent(ctx, dashboardEventLimit)
	if err != nil {
		slog.Error("failed to load recent events", "error", err)
	}
	data.Events = events

	renderPage(w, r, h.renderer, http.StatusOK, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		Data:  data,
	})
}
