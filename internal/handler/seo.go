// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/seo"
)

// SEOHandler serves robots.txt and sitemap.xml.
type SEOHandler struct {
	siteURL     string
	disallowAll bool
}

// NewSEOHandler creates a handler. An empty siteURL is derived from each
// request; disallowAll keeps crawlers off non-production deployments.
func NewSEOHandler(siteURL string, disallowAll bool) *SEOHandler {
	return &SEOHandler{siteURL: siteURL, disallowAll: disallowAll}
}

// Robots serves robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	body := seo.Robots(seo.RobotsConfig{
		SiteURL:       h.baseURL(r),
		DisallowAll:   h.disallowAll,
		DisallowPaths: []string{middleware.AdminPrefix, "/api"},
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(body))
}

// Sitemap serves sitemap.xml listing the public pages.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := seo.BuildSitemap(h.baseURL(r), seo.PublicPages)
	if err != nil {
		slog.Error("failed to build sitemap", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(body)
}

func (h *SEOHandler) baseURL(r *http.Request) string {
	if h.siteURL != "" {
		return h.siteURL
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
