// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSEO_Robots(t *testing.T) {
	h := NewSEOHandler("https://frankfurterrebels.de", false)
	w := httptest.NewRecorder()
	h.Robots(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Disallow: /cricket\n", "Disallow: /api\n", "Sitemap: https://frankfurterrebels.de/sitemap.xml"} {
		if !strings.Contains(body, want) {
			t.Errorf("robots.txt missing %q:\n%s", want, body)
		}
	}
}

func TestSEO_RobotsDisallowAll(t *testing.T) {
	h := NewSEOHandler("", true)
	w := httptest.NewRecorder()
	h.Robots(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if body := w.Body.String(); body != "User-agent: *\nDisallow: /\n" {
		t.Errorf("robots.txt = %q", body)
	}
}

func TestSEO_SitemapDerivesHost(t *testing.T) {
	h := NewSEOHandler("", false)
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Host = "rebels.example"
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	h.Sitemap(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	for _, path := range []string{"/", "/about", "/team", "/gallery", "/contact"} {
		if !strings.Contains(body, "<loc>https://rebels.example"+path+"</loc>") {
			t.Errorf("sitemap missing %s:\n%s", path, body)
		}
	}
	if strings.Contains(body, "/cricket") {
		t.Error("sitemap lists the admin area")
	}
}
