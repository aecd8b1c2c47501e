// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html":    {Data: []byte(`{{define "base"}}<html>{{template "nav" .}}{{template "main" .}}</html>{{end}}`)},
		"layouts/admin.html":   {Data: []byte(`{{define "main"}}<admin>{{.AdminEmail}}{{template "content" .}}</admin>{{end}}`)},
		"layouts/public.html":  {Data: []byte(`{{define "main"}}<site>{{template "content" .}}</site>{{end}}`)},
		"partials/nav.html":    {Data: []byte(`{{define "nav"}}<nav>{{if active .Path "/team"}}team{{end}}</nav>{{end}}`)},
		"public/team.html":     {Data: []byte(`{{define "content"}}{{.Title}} {{.CurrentYear}} {{icon "Trophy"}}{{end}}`)},
		"admin/dashboard.html": {Data: []byte("{{define \"content\"}}a\n\n\n\nb{{end}}")},
		"auth/login.html":      {Data: []byte(`{{define "main"}}login{{end}}`)},
	}
}

func TestRender(t *testing.T) {
	r, err := New(Config{TemplatesFS: testFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }

	for _, name := range []string{"public/team", "admin/dashboard", "auth/login"} {
		if !r.Has(name) {
			t.Errorf("template %s not parsed", name)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/team", nil)
	if err := r.Render(rec, req, http.StatusOK, "public/team", TemplateData{Title: "Squad"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if want := "<html><nav>team</nav><site>Squad 2025 🏆</site></html>"; body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRender_StatusAndCompaction(t *testing.T) {
	r, err := New(Config{TemplatesFS: testFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cricket", nil)
	if err := r.Render(rec, req, http.StatusInternalServerError, "admin/dashboard", TemplateData{AdminEmail: "a@b.c"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<admin>a@b.ca\nb</admin>") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := httptest.NewRecorder()
	err = r.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "public/missing", TemplateData{})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body written on error: %q", rec.Body.String())
	}
}

func TestBlankLinesRegex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"line1\nline2", "line1\nline2"},
		{"line1\n\nline2", "line1\nline2"},
		{"line1\n  \n\t\nline2", "line1\nline2"},
		{"line1\r\n\r\n\r\nline2", "line1\nline2"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := blankLinesRegex.ReplaceAllString(tt.in, "\n"); got != tt.want {
			t.Errorf("compact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()

	truncate := funcs["truncate"].(func(string, int) string)
	if got := truncate("Frankfurt", 5); got != "Frank..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Ok", 5); got != "Ok" {
		t.Errorf("truncate short = %q", got)
	}

	active := funcs["active"].(func(string, string) bool)
	if !active("/", "/") || active("/team", "/") {
		t.Error("active(\"/\") should match only the root")
	}
	if !active("/cricket/players/3", "/cricket/players") {
		t.Error("active should match nested paths")
	}

	icon := funcs["icon"].(func(string) string)
	if icon("Unknown") != "•" {
		t.Errorf("icon(Unknown) = %q", icon("Unknown"))
	}
}
