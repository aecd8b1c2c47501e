// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render parses the embedded HTML templates and executes them with
// the shared page data.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/session"
)

// Template groups. Each page template is parsed with the base layout, the
// group layout when one exists, and every partial.
var groups = []string{"public", "admin", "auth"}

// blankLinesRegex matches runs of whitespace-only lines.
var blankLinesRegex = regexp.MustCompile(`(\r?\n[ \t]*)+\r?\n`)

// Renderer executes parsed templates.
type Renderer struct {
	templates      map[string]*template.Template
	sessionManager *scs.SessionManager
	isDev          bool
	now            func() time.Time
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS    fs.FS
	SessionManager *scs.SessionManager
	IsDev          bool
}

// New parses every template group from cfg.TemplatesFS.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		templates:      make(map[string]*template.Template),
		sessionManager: cfg.SessionManager,
		isDev:          cfg.IsDev,
		now:            time.Now,
	}

	partials, err := htmlFiles(cfg.TemplatesFS, "partials")
	if err != nil {
		return nil, fmt.Errorf("listing partials: %w", err)
	}

	for _, group := range groups {
		pages, err := htmlFiles(cfg.TemplatesFS, group)
		if err != nil {
			return nil, fmt.Errorf("listing %s templates: %w", group, err)
		}

		layouts := []string{"layouts/base.html"}
		groupLayout := "layouts/" + group + ".html"
		if _, err := fs.Stat(cfg.TemplatesFS, groupLayout); err == nil {
			layouts = append(layouts, groupLayout)
		}

		for _, page := range pages {
			name := group + "/" + strings.TrimSuffix(path.Base(page), ".html")

			files := append(append(append([]string{}, layouts...), partials...), page)
			tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(cfg.TemplatesFS, files...)
			if err != nil {
				return nil, fmt.Errorf("parsing template %s: %w", name, err)
			}
			r.templates[name] = tmpl
		}
	}

	return r, nil
}

// htmlFiles lists the .html files directly under dir. A missing directory
// yields no files.
func htmlFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			files = append(files, path.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// Has reports whether a template with name was parsed.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Path        string
	Data        any
	Flash       *session.Flash
	AdminEmail  string
	CurrentYear int
}

// Render executes template name into w with status.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, data TemplateData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	data.CurrentYear = r.now().Year()
	data.Path = req.URL.Path
	if data.AdminEmail == "" {
		data.AdminEmail = middleware.GetAdminEmail(req)
	}
	if r.sessionManager != nil && data.Flash == nil {
		if f, ok := session.PopFlash(req.Context(), r.sessionManager); ok {
			data.Flash = &f
		}
	}

	// Render to a buffer so a failing template never sends a partial page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	out := buf.Bytes()
	if !r.isDev {
		out = blankLinesRegex.ReplaceAll(out, []byte("\n"))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(out)
	return err
}

// SetFlash stores a message for the next rendered page.
func (r *Renderer) SetFlash(req *http.Request, kind, text string) {
	if r.sessionManager != nil {
		session.PutFlash(req.Context(), r.sessionManager, kind, text)
	}
}

var icons = map[string]string{
	"Trophy": "🏆",
	"Star":   "⭐",
	"Users":  "👥",
	"Shield": "🛡",
	"Heart":  "❤",
	"Target": "🎯",
	"Award":  "🏅",
	"Eye":    "👁",
	"Mail":   "✉",
	"Phone":  "☎",
	"MapPin": "📍",
	"Clock":  "🕒",
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 3:04 PM")
		},
		"truncate": func(s string, length int) string {
			runes := []rune(s)
			if len(runes) <= length {
				return s
			}
			return string(runes[:length]) + "..."
		},
		"icon": func(name string) string {
			if i, ok := icons[name]; ok {
				return i
			}
			return "•"
		},
		"initial": func(s string) string {
			for _, r := range strings.TrimSpace(s) {
				return strings.ToUpper(string(r))
			}
			return ""
		},
		"hasPrefix": strings.HasPrefix,
		"active": func(current, link string) bool {
			if link == "/" {
				return current == "/"
			}
			return current == link || strings.HasPrefix(current, link+"/")
		},
	}
}
