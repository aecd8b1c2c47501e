// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/content"
	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/render"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
	"github.com/PinkuChanda/frankfurter-rebels/internal/storage"
	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
	"github.com/PinkuChanda/frankfurter-rebels/internal/testutil"
	"github.com/PinkuChanda/frankfurter-rebels/web"
)

const (
	testEmail    = "admin@frankfurterrebels.de"
	testPassword = "admin123"
)

type testApp struct {
	db       *sql.DB
	router   http.Handler
	entities *service.EntityService
	auth     *service.AuthService

	uploadRoot string
}

func testRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	r, err := render.New(render.Config{TemplatesFS: sub, SessionManager: sm, IsDev: true})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

// newTestApp wires the HTML handlers the way main does, minus CSRF and
// security headers. src replaces the database-backed content source when
// not nil.
func newTestApp(t *testing.T, src content.Source) *testApp {
	t.Helper()

	db := testutil.TestDB(t)
	logger := testutil.TestLogger()
	if err := store.SeedAdmin(context.Background(), db, testEmail, testPassword); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}

	sm := scs.New()
	renderer := testRenderer(t, sm)

	codec := auth.NewSessionCodec([]byte("0123456789abcdef0123456789abcdef"))
	authSvc := service.NewAuthService(db, codec, logger)
	entities := service.NewEntityService(db)
	events := service.NewEventService(db, logger)
	uploadRoot := t.TempDir()
	uploads := service.NewUploadService(storage.NewLocalStore(uploadRoot, "cricket-images", logger), logger)

	if src == nil {
		src = content.EntitySource(entities)
	}
	pages := content.NewService(src, nil, 0, logger)

	lp := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	t.Cleanup(lp.Close)

	resources := NewResourcesHandler(entities, uploads, events, renderer)
	adminHandler := NewAdminHandler(resources, events, renderer)
	authHandler := NewAuthHandler(authSvc, events, lp, renderer, false)
	frontend := NewFrontendHandler(pages, renderer)
	health := NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Use(middleware.AdminGate(authSvc))

	r.Get("/health", health.Health)
	r.Get("/", frontend.Home)
	r.Get("/about", frontend.About)
	r.Get("/team", frontend.Team)
	r.Get("/gallery", frontend.Gallery)
	r.Get("/contact", frontend.Contact)
	r.NotFound(frontend.NotFound)

	r.Route(middleware.AdminPrefix, func(r chi.Router) {
		r.Get(RouteLogin, authHandler.LoginForm)
		r.With(lp.Middleware()).Post(RouteLogin, authHandler.Login)
		r.Post(RouteLogout, authHandler.Logout)
		r.Post(RoutePassword, authHandler.ChangePassword)
		r.Get(RouteRoot, adminHandler.Dashboard)
		resources.Routes(r)
	})

	return &testApp{db: db, router: r, entities: entities, auth: authSvc, uploadRoot: uploadRoot}
}

func (a *testApp) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// postMultipart submits fields plus one file part named fileField.
func (a *testApp) postMultipart(t *testing.T, path string, fields map[string]string, fileField string, data []byte, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="photo.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// storedFiles lists every object written to the upload bucket.
func (a *testApp) storedFiles(t *testing.T) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(a.uploadRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking upload root: %v", err)
	}
	return files
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// adminCookie issues a session cookie for the seeded admin.
func (a *testApp) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := a.auth.Codec().Issue(testEmail)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return auth.NewSessionCookie(token, false)
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// failingSource fails every read.
type failingSource struct{}

var errSourceDown = errors.New("store unreachable")

func (failingSource) Sections(context.Context, string) ([]store.Section, error) {
	return nil, errSourceDown
}
func (failingSource) AboutContent(context.Context) ([]store.AboutContent, error) {
	return nil, errSourceDown
}
func (failingSource) ContactInfo(context.Context) ([]store.ContactInfo, error) {
	return nil, errSourceDown
}
func (failingSource) Players(context.Context, int64) ([]store.Player, error) {
	return nil, errSourceDown
}
func (failingSource) GalleryImages(context.Context) ([]store.GalleryImage, error) {
	return nil, errSourceDown
}
func (failingSource) TeamStats(context.Context) ([]store.TeamStat, error) {
	return nil, errSourceDown
}
func (failingSource) TeamInfo(context.Context) ([]store.TeamInfo, error) {
	return nil, errSourceDown
}
