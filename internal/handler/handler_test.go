// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

func TestPublicPages_Fallbacks(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Frankfurter Rebels Cricket Team"},
		{"/about", "Our Values"},
		{"/team", "Our squad will be announced soon."},
		{"/gallery", "No photos yet."},
		{"/contact", "Send Message"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := app.get(t, tt.path, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d; want 200", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body does not contain %q", tt.want)
			}
		})
	}
}

func TestPublicPages_StoredContent(t *testing.T) {
	app := newTestApp(t, nil)
	ctx := context.Background()

	if _, err := app.entities.Sections.Create(ctx, []byte(`{"page":"home","section_name":"hero","title":"Welcome <span class=\"text-gold\">Rebels</span><script>x()</script>","is_active":true}`)); err != nil {
		t.Fatalf("create section: %v", err)
	}
	for _, body := range []string{
		`{"name":"Sam","is_captain":true}`,
		`{"name":"Olu","is_owner":true,"owner_title":"Co-Owner"}`,
		`{"name":"Ana","is_owner":true}`,
	} {
		if _, err := app.entities.Players.Create(ctx, []byte(body)); err != nil {
			t.Fatalf("create player: %v", err)
		}
	}

	home := app.get(t, "/", nil).Body.String()
	if !strings.Contains(home, `Welcome <span class="text-gold">Rebels</span>`) {
		t.Error("stored rich heading not rendered")
	}
	if strings.Contains(home, "<script>x()") {
		t.Error("heading script not stripped")
	}

	team := app.get(t, "/team", nil).Body.String()
	ana, olu, sam := strings.Index(team, "Ana"), strings.Index(team, "Olu"), strings.Index(team, "Sam")
	if ana < 0 || olu < 0 || sam < 0 || !(ana < olu && olu < sam) {
		t.Errorf("squad order indexes Ana=%d Olu=%d Sam=%d; want Owner, Co-Owner, Captain", ana, olu, sam)
	}
}

func TestPublicPages_PrimaryFailure(t *testing.T) {
	app := newTestApp(t, failingSource{})

	for _, path := range []string{"/", "/about", "/team", "/gallery", "/contact"} {
		w := app.get(t, path, nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s status = %d; want 500", path, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Error Loading Content") || !strings.Contains(body, "Try Again") {
			t.Errorf("%s does not show the error panel", path)
		}
	}
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, nil)
	w := app.get(t, "/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", w.Code)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.get(t, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var body HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Status != "ok" {
		t.Errorf("body = %s", w.Body.String())
	}

	_ = app.db.Close()
	w = app.get(t, "/health", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status after close = %d; want 503", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Status != "unavailable" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAdminGate(t *testing.T) {
	app := newTestApp(t, nil)

	for _, path := range []string{"/cricket", "/cricket/players", "/cricket/players/new"} {
		w := app.get(t, path, nil)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/cricket/login" {
			t.Errorf("%s = %d %q; want 302 to /cricket/login", path, w.Code, w.Header().Get("Location"))
		}
	}

	if w := app.get(t, "/cricket/login", nil); w.Code != http.StatusOK {
		t.Errorf("login page status = %d; want 200", w.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.postForm(t, "/cricket/login", url.Values{"email": {testEmail}, "password": {"wrong"}}, nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/cricket/login" {
		t.Fatalf("bad login = %d %q", w.Code, w.Header().Get("Location"))
	}
	if c := findCookie(w, auth.SessionCookieName); c != nil && c.Value != "" {
		t.Error("bad login set a session cookie")
	}

	w = app.postForm(t, "/cricket/login", url.Values{"email": {testEmail}, "password": {testPassword}}, nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/cricket" {
		t.Fatalf("good login = %d %q", w.Code, w.Header().Get("Location"))
	}
	cookie := findCookie(w, auth.SessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("no session cookie after login")
	}

	if w := app.get(t, "/cricket", cookie); w.Code != http.StatusOK {
		t.Errorf("dashboard status = %d; want 200", w.Code)
	} else if !strings.Contains(w.Body.String(), "Admin logged in") {
		t.Error("dashboard does not list the login event")
	}

	if w := app.get(t, "/cricket/login", cookie); w.Code != http.StatusSeeOther {
		t.Errorf("login page with session = %d; want 303", w.Code)
	}

	w = app.postForm(t, "/cricket/logout", url.Values{}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("logout status = %d", w.Code)
	}
	if c := findCookie(w, auth.SessionCookieName); c == nil || c.MaxAge >= 0 {
		t.Error("logout did not clear the cookie")
	}
}

func TestChangePasswordForm(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)

	w := app.postForm(t, "/cricket/password", url.Values{
		"current_password": {testPassword},
		"new_password":     {"newsecret"},
		"confirm_password": {"different"},
	}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("mismatch status = %d", w.Code)
	}
	if _, err := app.auth.Login(context.Background(), testEmail, testPassword); err != nil {
		t.Fatalf("password changed despite mismatch: %v", err)
	}

	w = app.postForm(t, "/cricket/password", url.Values{
		"current_password": {testPassword},
		"new_password":     {"newsecret"},
		"confirm_password": {"newsecret"},
	}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("change status = %d", w.Code)
	}
	if _, err := app.auth.Login(context.Background(), testEmail, "newsecret"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}

func TestPlayerForm_OwnerClearsCaptain(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)

	w := app.postForm(t, "/cricket/players", url.Values{
		"name":       {"Ana"},
		"is_owner":   {"on"},
		"is_captain": {"on"},
		"runs":       {"42"},
	}, cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/cricket/players" {
		t.Fatalf("create = %d %q; body %s", w.Code, w.Header().Get("Location"), w.Body.String())
	}

	players, err := app.entities.Players.ListAll(context.Background())
	if err != nil || len(players) != 1 {
		t.Fatalf("players = %v, %v", players, err)
	}
	p := players[0]
	if !p.IsOwner || p.IsCaptain || p.Runs != 42 {
		t.Errorf("player = %+v; want owner, not captain, 42 runs", p)
	}

	list := app.get(t, "/cricket/players", cookie)
	if list.Code != http.StatusOK || !strings.Contains(list.Body.String(), "Ana") {
		t.Errorf("list = %d; want 200 with Ana", list.Code)
	}

	edit := app.get(t, "/cricket/players/"+strconv.FormatInt(p.ID, 10), cookie)
	if edit.Code != http.StatusOK || !strings.Contains(edit.Body.String(), `value="Ana"`) {
		t.Errorf("edit form = %d; want 200 prefilled", edit.Code)
	}
}

func TestResourceForm_Validation(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)

	tests := []struct {
		name string
		path string
		form url.Values
		want string
	}{
		{"missing name", "/cricket/players", url.Values{"role": {"Bowler"}}, "name is required"},
		{"bad number", "/cricket/players", url.Values{"name": {"X"}, "runs": {"lots"}}, "Runs must be a whole number"},
		{"bad about type", "/cricket/about", url.Values{"section_type": {"other"}, "title": {"T"}}, "section_type must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.postForm(t, tt.path, tt.form, cookie)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body does not contain %q", tt.want)
			}
		})
	}
}

func TestResourceForm_RejectedSaveDiscardsUpload(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)

	w := app.postMultipart(t, "/cricket/players", map[string]string{"role": "Bowler"}, "image_url_file", testPNG(t), cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "name is required") {
		t.Error("form error not shown")
	}
	if n, _ := app.entities.Players.Count(context.Background()); n != 0 {
		t.Errorf("players = %d; want 0", n)
	}
	if files := app.storedFiles(t); len(files) != 0 {
		t.Errorf("stored files = %v; want none", files)
	}
}

func TestResourceForm_FieldErrorSkipsUpload(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)

	w := app.postMultipart(t, "/cricket/players", map[string]string{"name": "Rahul", "runs": "lots"}, "image_url_file", testPNG(t), cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if files := app.storedFiles(t); len(files) != 0 {
		t.Errorf("stored files = %v; want none", files)
	}
}

func TestResourceForm_SavedUploadIsKept(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)

	w := app.postMultipart(t, "/cricket/players", map[string]string{"name": "Rahul"}, "image_url_file", testPNG(t), cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}

	players, err := app.entities.Players.ListAll(context.Background())
	if err != nil || len(players) != 1 {
		t.Fatalf("players = %v, %v; want one", players, err)
	}
	if !strings.HasPrefix(players[0].ImageURL, "/uploads/cricket-images/players/") {
		t.Errorf("image_url = %q", players[0].ImageURL)
	}
	if files := app.storedFiles(t); len(files) != 1 {
		t.Errorf("stored files = %v; want one", files)
	}
}

func TestResourcesHandler_LogsWithoutEventService(t *testing.T) {
	h := &ResourcesHandler{}
	req := httptest.NewRequest(http.MethodPost, "/cricket/players", nil)
	h.logUploads(req, []formUpload{{field: "image_url", res: service.UploadResult{Path: "players/1-a.png"}}})
	h.logChange(req, "Player created")
}

func TestResourceForm_UpdateAndDelete(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.adminCookie(t)
	ctx := context.Background()

	stat, err := app.entities.Stats.Create(ctx, []byte(`{"label":"Wins","value":"3","is_active":true}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	path := "/cricket/stats/" + strconv.FormatInt(stat.ID, 10)

	w := app.postForm(t, path, url.Values{"label": {"Wins"}, "value": {"4"}}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("update status = %d; body %s", w.Code, w.Body.String())
	}
	got, err := app.entities.Stats.Get(ctx, stat.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// An unchecked checkbox is submitted as absent.
	if got.Value != "4" || got.IsActive {
		t.Errorf("updated = %+v; want value 4, inactive", got)
	}

	w = app.postForm(t, path+"/delete", url.Values{}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d", w.Code)
	}
	if _, err := app.entities.Stats.Get(ctx, stat.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get after delete = %v; want ErrNotFound", err)
	}

	if w := app.get(t, "/cricket/stats/999", cookie); w.Code != http.StatusSeeOther {
		t.Errorf("edit unknown id = %d; want 303", w.Code)
	}
}
