// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session keeps the short-lived admin UI state (flash messages)
// in SQLite through scs. Authentication itself lives in the signed
// admin-session cookie, not here.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// CookieName is the scs cookie name in development. Production uses the
// __Host- prefix, which requires Secure and Path=/.
const (
	CookieName     = "rebels_ui"
	hostCookieName = "__Host-rebels_ui"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	flashKindKey = "flash_kind"
	flashTextKey = "flash_text"
)

// Flash is a one-time message shown on the next admin page.
type Flash struct {
	Kind string
	Text string
}

// New creates a session manager backed by the sessions table.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	return newManager(sqlite3store.New(db), isDev)
}

func newManager(store scs.Store, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = store
	sm.Lifetime = 24 * time.Hour
	sm.IdleTimeout = 2 * time.Hour
	sm.Cookie.Name = CookieName
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev
	if !isDev {
		sm.Cookie.Name = hostCookieName
	}
	return sm
}

// PutFlash stores a message for the next request.
func PutFlash(ctx context.Context, sm *scs.SessionManager, kind, text string) {
	sm.Put(ctx, flashKindKey, kind)
	sm.Put(ctx, flashTextKey, text)
}

// PopFlash returns and clears the pending message. ok is false when none
// is pending.
func PopFlash(ctx context.Context, sm *scs.SessionManager) (Flash, bool) {
	text := sm.PopString(ctx, flashTextKey)
	kind := sm.PopString(ctx, flashKindKey)
	if text == "" {
		return Flash{}, false
	}
	if kind == "" {
		kind = FlashSuccess
	}
	return Flash{Kind: kind, Text: text}, true
}
