// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler serves the HTML side of the site: the public pages, the
// admin login forms, the dashboard and the admin content forms.
package handler

import "github.com/PinkuChanda/frankfurter-rebels/internal/middleware"

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"

	// RouteLogin is the login route below the admin prefix.
	RouteLogin = "/login"
	// RouteLogout is the logout route below the admin prefix.
	RouteLogout = "/logout"
	// RoutePassword is the change-password route below the admin prefix.
	RoutePassword = "/password"
)

// Redirect targets.
const (
	redirectAdmin = middleware.AdminPrefix
	redirectLogin = middleware.AdminLoginPath
)
