// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"

	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

// Source is the read side the pages are built from. Every list holds
// active rows only, in render order.
type Source interface {
	Sections(ctx context.Context, page string) ([]store.Section, error)
	AboutContent(ctx context.Context) ([]store.AboutContent, error)
	ContactInfo(ctx context.Context) ([]store.ContactInfo, error)
	Players(ctx context.Context, limit int64) ([]store.Player, error)
	GalleryImages(ctx context.Context) ([]store.GalleryImage, error)
	TeamStats(ctx context.Context) ([]store.TeamStat, error)
	TeamInfo(ctx context.Context) ([]store.TeamInfo, error)
}

// EntitySource reads through the public lists of an EntityService.
func EntitySource(e *service.EntityService) Source {
	return entitySource{e: e}
}

type entitySource struct {
	e *service.EntityService
}

func (s entitySource) Sections(ctx context.Context, page string) ([]store.Section, error) {
	return s.e.Sections.List(ctx, service.Filter{Page: page})
}

func (s entitySource) AboutContent(ctx context.Context) ([]store.AboutContent, error) {
	return s.e.About.List(ctx, service.Filter{})
}

func (s entitySource) ContactInfo(ctx context.Context) ([]store.ContactInfo, error) {
	return s.e.Contact.List(ctx, service.Filter{})
}

func (s entitySource) Players(ctx context.Context, limit int64) ([]store.Player, error) {
	return s.e.Players.List(ctx, service.Filter{Limit: limit})
}

func (s entitySource) GalleryImages(ctx context.Context) ([]store.GalleryImage, error) {
	return s.e.Gallery.List(ctx, service.Filter{})
}

func (s entitySource) TeamStats(ctx context.Context) ([]store.TeamStat, error) {
	return s.e.Stats.List(ctx, service.Filter{})
}

func (s entitySource) TeamInfo(ctx context.Context) ([]store.TeamInfo, error) {
	return s.e.TeamInfo.List(ctx, service.Filter{})
}
