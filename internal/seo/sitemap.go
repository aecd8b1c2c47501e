// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds robots.txt and sitemap.xml for the public site.
package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Change frequencies used by the site.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Page is one public page listed in the sitemap.
type Page struct {
	Path       string // "/" or "/about"
	ChangeFreq ChangeFreq
	Priority   string
	UpdatedAt  time.Time
}

// PublicPages are the site's public pages in navigation order.
var PublicPages = []Page{
	{Path: "/", ChangeFreq: ChangeFreqWeekly, Priority: "1.0"},
	{Path: "/about", ChangeFreq: ChangeFreqMonthly, Priority: "0.8"},
	{Path: "/team", ChangeFreq: ChangeFreqWeekly, Priority: "0.8"},
	{Path: "/gallery", ChangeFreq: ChangeFreqWeekly, Priority: "0.6"},
	{Path: "/contact", ChangeFreq: ChangeFreqMonthly, Priority: "0.6"},
}

// BuildSitemap renders pages as sitemap XML below siteURL.
func BuildSitemap(siteURL string, pages []Page) ([]byte, error) {
	base := strings.TrimSuffix(siteURL, "/")

	urls := make([]SitemapURL, 0, len(pages))
	for _, p := range pages {
		u := SitemapURL{
			Loc:        base + p.Path,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		}
		if !p.UpdatedAt.IsZero() {
			u.LastMod = p.UpdatedAt.UTC().Format(time.RFC3339)
		}
		urls = append(urls, u)
	}

	body, err := xml.MarshalIndent(Sitemap{XMLNS: XMLNamespace, URLs: urls}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
