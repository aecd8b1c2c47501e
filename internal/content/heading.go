// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	headingPolicyOnce sync.Once
	headingPolicy     *bluemonday.Policy

	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

var classValue = regexp.MustCompile(`^[A-Za-z0-9 _:-]+$`)

// RichHeading renders an admin-authored section title as markup. Only a
// small inline allow-list survives: span, strong, em, b, i and br, with a
// class attribute. Everything else is stripped and text is escaped.
func RichHeading(title string) template.HTML {
	headingPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("span", "strong", "em", "b", "i", "br")
		p.AllowAttrs("class").Matching(classValue).OnElements("span", "strong", "em", "b", "i")
		headingPolicy = p
	})
	return template.HTML(headingPolicy.Sanitize(title)) //nolint:gosec // sanitised above
}

// Markdown renders an about-page body written in Markdown. Raw HTML in the
// source is dropped by goldmark and the result is sanitised again.
func Markdown(src string) template.HTML {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped
	}

	bodyPolicyOnce.Do(func() {
		bodyPolicy = bluemonday.UGCPolicy()
	})
	return template.HTML(bodyPolicy.SanitizeBytes(buf.Bytes())) //nolint:gosec // sanitised above
}
