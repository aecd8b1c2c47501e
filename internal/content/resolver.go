// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content builds the public pages from stored records and falls
// back to built-in copy for every slot the store leaves empty, so a page is
// never blank.
package content

import (
	"html/template"
	"strings"
)

// Block is the resolved content of one slot on a page.
type Block struct {
	Heading             template.HTML `json:"heading"`
	Subtitle            string        `json:"subtitle,omitempty"`
	Content             string        `json:"content,omitempty"`
	ImageURL            string        `json:"image_url,omitempty"`
	ButtonText          string        `json:"button_text,omitempty"`
	ButtonLink          string        `json:"button_link,omitempty"`
	ButtonTextSecondary string        `json:"button_text_secondary,omitempty"`
	ButtonLinkSecondary string        `json:"button_link_secondary,omitempty"`
	// Stored is set when a record filled the slot.
	Stored bool `json:"stored,omitempty"`
}

// Slot names a place on a page and the literal content used when no
// record fills it.
type Slot struct {
	Name     string
	Fallback Block
}

// Resolve picks, for every slot, the first record whose key equals the
// slot name and fills each empty field of it from the slot fallback.
// Records are expected in render order. Slots without a record get the
// fallback as is.
func Resolve[R any](records []R, key func(R) string, block func(R) Block, slots []Slot) map[string]Block {
	first := make(map[string]R, len(records))
	for _, r := range records {
		k := key(r)
		if _, seen := first[k]; !seen {
			first[k] = r
		}
	}

	out := make(map[string]Block, len(slots))
	for _, s := range slots {
		r, ok := first[s.Name]
		if !ok {
			out[s.Name] = s.Fallback
			continue
		}
		b := block(r).over(s.Fallback)
		b.Stored = true
		out[s.Name] = b
	}
	return out
}

// over fills every empty field of b from fb.
func (b Block) over(fb Block) Block {
	if strings.TrimSpace(string(b.Heading)) == "" {
		b.Heading = fb.Heading
	}
	b.Subtitle = or(b.Subtitle, fb.Subtitle)
	b.Content = or(b.Content, fb.Content)
	b.ImageURL = or(b.ImageURL, fb.ImageURL)
	b.ButtonText = or(b.ButtonText, fb.ButtonText)
	b.ButtonLink = or(b.ButtonLink, fb.ButtonLink)
	b.ButtonTextSecondary = or(b.ButtonTextSecondary, fb.ButtonTextSecondary)
	b.ButtonLinkSecondary = or(b.ButtonLinkSecondary, fb.ButtonLinkSecondary)
	return b
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// Text makes a fallback heading from plain text.
func Text(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s)) //nolint:gosec // escaped
}
