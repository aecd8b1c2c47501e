// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import "github.com/PinkuChanda/frankfurter-rebels/internal/service"

// Form field kinds.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldNumber   = "number"
	FieldCheckbox = "checkbox"
	FieldSelect   = "select"
	FieldImage    = "image"
)

// Field describes one input of an admin form. Name is the JSON name of the
// payload field it fills.
type Field struct {
	Name     string
	Label    string
	Kind     string
	Options  []string
	Required bool
	Help     string
}

// Column is one column of an admin list table.
type Column struct {
	Label string
	Field string
}

func sectionFields() []Field {
	return []Field{
		{Name: "page", Label: "Page", Kind: FieldSelect, Options: []string{"home", "about", "team", "gallery", "contact"}, Required: true},
		{Name: "section_name", Label: "Section name", Kind: FieldText, Required: true, Help: "Slot on the page, e.g. hero, about, team, stats, cta, team_info, form, gallery-cta"},
		{Name: "title", Label: "Title", Kind: FieldText, Help: "May contain <span>, <strong>, <em>, <b>, <i> and <br>"},
		{Name: "subtitle", Label: "Subtitle", Kind: FieldText},
		{Name: "content", Label: "Content", Kind: FieldTextarea},
		{Name: "image_url", Label: "Image", Kind: FieldImage},
		{Name: "button_text", Label: "Button text", Kind: FieldText},
		{Name: "button_link", Label: "Button link", Kind: FieldText},
		{Name: "button_text_secondary", Label: "Secondary button text", Kind: FieldText},
		{Name: "button_link_secondary", Label: "Secondary button link", Kind: FieldText},
		{Name: "sort_order", Label: "Sort order", Kind: FieldNumber},
		{Name: "is_active", Label: "Active", Kind: FieldCheckbox},
	}
}

func aboutFields() []Field {
	return []Field{
		{Name: "section_type", Label: "Type", Kind: FieldSelect, Options: []string{service.AboutMission, service.AboutVision, service.AboutValues, service.AboutHistory}, Required: true},
		{Name: "title", Label: "Title", Kind: FieldText, Required: true},
		{Name: "content", Label: "Content", Kind: FieldTextarea, Help: "Mission, vision and history accept Markdown"},
		{Name: "icon", Label: "Icon", Kind: FieldSelect, Options: []string{"", "Heart", "Users", "Target", "Award", "Trophy", "Star", "Shield", "Eye"}},
		{Name: "image_url", Label: "Image", Kind: FieldImage},
		{Name: "sort_order", Label: "Sort order", Kind: FieldNumber},
		{Name: "is_active", Label: "Active", Kind: FieldCheckbox},
	}
}

func contactFields() []Field {
	return []Field{
		{Name: "type", Label: "Type", Kind: FieldSelect, Options: []string{"email", "phone", "address", "hours", "social"}, Required: true},
		{Name: "label", Label: "Label", Kind: FieldText, Required: true},
		{Name: "value", Label: "Value", Kind: FieldText, Required: true},
		{Name: "link", Label: "Link", Kind: FieldText},
		{Name: "icon", Label: "Icon", Kind: FieldSelect, Options: []string{"", "Mail", "Phone", "MapPin", "Clock"}},
		{Name: "sort_order", Label: "Sort order", Kind: FieldNumber},
		{Name: "is_active", Label: "Active", Kind: FieldCheckbox},
	}
}

func playerFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Kind: FieldText, Required: true},
		{Name: "role", Label: "Role", Kind: FieldText, Help: "e.g. Batsman, Bowler, All-rounder"},
		{Name: "image_url", Label: "Photo", Kind: FieldImage},
		{Name: "experience", Label: "Experience", Kind: FieldText},
		{Name: "description", Label: "Description", Kind: FieldTextarea},
		{Name: "is_owner", Label: "Owner", Kind: FieldCheckbox, Help: "Owners cannot also be captain"},
		{Name: "owner_title", Label: "Owner title", Kind: FieldText, Help: "Owner or Co-Owner"},
		{Name: "is_captain", Label: "Captain", Kind: FieldCheckbox},
		{Name: "is_management", Label: "Management", Kind: FieldCheckbox},
		{Name: "management_role", Label: "Management role", Kind: FieldText},
		{Name: "matches", Label: "Matches", Kind: FieldNumber},
		{Name: "runs", Label: "Runs", Kind: FieldNumber},
		{Name: "wickets", Label: "Wickets", Kind: FieldNumber},
		{Name: "season", Label: "Season", Kind: FieldText},
	}
}

func galleryFields() []Field {
	return []Field{
		{Name: "title", Label: "Title", Kind: FieldText},
		{Name: "description", Label: "Description", Kind: FieldTextarea},
		{Name: "image_url", Label: "Image", Kind: FieldImage, Required: true},
		{Name: "category", Label: "Category", Kind: FieldText},
		{Name: "season", Label: "Season", Kind: FieldText},
		{Name: "is_active", Label: "Active", Kind: FieldCheckbox},
	}
}

func statFields() []Field {
	return []Field{
		{Name: "label", Label: "Label", Kind: FieldText, Required: true},
		{Name: "value", Label: "Value", Kind: FieldText, Required: true},
		{Name: "icon", Label: "Icon", Kind: FieldSelect, Options: []string{"", "Trophy", "Star", "Users", "Shield"}},
		{Name: "description", Label: "Description", Kind: FieldText},
		{Name: "sort_order", Label: "Sort order", Kind: FieldNumber},
		{Name: "is_active", Label: "Active", Kind: FieldCheckbox},
	}
}

func teamInfoFields() []Field {
	return []Field{
		{Name: "home_ground", Label: "Home ground", Kind: FieldText},
		{Name: "founded_year", Label: "Founded", Kind: FieldText},
		{Name: "training_schedule", Label: "Training schedule", Kind: FieldText},
		{Name: "team_size", Label: "Team size", Kind: FieldText},
		{Name: "additional_info", Label: "Additional info", Kind: FieldTextarea},
	}
}

// ownerClearsCaptain keeps the owner and captain flags exclusive.
func ownerClearsCaptain(payload map[string]any) {
	if owner, _ := payload["is_owner"].(bool); owner {
		payload["is_captain"] = false
	}
}
