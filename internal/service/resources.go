// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"strings"
	"time"

	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

// SectionInput is the writable part of a page section.
type SectionInput struct {
	Page                string `json:"page" validate:"required,max=50"`
	SectionName         string `json:"section_name" validate:"required,max=100"`
	Title               string `json:"title" validate:"max=1000"`
	Subtitle            string `json:"subtitle" validate:"max=500"`
	Content             string `json:"content" validate:"max=10000"`
	ImageURL            string `json:"image_url" validate:"max=2048"`
	ButtonText          string `json:"button_text" validate:"max=100"`
	ButtonLink          string `json:"button_link" validate:"max=2048"`
	ButtonTextSecondary string `json:"button_text_secondary" validate:"max=100"`
	ButtonLinkSecondary string `json:"button_link_secondary" validate:"max=2048"`
	IsActive            bool   `json:"is_active"`
	SortOrder           int64  `json:"sort_order"`
}

func newSectionResource(s *EntityService, q *store.Queries) *Resource[store.Section, SectionInput] {
	return &Resource[store.Section, SectionInput]{
		Singular: "Section",
		Plural:   "sections",
		svc:      s,
		blank:    func() SectionInput { return SectionInput{IsActive: true} },
		fromRow: func(r store.Section) SectionInput {
			return SectionInput{
				Page: r.Page, SectionName: r.SectionName, Title: r.Title, Subtitle: r.Subtitle,
				Content: r.Content, ImageURL: r.ImageURL, ButtonText: r.ButtonText, ButtonLink: r.ButtonLink,
				ButtonTextSecondary: r.ButtonTextSecondary, ButtonLinkSecondary: r.ButtonLinkSecondary,
				IsActive: r.IsActive, SortOrder: r.SortOrder,
			}
		},
		normalize: func(in *SectionInput) {
			in.Page = strings.ToLower(strings.TrimSpace(in.Page))
			in.SectionName = strings.TrimSpace(in.SectionName)
			in.ImageURL = strings.TrimSpace(in.ImageURL)
		},
		listPublic: func(ctx context.Context, f Filter) ([]store.Section, error) {
			if f.Page == "" {
				return q.ListActiveSections(ctx)
			}
			return q.ListActiveSectionsByPage(ctx, f.Page)
		},
		listAll: q.ListSections,
		get:     q.GetSection,
		visible: func(r store.Section) bool { return r.IsActive },
		create: func(ctx context.Context, in SectionInput, now time.Time) (store.Section, error) {
			return q.CreateSection(ctx, store.CreateSectionParams{
				Page: in.Page, SectionName: in.SectionName, Title: in.Title, Subtitle: in.Subtitle,
				Content: in.Content, ImageURL: in.ImageURL, ButtonText: in.ButtonText, ButtonLink: in.ButtonLink,
				ButtonTextSecondary: in.ButtonTextSecondary, ButtonLinkSecondary: in.ButtonLinkSecondary,
				IsActive: in.IsActive, SortOrder: in.SortOrder, CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in SectionInput, now time.Time) (store.Section, error) {
			return q.UpdateSection(ctx, store.UpdateSectionParams{
				Page: in.Page, SectionName: in.SectionName, Title: in.Title, Subtitle: in.Subtitle,
				Content: in.Content, ImageURL: in.ImageURL, ButtonText: in.ButtonText, ButtonLink: in.ButtonLink,
				ButtonTextSecondary: in.ButtonTextSecondary, ButtonLinkSecondary: in.ButtonLinkSecondary,
				IsActive: in.IsActive, SortOrder: in.SortOrder, UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeleteSection,
		count:  q.CountSections,
	}
}

// About content section types.
const (
	AboutMission = "mission"
	AboutVision  = "vision"
	AboutValues  = "values"
	AboutHistory = "history"
)

// AboutContentInput is the writable part of an about-page entry.
type AboutContentInput struct {
	SectionType string `json:"section_type" validate:"required,oneof=mission vision values history"`
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"max=10000"`
	ImageURL    string `json:"image_url" validate:"max=2048"`
	Icon        string `json:"icon" validate:"max=50"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int64  `json:"sort_order"`
}

func newAboutContentResource(s *EntityService, q *store.Queries) *Resource[store.AboutContent, AboutContentInput] {
	return &Resource[store.AboutContent, AboutContentInput]{
		Singular: "About content",
		Plural:   "about content",
		svc:      s,
		blank:    func() AboutContentInput { return AboutContentInput{IsActive: true} },
		fromRow: func(r store.AboutContent) AboutContentInput {
			return AboutContentInput{
				SectionType: r.SectionType, Title: r.Title, Content: r.Content, ImageURL: r.ImageURL,
				Icon: r.Icon, IsActive: r.IsActive, SortOrder: r.SortOrder,
			}
		},
		normalize: func(in *AboutContentInput) {
			in.SectionType = strings.ToLower(strings.TrimSpace(in.SectionType))
			in.Title = strings.TrimSpace(in.Title)
		},
		listPublic: func(ctx context.Context, f Filter) ([]store.AboutContent, error) {
			return q.ListActiveAboutContent(ctx, f.SectionType)
		},
		listAll: q.ListAboutContent,
		get:     q.GetAboutContent,
		visible: func(r store.AboutContent) bool { return r.IsActive },
		create: func(ctx context.Context, in AboutContentInput, now time.Time) (store.AboutContent, error) {
			return q.CreateAboutContent(ctx, store.CreateAboutContentParams{
				SectionType: in.SectionType, Title: in.Title, Content: in.Content, ImageURL: in.ImageURL,
				Icon: in.Icon, IsActive: in.IsActive, SortOrder: in.SortOrder, CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in AboutContentInput, now time.Time) (store.AboutContent, error) {
			return q.UpdateAboutContent(ctx, store.UpdateAboutContentParams{
				SectionType: in.SectionType, Title: in.Title, Content: in.Content, ImageURL: in.ImageURL,
				Icon: in.Icon, IsActive: in.IsActive, SortOrder: in.SortOrder, UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeleteAboutContent,
		count:  q.CountAboutContent,
	}
}

// ContactInfoInput is the writable part of a contact entry.
type ContactInfoInput struct {
	Type      string `json:"type" validate:"required,max=50"`
	Label     string `json:"label" validate:"required,max=100"`
	Value     string `json:"value" validate:"required,max=500"`
	Icon      string `json:"icon" validate:"max=50"`
	Link      string `json:"link" validate:"max=2048"`
	IsActive  bool   `json:"is_active"`
	SortOrder int64  `json:"sort_order"`
}

func newContactInfoResource(s *EntityService, q *store.Queries) *Resource[store.ContactInfo, ContactInfoInput] {
	return &Resource[store.ContactInfo, ContactInfoInput]{
		Singular: "Contact info",
		Plural:   "contact info",
		svc:      s,
		blank:    func() ContactInfoInput { return ContactInfoInput{IsActive: true} },
		fromRow: func(r store.ContactInfo) ContactInfoInput {
			return ContactInfoInput{
				Type: r.Type, Label: r.Label, Value: r.Value, Icon: r.Icon, Link: r.Link,
				IsActive: r.IsActive, SortOrder: r.SortOrder,
			}
		},
		normalize: func(in *ContactInfoInput) {
			in.Type = strings.ToLower(strings.TrimSpace(in.Type))
			in.Label = strings.TrimSpace(in.Label)
			in.Value = strings.TrimSpace(in.Value)
		},
		listPublic: func(ctx context.Context, f Filter) ([]store.ContactInfo, error) {
			return q.ListActiveContactInfo(ctx, f.Type)
		},
		listAll: q.ListContactInfo,
		get:     q.GetContactInfo,
		visible: func(r store.ContactInfo) bool { return r.IsActive },
		create: func(ctx context.Context, in ContactInfoInput, now time.Time) (store.ContactInfo, error) {
			return q.CreateContactInfo(ctx, store.CreateContactInfoParams{
				Type: in.Type, Label: in.Label, Value: in.Value, Icon: in.Icon, Link: in.Link,
				IsActive: in.IsActive, SortOrder: in.SortOrder, CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in ContactInfoInput, now time.Time) (store.ContactInfo, error) {
			return q.UpdateContactInfo(ctx, store.UpdateContactInfoParams{
				Type: in.Type, Label: in.Label, Value: in.Value, Icon: in.Icon, Link: in.Link,
				IsActive: in.IsActive, SortOrder: in.SortOrder, UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeleteContactInfo,
		count:  q.CountContactInfo,
	}
}

// PlayerInput is the writable part of a squad member.
type PlayerInput struct {
	Name           string `json:"name" validate:"required,max=100"`
	Role           string `json:"role" validate:"max=100"`
	ImageURL       string `json:"image_url" validate:"max=2048"`
	Experience     string `json:"experience" validate:"max=100"`
	Description    string `json:"description" validate:"max=5000"`
	IsOwner        bool   `json:"is_owner"`
	OwnerTitle     string `json:"owner_title" validate:"max=100"`
	IsCaptain      bool   `json:"is_captain"`
	IsManagement   bool   `json:"is_management"`
	ManagementRole string `json:"management_role" validate:"max=100"`
	Matches        int64  `json:"matches" validate:"gte=0"`
	Runs           int64  `json:"runs" validate:"gte=0"`
	Wickets        int64  `json:"wickets" validate:"gte=0"`
	Season         string `json:"season" validate:"max=20"`
}

func newPlayerResource(s *EntityService, q *store.Queries) *Resource[store.Player, PlayerInput] {
	return &Resource[store.Player, PlayerInput]{
		Singular: "Player",
		Plural:   "players",
		svc:      s,
		blank:    func() PlayerInput { return PlayerInput{} },
		fromRow: func(r store.Player) PlayerInput {
			return PlayerInput{
				Name: r.Name, Role: r.Role, ImageURL: r.ImageURL, Experience: r.Experience,
				Description: r.Description, IsOwner: r.IsOwner, OwnerTitle: r.OwnerTitle,
				IsCaptain: r.IsCaptain, IsManagement: r.IsManagement, ManagementRole: r.ManagementRole,
				Matches: r.Matches, Runs: r.Runs, Wickets: r.Wickets, Season: r.Season,
			}
		},
		normalize: func(in *PlayerInput) {
			in.Name = strings.TrimSpace(in.Name)
			in.Season = strings.TrimSpace(in.Season)
			in.ImageURL = strings.TrimSpace(in.ImageURL)
		},
		listPublic: func(ctx context.Context, f Filter) ([]store.Player, error) {
			return q.ListPlayers(ctx, store.ListPlayersParams{
				FeaturedOnly: f.Featured,
				Season:       f.Season,
				Limit:        f.Limit,
			})
		},
		listAll: func(ctx context.Context) ([]store.Player, error) {
			return q.ListPlayers(ctx, store.ListPlayersParams{})
		},
		get: q.GetPlayer,
		create: func(ctx context.Context, in PlayerInput, now time.Time) (store.Player, error) {
			return q.CreatePlayer(ctx, store.CreatePlayerParams{
				Name: in.Name, Role: in.Role, ImageURL: in.ImageURL, Experience: in.Experience,
				Description: in.Description, IsOwner: in.IsOwner, OwnerTitle: in.OwnerTitle,
				IsCaptain: in.IsCaptain, IsManagement: in.IsManagement, ManagementRole: in.ManagementRole,
				Matches: in.Matches, Runs: in.Runs, Wickets: in.Wickets, Season: in.Season,
				CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in PlayerInput, now time.Time) (store.Player, error) {
			return q.UpdatePlayer(ctx, store.UpdatePlayerParams{
				Name: in.Name, Role: in.Role, ImageURL: in.ImageURL, Experience: in.Experience,
				Description: in.Description, IsOwner: in.IsOwner, OwnerTitle: in.OwnerTitle,
				IsCaptain: in.IsCaptain, IsManagement: in.IsManagement, ManagementRole: in.ManagementRole,
				Matches: in.Matches, Runs: in.Runs, Wickets: in.Wickets, Season: in.Season,
				UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeletePlayer,
		count:  q.CountPlayers,
	}
}

// GalleryImageInput is the writable part of a gallery image.
type GalleryImageInput struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"image_url" validate:"required,max=2048"`
	Category    string `json:"category" validate:"max=100"`
	Season      string `json:"season" validate:"max=20"`
	IsActive    bool   `json:"is_active"`
}

func newGalleryImageResource(s *EntityService, q *store.Queries) *Resource[store.GalleryImage, GalleryImageInput] {
	return &Resource[store.GalleryImage, GalleryImageInput]{
		Singular: "Gallery image",
		Plural:   "gallery images",
		svc:      s,
		blank:    func() GalleryImageInput { return GalleryImageInput{IsActive: true} },
		fromRow: func(r store.GalleryImage) GalleryImageInput {
			return GalleryImageInput{
				Title: r.Title, Description: r.Description, ImageURL: r.ImageURL,
				Category: r.Category, Season: r.Season, IsActive: r.IsActive,
			}
		},
		normalize: func(in *GalleryImageInput) {
			in.ImageURL = strings.TrimSpace(in.ImageURL)
			in.Category = strings.TrimSpace(in.Category)
			in.Season = strings.TrimSpace(in.Season)
		},
		listPublic: func(ctx context.Context, f Filter) ([]store.GalleryImage, error) {
			return q.ListActiveGalleryImages(ctx, store.ListActiveGalleryImagesParams{
				Category: f.Category,
				Season:   f.Season,
			})
		},
		listAll: q.ListGalleryImages,
		get:     q.GetGalleryImage,
		visible: func(r store.GalleryImage) bool { return r.IsActive },
		create: func(ctx context.Context, in GalleryImageInput, now time.Time) (store.GalleryImage, error) {
			return q.CreateGalleryImage(ctx, store.CreateGalleryImageParams{
				Title: in.Title, Description: in.Description, ImageURL: in.ImageURL,
				Category: in.Category, Season: in.Season, IsActive: in.IsActive,
				CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in GalleryImageInput, now time.Time) (store.GalleryImage, error) {
			return q.UpdateGalleryImage(ctx, store.UpdateGalleryImageParams{
				Title: in.Title, Description: in.Description, ImageURL: in.ImageURL,
				Category: in.Category, Season: in.Season, IsActive: in.IsActive,
				UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeleteGalleryImage,
		count:  q.CountGalleryImages,
	}
}

// TeamStatInput is the writable part of a headline statistic.
type TeamStatInput struct {
	Label       string `json:"label" validate:"required,max=100"`
	Value       string `json:"value" validate:"required,max=50"`
	Icon        string `json:"icon" validate:"max=50"`
	Description string `json:"description" validate:"max=500"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int64  `json:"sort_order"`
}

func newTeamStatResource(s *EntityService, q *store.Queries) *Resource[store.TeamStat, TeamStatInput] {
	return &Resource[store.TeamStat, TeamStatInput]{
		Singular: "Team stat",
		Plural:   "team stats",
		svc:      s,
		blank:    func() TeamStatInput { return TeamStatInput{IsActive: true} },
		fromRow: func(r store.TeamStat) TeamStatInput {
			return TeamStatInput{
				Label: r.Label, Value: r.Value, Icon: r.Icon, Description: r.Description,
				IsActive: r.IsActive, SortOrder: r.SortOrder,
			}
		},
		normalize: func(in *TeamStatInput) {
			in.Label = strings.TrimSpace(in.Label)
			in.Value = strings.TrimSpace(in.Value)
		},
		listPublic: func(ctx context.Context, _ Filter) ([]store.TeamStat, error) {
			return q.ListActiveTeamStats(ctx)
		},
		listAll: q.ListTeamStats,
		get:     q.GetTeamStat,
		visible: func(r store.TeamStat) bool { return r.IsActive },
		create: func(ctx context.Context, in TeamStatInput, now time.Time) (store.TeamStat, error) {
			return q.CreateTeamStat(ctx, store.CreateTeamStatParams{
				Label: in.Label, Value: in.Value, Icon: in.Icon, Description: in.Description,
				IsActive: in.IsActive, SortOrder: in.SortOrder, CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in TeamStatInput, now time.Time) (store.TeamStat, error) {
			return q.UpdateTeamStat(ctx, store.UpdateTeamStatParams{
				Label: in.Label, Value: in.Value, Icon: in.Icon, Description: in.Description,
				IsActive: in.IsActive, SortOrder: in.SortOrder, UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeleteTeamStat,
		count:  q.CountTeamStats,
	}
}

// TeamInfoInput is the writable part of the club facts row.
type TeamInfoInput struct {
	HomeGround       string `json:"home_ground" validate:"max=200"`
	FoundedYear      string `json:"founded_year" validate:"max=20"`
	TrainingSchedule string `json:"training_schedule" validate:"max=500"`
	TeamSize         string `json:"team_size" validate:"max=100"`
	AdditionalInfo   string `json:"additional_info" validate:"max=5000"`
}

func newTeamInfoResource(s *EntityService, q *store.Queries) *Resource[store.TeamInfo, TeamInfoInput] {
	return &Resource[store.TeamInfo, TeamInfoInput]{
		Singular: "Team information",
		Plural:   "team information",
		svc:      s,
		blank:    func() TeamInfoInput { return TeamInfoInput{} },
		fromRow: func(r store.TeamInfo) TeamInfoInput {
			return TeamInfoInput{
				HomeGround: r.HomeGround, FoundedYear: r.FoundedYear, TrainingSchedule: r.TrainingSchedule,
				TeamSize: r.TeamSize, AdditionalInfo: r.AdditionalInfo,
			}
		},
		listPublic: func(ctx context.Context, _ Filter) ([]store.TeamInfo, error) {
			return q.ListTeamInfo(ctx)
		},
		listAll: q.ListTeamInfo,
		get:     q.GetTeamInfo,
		create: func(ctx context.Context, in TeamInfoInput, now time.Time) (store.TeamInfo, error) {
			return q.CreateTeamInfo(ctx, store.CreateTeamInfoParams{
				HomeGround: in.HomeGround, FoundedYear: in.FoundedYear, TrainingSchedule: in.TrainingSchedule,
				TeamSize: in.TeamSize, AdditionalInfo: in.AdditionalInfo, CreatedAt: now, UpdatedAt: now,
			})
		},
		update: func(ctx context.Context, id int64, in TeamInfoInput, now time.Time) (store.TeamInfo, error) {
			return q.UpdateTeamInfo(ctx, store.UpdateTeamInfoParams{
				HomeGround: in.HomeGround, FoundedYear: in.FoundedYear, TrainingSchedule: in.TrainingSchedule,
				TeamSize: in.TeamSize, AdditionalInfo: in.AdditionalInfo, UpdatedAt: now, ID: id,
			})
		},
		remove: q.DeleteTeamInfo,
		count:  q.CountTeamInfo,
	}
}
