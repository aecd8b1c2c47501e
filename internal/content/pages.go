// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PinkuChanda/frankfurter-rebels/internal/cache"
	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

// ErrUnavailable is returned when the primary list of a page cannot be read.
// The page is not rendered from fallbacks in that case.
var ErrUnavailable = errors.New("content unavailable")

// Stat is one headline number.
type Stat struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}

// Entry is an about-page text block.
type Entry struct {
	Title    string        `json:"title"`
	Body     template.HTML `json:"body"`
	Icon     string        `json:"icon,omitempty"`
	ImageURL string        `json:"image_url,omitempty"`
}

// Facts are the club details shown on the about page.
type Facts struct {
	HomeGround       string `json:"home_ground"`
	FoundedYear      string `json:"founded_year"`
	TrainingSchedule string `json:"training_schedule"`
	TeamSize         string `json:"team_size"`
	AdditionalInfo   string `json:"additional_info,omitempty"`
}

// PlayerCard is a player prepared for display.
type PlayerCard struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ImageURL       string `json:"image_url,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Description    string `json:"description"`
	IsOwner        bool   `json:"is_owner,omitempty"`
	OwnerTitle     string `json:"owner_title,omitempty"`
	IsCaptain      bool   `json:"is_captain,omitempty"`
	IsManagement   bool   `json:"is_management,omitempty"`
	ManagementRole string `json:"management_role,omitempty"`
	Matches        int64  `json:"matches"`
	Runs           int64  `json:"runs"`
	Wickets        int64  `json:"wickets"`
	Season         string `json:"season,omitempty"`
}

// GalleryGroup is the images of one category.
type GalleryGroup struct {
	Category string               `json:"category"`
	Images   []store.GalleryImage `json:"images"`
}

// ContactItem is one contact detail.
type ContactItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
	Link  string `json:"link,omitempty"`
}

// ContactGroup is the contact details of one type.
type ContactGroup struct {
	Type  string        `json:"type"`
	Items []ContactItem `json:"items"`
}

// HomePage is the resolved landing page.
type HomePage struct {
	Hero    Block        `json:"hero"`
	About   Block        `json:"about"`
	Team    Block        `json:"team"`
	Stats   Block        `json:"stats"`
	CTA     Block        `json:"cta"`
	Numbers []Stat       `json:"numbers"`
	Players []PlayerCard `json:"players"`
}

// AboutPage is the resolved about page.
type AboutPage struct {
	Hero     Block   `json:"hero"`
	TeamInfo Block   `json:"team_info"`
	Mission  Entry   `json:"mission"`
	Vision   Entry   `json:"vision"`
	Values   []Entry `json:"values"`
	History  []Entry `json:"history"`
	Facts    Facts   `json:"facts"`
}

// TeamPage is the resolved squad page.
type TeamPage struct {
	Players    []PlayerCard `json:"players"`
	Management []PlayerCard `json:"management"`
}

// GalleryPage is the resolved gallery.
type GalleryPage struct {
	Groups []GalleryGroup `json:"groups"`
	CTA    Block          `json:"cta"`
}

// ContactPage is the resolved contact page.
type ContactPage struct {
	Hero   Block          `json:"hero"`
	Form   Block          `json:"form"`
	Groups []ContactGroup `json:"groups"`
	Social []ContactItem  `json:"social"`
}

// Service resolves public pages and caches the results. A page built
// while a secondary list failed is served but not cached.
type Service struct {
	src    Source
	cache  cache.Cache
	logger *slog.Logger

	home    *cache.TypedCache[HomePage]
	about   *cache.TypedCache[AboutPage]
	team    *cache.TypedCache[TeamPage]
	gallery *cache.TypedCache[GalleryPage]
	contact *cache.TypedCache[ContactPage]
}

// NewService creates a page service reading from src. c may be nil to
// disable caching.
func NewService(src Source, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{src: src, cache: c, logger: logger}
	if c != nil {
		s.home = cache.NewTypedCache[HomePage](c, ttl)
		s.about = cache.NewTypedCache[AboutPage](c, ttl)
		s.team = cache.NewTypedCache[TeamPage](c, ttl)
		s.gallery = cache.NewTypedCache[GalleryPage](c, ttl)
		s.contact = cache.NewTypedCache[ContactPage](c, ttl)
	}
	return s
}

// Invalidate drops every cached page.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("page cache clear failed", "error", err)
		return
	}
	s.logger.Debug("page cache cleared")
}

// cached runs build unless key is cached. build reports whether the page
// is complete; only complete pages are stored.
func cached[T any](ctx context.Context, s *Service, tc *cache.TypedCache[T], key string, build func(context.Context) (*T, bool, error)) (*T, error) {
	if tc != nil {
		if page, ok := tc.Get(ctx, key); ok {
			return page, nil
		}
	}

	page, complete, err := build(ctx)
	if err != nil {
		return nil, err
	}

	if tc != nil && complete {
		if err := tc.Set(ctx, key, page); err != nil {
			s.logger.Warn("page cache set failed", "key", key, "error", err)
		}
	}
	return page, nil
}

// secondary logs a failed non-essential read. The page continues with
// fallbacks.
func (s *Service) secondary(page, what string, err error) {
	s.logger.Warn("secondary content unavailable, using fallback", "page", page, "list", what, "error", err)
}

func sectionKey(r store.Section) string { return r.SectionName }

func sectionBlock(r store.Section) Block {
	return Block{
		Heading:             RichHeading(r.Title),
		Subtitle:            r.Subtitle,
		Content:             r.Content,
		ImageURL:            r.ImageURL,
		ButtonText:          r.ButtonText,
		ButtonLink:          r.ButtonLink,
		ButtonTextSecondary: r.ButtonTextSecondary,
		ButtonLinkSecondary: r.ButtonLinkSecondary,
	}
}

// Home resolves the landing page. Sections are primary; stats and players
// are secondary.
func (s *Service) Home(ctx context.Context) (*HomePage, error) {
	return cached(ctx, s, s.home, "page:home", func(ctx context.Context) (*HomePage, bool, error) {
		sections, err := s.src.Sections(ctx, "home")
		if err != nil {
			return nil, false, fmt.Errorf("%w: home sections: %v", ErrUnavailable, err)
		}
		complete := true

		blocks := Resolve(sections, sectionKey, sectionBlock, homeSlots)
		page := &HomePage{
			Hero:  blocks["hero"],
			About: blocks["about"],
			Team:  blocks["team"],
			Stats: blocks["stats"],
			CTA:   blocks["cta"],
		}

		page.Numbers = defaultStats
		if stats, err := s.src.TeamStats(ctx); err != nil {
			s.secondary("home", "team stats", err)
			complete = false
		} else if len(stats) > 0 {
			page.Numbers = statsView(stats)
		}

		if players, err := s.src.Players(ctx, homePlayerCount); err != nil {
			s.secondary("home", "players", err)
			complete = false
		} else {
			page.Players = playerCards(players)
		}

		return page, complete, nil
	})
}

// About resolves the about page. Sections are primary; about content and
// team info are secondary.
func (s *Service) About(ctx context.Context) (*AboutPage, error) {
	return cached(ctx, s, s.about, "page:about", func(ctx context.Context) (*AboutPage, bool, error) {
		sections, err := s.src.Sections(ctx, "about")
		if err != nil {
			return nil, false, fmt.Errorf("%w: about sections: %v", ErrUnavailable, err)
		}
		complete := true

		blocks := Resolve(sections, sectionKey, sectionBlock, aboutSlots)
		page := &AboutPage{
			Hero:     blocks["hero"],
			TeamInfo: blocks["team_info"],
			Mission:  defaultMission,
			Vision:   defaultVision,
			Values:   defaultValues,
			Facts:    defaultFacts,
		}

		if entries, err := s.src.AboutContent(ctx); err != nil {
			s.secondary("about", "about content", err)
			complete = false
		} else {
			applyAboutContent(page, entries)
		}

		if infos, err := s.src.TeamInfo(ctx); err != nil {
			s.secondary("about", "team info", err)
			complete = false
		} else if len(infos) > 0 {
			page.Facts = factsView(infos[0])
		}

		return page, complete, nil
	})
}

// Team resolves the squad page. Players are the primary list.
func (s *Service) Team(ctx context.Context) (*TeamPage, error) {
	return cached(ctx, s, s.team, "page:team", func(ctx context.Context) (*TeamPage, bool, error) {
		players, err := s.src.Players(ctx, 0)
		if err != nil {
			return nil, false, fmt.Errorf("%w: players: %v", ErrUnavailable, err)
		}

		cards := playerCards(players)
		SortSquad(cards)

		page := &TeamPage{Players: cards}
		for _, c := range cards {
			if c.IsManagement {
				page.Management = append(page.Management, c)
			}
		}
		return page, true, nil
	})
}

// Gallery resolves the gallery. Images are primary; the call-to-action
// section is secondary.
func (s *Service) Gallery(ctx context.Context) (*GalleryPage, error) {
	return cached(ctx, s, s.gallery, "page:gallery", func(ctx context.Context) (*GalleryPage, bool, error) {
		images, err := s.src.GalleryImages(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("%w: gallery images: %v", ErrUnavailable, err)
		}
		complete := true

		page := &GalleryPage{Groups: GroupGallery(images)}

		sections, err := s.src.Sections(ctx, "gallery")
		if err != nil {
			s.secondary("gallery", "sections", err)
			complete = false
			sections = nil
		}
		page.CTA = Resolve(sections, sectionKey, sectionBlock, gallerySlots)["gallery-cta"]

		return page, complete, nil
	})
}

// Contact resolves the contact page. Sections are primary; contact info is
// secondary.
func (s *Service) Contact(ctx context.Context) (*ContactPage, error) {
	return cached(ctx, s, s.contact, "page:contact", func(ctx context.Context) (*ContactPage, bool, error) {
		sections, err := s.src.Sections(ctx, "contact")
		if err != nil {
			return nil, false, fmt.Errorf("%w: contact sections: %v", ErrUnavailable, err)
		}
		complete := true

		blocks := Resolve(sections, sectionKey, sectionBlock, contactSlots)
		page := &ContactPage{
			Hero: blocks["hero"],
			Form: blocks["form"],
		}

		if infos, err := s.src.ContactInfo(ctx); err != nil {
			s.secondary("contact", "contact info", err)
			complete = false
		} else {
			page.Groups, page.Social = groupContacts(infos)
		}

		return page, complete, nil
	})
}

func statsView(rows []store.TeamStat) []Stat {
	out := make([]Stat, 0, len(rows))
	for _, r := range rows {
		out = append(out, Stat{Label: r.Label, Value: r.Value, Icon: r.Icon, Description: r.Description})
	}
	return out
}

func applyAboutContent(page *AboutPage, entries []store.AboutContent) {
	var mission, vision bool
	var values []Entry

	for _, e := range entries {
		switch e.SectionType {
		case "mission":
			if !mission {
				page.Mission = entryOver(e, defaultMission, true)
				mission = true
			}
		case "vision":
			if !vision {
				page.Vision = entryOver(e, defaultVision, true)
				vision = true
			}
		case "values":
			values = append(values, entryOver(e, Entry{}, false))
		case "history":
			page.History = append(page.History, entryOver(e, Entry{}, true))
		}
	}

	if len(values) > 0 {
		page.Values = values
	}
}

func entryOver(e store.AboutContent, fb Entry, markdown bool) Entry {
	out := Entry{
		Title:    or(e.Title, fb.Title),
		Icon:     or(e.Icon, fb.Icon),
		ImageURL: e.ImageURL,
		Body:     fb.Body,
	}
	if strings.TrimSpace(e.Content) != "" {
		if markdown {
			out.Body = Markdown(e.Content)
		} else {
			out.Body = Text(e.Content)
		}
	}
	return out
}

func factsView(r store.TeamInfo) Facts {
	return Facts{
		HomeGround:       or(r.HomeGround, defaultFacts.HomeGround),
		FoundedYear:      or(r.FoundedYear, defaultFacts.FoundedYear),
		TrainingSchedule: or(r.TrainingSchedule, defaultFacts.TrainingSchedule),
		TeamSize:         or(r.TeamSize, defaultFacts.TeamSize),
		AdditionalInfo:   r.AdditionalInfo,
	}
}

func playerCards(rows []store.Player) []PlayerCard {
	out := make([]PlayerCard, 0, len(rows))
	for _, p := range rows {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		out = append(out, PlayerCard{
			ID:             p.ID,
			Name:           p.Name,
			Role:           or(p.Role, defaultRole),
			ImageURL:       SafeImageURL(p.ImageURL),
			Experience:     p.Experience,
			Description:    or(p.Description, defaultDescription),
			IsOwner:        p.IsOwner,
			OwnerTitle:     ownerTitle(p),
			IsCaptain:      p.IsCaptain,
			IsManagement:   p.IsManagement,
			ManagementRole: p.ManagementRole,
			Matches:        p.Matches,
			Runs:           p.Runs,
			Wickets:        p.Wickets,
			Season:         p.Season,
		})
	}
	return out
}

func ownerTitle(p store.Player) string {
	if !p.IsOwner {
		return p.OwnerTitle
	}
	return or(p.OwnerTitle, "Owner")
}

// squadRank orders owners, then co-owners, then the captain, then everyone else.
func squadRank(c PlayerCard) int {
	switch {
	case c.IsOwner && strings.Contains(c.OwnerTitle, "Owner") && !strings.Contains(c.OwnerTitle, "Co"):
		return 0
	case c.IsOwner && strings.Contains(c.OwnerTitle, "Co-Owner"):
		return 1
	case c.IsCaptain:
		return 2
	default:
		return 3
	}
}

// SortSquad orders cards by rank, keeping list order within a rank.
func SortSquad(cards []PlayerCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		return squadRank(cards[i]) < squadRank(cards[j])
	})
}

var blockedImageHosts = []string{"vusercontent.net"}

// SafeImageURL returns u when it is an absolute http(s) URL or a
// site-relative path, and "" otherwise. blob: and data: URLs and preview
// hosts never pass.
func SafeImageURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}

	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		return u
	}

	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	for _, blocked := range blockedImageHosts {
		if host == blocked || strings.HasSuffix(host, "."+blocked) {
			return ""
		}
	}
	return u
}

// GroupGallery groups images by category in order of first appearance.
// Images without a category go to "Uncategorized".
func GroupGallery(images []store.GalleryImage) []GalleryGroup {
	var groups []GalleryGroup
	index := map[string]int{}

	for _, img := range images {
		cat := strings.TrimSpace(img.Category)
		if cat == "" {
			cat = defaultCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, GalleryGroup{Category: cat})
		}
		groups[i].Images = append(groups[i].Images, img)
	}
	return groups
}

// groupContacts groups contact rows by type in order of first appearance.
// Social rows are returned separately as links.
func groupContacts(rows []store.ContactInfo) ([]ContactGroup, []ContactItem) {
	var groups []ContactGroup
	var social []ContactItem
	index := map[string]int{}

	for _, r := range rows {
		item := ContactItem{Label: r.Label, Value: r.Value, Icon: r.Icon, Link: r.Link}
		if r.Type == "social" {
			if item.Link == "" {
				item.Link = r.Value
			}
			social = append(social, item)
			continue
		}
		i, ok := index[r.Type]
		if !ok {
			i = len(groups)
			index[r.Type] = i
			groups = append(groups, ContactGroup{Type: r.Type})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups, social
}
