// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the application logic between HTTP handlers and the
// store: admin authentication, entity writes, uploads and the event log.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mileusna/useragent"

	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

// Event levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories.
const (
	EventCategoryAuth    = "auth"
	EventCategoryContent = "content"
	EventCategoryUpload  = "upload"
	EventCategorySystem  = "system"
)

// EventMeta is the request context recorded alongside an event.
type EventMeta struct {
	ActorEmail string
	IPAddress  string
	UserAgent  string
	RequestURL string
	Extra      map[string]any
}

// EventMetaFromRequest captures client IP, user agent and path of r.
// RemoteAddr is expected to be rewritten by the RealIP middleware.
func EventMetaFromRequest(r *http.Request) EventMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return EventMeta{
		IPAddress:  ip,
		UserAgent:  r.UserAgent(),
		RequestURL: r.URL.Path,
	}
}

// EventView is an event prepared for display.
type EventView struct {
	store.Event
	Client string
}

// CountryLookup resolves a client IP to an ISO country code.
type CountryLookup interface {
	LookupCountry(ip string) string
}

// EventService records audit events in the events table.
type EventService struct {
	queries   *store.Queries
	logger    *slog.Logger
	now       func() time.Time
	countries CountryLookup
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		queries: store.New(db),
		logger:  logger,
		now:     time.Now,
	}
}

// WithCountryLookup enables the "country" metadata key on events that carry
// an IP address.
func (s *EventService) WithCountryLookup(l CountryLookup) *EventService {
	s.countries = l
	return s
}

// LogEvent creates a new event log entry. The parsed user agent and, when
// a lookup is configured, the client country are added to the metadata.
func (s *EventService) LogEvent(ctx context.Context, level, category, message string, meta EventMeta) error {
	extra := make(map[string]any, len(meta.Extra)+3)
	for k, v := range meta.Extra {
		extra[k] = v
	}
	if meta.UserAgent != "" {
		ua := ParseUserAgent(meta.UserAgent)
		extra["browser"] = ua.Browser
		extra["os"] = ua.OS
		extra["device"] = ua.DeviceType
	}
	if s.countries != nil && meta.IPAddress != "" {
		if code := s.countries.LookupCountry(meta.IPAddress); code != "" {
			extra["country"] = code
		}
	}

	metadataJSON := "{}"
	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			metadataJSON = string(b)
		}
	}

	err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:      level,
		Category:   category,
		Message:    message,
		ActorEmail: meta.ActorEmail,
		IpAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		RequestUrl: meta.RequestURL,
		Metadata:   metadataJSON,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to log event", "category", category, "error", err)
		return fmt.Errorf("logging event: %w", err)
	}
	return nil
}

// LogAuthEvent logs an authentication-related event.
func (s *EventService) LogAuthEvent(ctx context.Context, level, message string, meta EventMeta) error {
	return s.LogEvent(ctx, level, EventCategoryAuth, message, meta)
}

// LogContentEvent logs an admin write.
func (s *EventService) LogContentEvent(ctx context.Context, message string, meta EventMeta) error {
	return s.LogEvent(ctx, EventLevelInfo, EventCategoryContent, message, meta)
}

// Recent returns the newest events first.
func (s *EventService) Recent(ctx context.Context, limit int64) ([]EventView, error) {
	events, err := s.queries.ListRecentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		v := EventView{Event: e}
		if e.UserAgent != "" {
			ua := ParseUserAgent(e.UserAgent)
			v.Client = ua.Browser + " on " + ua.OS
		}
		views = append(views, v)
	}
	return views, nil
}

// Prune deletes events older than retention and returns how many went.
func (s *EventService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.queries.DeleteEventsBefore(ctx, s.now().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("pruning events: %w", err)
	}
	return n, nil
}

// ParsedUA is the browser, OS and device class of a user agent string.
type ParsedUA struct {
	Browser    string
	OS         string
	DeviceType string
}

// ParseUserAgent extracts browser, OS, and device type from a user agent string.
func ParseUserAgent(uaString string) ParsedUA {
	ua := useragent.Parse(uaString)

	result := ParsedUA{
		Browser: ua.Name,
		OS:      ua.OS,
	}
	if result.Browser == "" {
		result.Browser = "Unknown"
	}
	if result.OS == "" {
		result.OS = "Unknown"
	}

	switch {
	case ua.Mobile:
		result.DeviceType = "mobile"
	case ua.Tablet:
		result.DeviceType = "tablet"
	case ua.Bot:
		result.DeviceType = "bot"
	default:
		result.DeviceType = "desktop"
	}

	return result
}
