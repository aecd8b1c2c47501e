// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/PinkuChanda/frankfurter-rebels/internal/handler/api"
	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/render"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

// formResource is the type-erased view of a service.Resource used by the
// admin forms. Rows and payloads travel as JSON-shaped maps.
type formResource interface {
	singular() string
	plural() string
	count(ctx context.Context) (int64, error)
	rows(ctx context.Context) ([]map[string]any, error)
	values(ctx context.Context, id int64) (map[string]any, error)
	blank() map[string]any
	create(ctx context.Context, body []byte) error
	update(ctx context.Context, id int64, body []byte) error
	delete(ctx context.Context, id int64) error
}

type adminResource[T any, In any] struct {
	res *service.Resource[T, In]
}

func (a adminResource[T, In]) singular() string { return a.res.Singular }
func (a adminResource[T, In]) plural() string   { return a.res.Plural }

func (a adminResource[T, In]) count(ctx context.Context) (int64, error) {
	return a.res.Count(ctx)
}

func (a adminResource[T, In]) rows(ctx context.Context) ([]map[string]any, error) {
	list, err := a.res.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(list))
	for _, row := range list {
		m, err := toMap(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (a adminResource[T, In]) values(ctx context.Context, id int64) (map[string]any, error) {
	row, err := a.res.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMap(a.res.Input(row))
}

func (a adminResource[T, In]) blank() map[string]any {
	m, _ := toMap(a.res.Blank())
	return m
}

func (a adminResource[T, In]) create(ctx context.Context, body []byte) error {
	_, err := a.res.Create(ctx, body)
	return err
}

func (a adminResource[T, In]) update(ctx context.Context, id int64, body []byte) error {
	_, err := a.res.Update(ctx, id, body)
	return err
}

func (a adminResource[T, In]) delete(ctx context.Context, id int64) error {
	return a.res.Delete(ctx, id)
}

// toMap converts v into its JSON object form.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decoding row: %w", err)
	}
	return m, nil
}

// ResourceConfig describes one admin content section.
type ResourceConfig struct {
	Slug    string
	Title   string
	Fields  []Field
	Columns []Column
	// Adjust runs on the submitted payload before it is saved.
	Adjust func(map[string]any)

	res formResource
}

// ResourcesHandler serves the admin list and edit forms of every content
// table. Forms go through the same entity service as the JSON API.
type ResourcesHandler struct {
	configs      []*ResourceConfig
	uploads      *service.UploadService
	eventService *service.EventService
	renderer     *render.Renderer
}

// NewResourcesHandler creates the admin forms for all entity families.
func NewResourcesHandler(entities *service.EntityService, uploads *service.UploadService, events *service.EventService, renderer *render.Renderer) *ResourcesHandler {
	return &ResourcesHandler{
		uploads:      uploads,
		eventService: events,
		renderer:     renderer,
		configs: []*ResourceConfig{
			{
				Slug: "players", Title: "Players", Fields: playerFields(),
				Columns: []Column{{"Name", "name"}, {"Role", "role"}, {"Owner", "is_owner"}, {"Captain", "is_captain"}, {"Season", "season"}},
				Adjust:  ownerClearsCaptain,
				res:     adminResource[store.Player, service.PlayerInput]{entities.Players},
			},
			{
				Slug: "gallery", Title: "Gallery", Fields: galleryFields(),
				Columns: []Column{{"Title", "title"}, {"Category", "category"}, {"Season", "season"}, {"Active", "is_active"}},
				res:     adminResource[store.GalleryImage, service.GalleryImageInput]{entities.Gallery},
			},
			{
				Slug: "sections", Title: "Page sections", Fields: sectionFields(),
				Columns: []Column{{"Page", "page"}, {"Section", "section_name"}, {"Title", "title"}, {"Order", "sort_order"}, {"Active", "is_active"}},
				res:     adminResource[store.Section, service.SectionInput]{entities.Sections},
			},
			{
				Slug: "about", Title: "About content", Fields: aboutFields(),
				Columns: []Column{{"Type", "section_type"}, {"Title", "title"}, {"Order", "sort_order"}, {"Active", "is_active"}},
				res:     adminResource[store.AboutContent, service.AboutContentInput]{entities.About},
			},
			{
				Slug: "contact", Title: "Contact info", Fields: contactFields(),
				Columns: []Column{{"Type", "type"}, {"Label", "label"}, {"Value", "value"}, {"Active", "is_active"}},
				res:     adminResource[store.ContactInfo, service.ContactInfoInput]{entities.Contact},
			},
			{
				Slug: "stats", Title: "Team stats", Fields: statFields(),
				Columns: []Column{{"Label", "label"}, {"Value", "value"}, {"Order", "sort_order"}, {"Active", "is_active"}},
				res:     adminResource[store.TeamStat, service.TeamStatInput]{entities.Stats},
			},
			{
				Slug: "team-info", Title: "Team information", Fields: teamInfoFields(),
				Columns: []Column{{"Home ground", "home_ground"}, {"Founded", "founded_year"}, {"Team size", "team_size"}},
				res:     adminResource[store.TeamInfo, service.TeamInfoInput]{entities.TeamInfo},
			},
		},
	}
}

// Configs returns the admin sections in navigation order.
func (h *ResourcesHandler) Configs() []*ResourceConfig {
	return h.configs
}

// Routes mounts every admin section below r.
func (h *ResourcesHandler) Routes(r chi.Router) {
	for _, cfg := range h.configs {
		r.Route("/"+cfg.Slug, func(r chi.Router) {
			r.Get(RouteRoot, h.list(cfg))
			r.Get(RouteSuffixNew, h.newForm(cfg))
			r.Post(RouteRoot, h.create(cfg))
			r.Get(RouteParamID, h.editForm(cfg))
			r.Post(RouteParamID, h.update(cfg))
			r.Post(RouteParamID+RouteSuffixDelete, h.delete(cfg))
		})
	}
}

func (cfg *ResourceConfig) basePath() string {
	return middleware.AdminPrefix + "/" + cfg.Slug
}

// ListRow is one row of an admin list table.
type ListRow struct {
	ID    int64
	Cells []string
}

// ListData is the data of the admin list page.
type ListData struct {
	Resource *ResourceConfig
	Rows     []ListRow
}

// FormField is a field with its current value.
type FormField struct {
	Field
	Value   string
	Checked bool
}

// FormData is the data of the admin edit page.
type FormData struct {
	Resource *ResourceConfig
	ID       int64
	Action   string
	Fields   []FormField
	Error    string
}

func (h *ResourcesHandler) list(cfg *ResourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := cfg.res.rows(r.Context())
		if err != nil {
			logAndInternalError(w, "failed to list rows", "resource", cfg.Slug, "error", err)
			return
		}

		data := ListData{Resource: cfg, Rows: make([]ListRow, 0, len(rows))}
		for _, row := range rows {
			lr := ListRow{ID: int64Value(row["id"])}
			for _, c := range cfg.Columns {
				lr.Cells = append(lr.Cells, cellText(row[c.Field]))
			}
			data.Rows = append(data.Rows, lr)
		}

		renderPage(w, r, h.renderer, http.StatusOK, "admin/list", render.TemplateData{
			Title: cfg.Title,
			Data:  data,
		})
	}
}

func (h *ResourcesHandler) newForm(cfg *ResourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderForm(w, r, http.StatusOK, cfg, 0, cfg.res.blank(), "")
	}
}

func (h *ResourcesHandler) editForm(cfg *ResourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r)
		if !ok {
			flashError(w, r, h.renderer, cfg.basePath(), "Invalid ID")
			return
		}

		values, err := cfg.res.values(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				flashError(w, r, h.renderer, cfg.basePath(), cfg.res.singular()+" not found")
				return
			}
			logAndInternalError(w, "failed to load row", "resource", cfg.Slug, "id", id, "error", err)
			return
		}

		h.renderForm(w, r, http.StatusOK, cfg, id, values, "")
	}
}

func (h *ResourcesHandler) create(cfg *ResourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, stored, err := h.readPayload(r, cfg)
		if err != nil {
			h.renderForm(w, r, http.StatusBadRequest, cfg, 0, payload, err.Error())
			return
		}

		body, _ := json.Marshal(payload)
		if err := cfg.res.create(r.Context(), body); err != nil {
			h.discardUploads(r.Context(), payload, stored)
			h.saveFailed(w, r, cfg, 0, payload, err)
			return
		}

		h.logUploads(r, stored)
		h.logChange(r, cfg.res.singular()+" created")
		flashSuccess(w, r, h.renderer, cfg.basePath(), cfg.res.singular()+" created")
	}
}

func (h *ResourcesHandler) update(cfg *ResourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r)
		if !ok {
			flashError(w, r, h.renderer, cfg.basePath(), "Invalid ID")
			return
		}

		payload, stored, err := h.readPayload(r, cfg)
		if err != nil {
			h.renderForm(w, r, http.StatusBadRequest, cfg, id, payload, err.Error())
			return
		}

		body, _ := json.Marshal(payload)
		if err := cfg.res.update(r.Context(), id, body); err != nil {
			h.discardUploads(r.Context(), payload, stored)
			h.saveFailed(w, r, cfg, id, payload, err)
			return
		}

		h.logUploads(r, stored)
		h.logChange(r, cfg.res.singular()+" updated")
		flashSuccess(w, r, h.renderer, cfg.basePath(), cfg.res.singular()+" updated")
	}
}

func (h *ResourcesHandler) delete(cfg *ResourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r)
		if !ok {
			flashError(w, r, h.renderer, cfg.basePath(), "Invalid ID")
			return
		}

		if err := cfg.res.delete(r.Context(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				flashError(w, r, h.renderer, cfg.basePath(), cfg.res.singular()+" not found")
				return
			}
			slog.Error("failed to delete row", "resource", cfg.Slug, "id", id, "error", err)
			flashError(w, r, h.renderer, cfg.basePath(), "Failed to delete "+strings.ToLower(cfg.res.singular()))
			return
		}

		h.logChange(r, cfg.res.singular()+" deleted")
		flashSuccess(w, r, h.renderer, cfg.basePath(), cfg.res.singular()+" deleted")
	}
}

// saveFailed re-renders the form for validation errors and redirects for
// everything else.
func (h *ResourcesHandler) saveFailed(w http.ResponseWriter, r *http.Request, cfg *ResourceConfig, id int64, payload map[string]any, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		h.renderForm(w, r, http.StatusBadRequest, cfg, id, payload, verr.Message)
	case errors.Is(err, service.ErrNotFound):
		flashError(w, r, h.renderer, cfg.basePath(), cfg.res.singular()+" not found")
	default:
		slog.Error("failed to save row", "resource", cfg.Slug, "id", id, "error", err)
		h.renderForm(w, r, http.StatusInternalServerError, cfg, id, payload, "Failed to save "+strings.ToLower(cfg.res.singular()))
	}
}

func (h *ResourcesHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, cfg *ResourceConfig, id int64, values map[string]any, formErr string) {
	data := FormData{Resource: cfg, ID: id, Error: formErr, Action: cfg.basePath()}
	title := "New " + strings.ToLower(cfg.res.singular())
	if id > 0 {
		data.Action = fmt.Sprintf("%s/%d", cfg.basePath(), id)
		title = "Edit " + strings.ToLower(cfg.res.singular())
	}

	for _, f := range cfg.Fields {
		ff := FormField{Field: f}
		if f.Kind == FieldCheckbox {
			ff.Checked, _ = values[f.Name].(bool)
		} else if v, ok := values[f.Name]; ok && v != nil {
			ff.Value = fmt.Sprint(v)
		}
		data.Fields = append(data.Fields, ff)
	}

	renderPage(w, r, h.renderer, status, "admin/form", render.TemplateData{
		Title: title,
		Data:  data,
	})
}

// formUpload is an image stored while reading a form. Raw is the URL the
// admin typed into the field, restored when the upload is discarded.
type formUpload struct {
	field string
	raw   string
	res   service.UploadResult
}

// readPayload turns the submitted form into a JSON payload for the entity
// service. An image field takes an uploaded file over the typed URL.
// Files are stored only once every other field parsed, and a failed upload
// discards the files stored before it.
func (h *ResourcesHandler) readPayload(r *http.Request, cfg *ResourceConfig) (map[string]any, []formUpload, error) {
	payload := make(map[string]any, len(cfg.Fields))

	var parseErr error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		parseErr = r.ParseMultipartForm(service.MaxUploadSize)
	} else {
		parseErr = r.ParseForm()
	}
	if parseErr != nil {
		return payload, nil, errors.New("Invalid form data")
	}

	var images []Field
	var firstErr error
	for _, f := range cfg.Fields {
		raw := r.FormValue(f.Name)
		switch f.Kind {
		case FieldCheckbox:
			payload[f.Name] = raw != ""
		case FieldNumber:
			raw = strings.TrimSpace(raw)
			if raw == "" {
				payload[f.Name] = 0
				continue
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("%s must be a whole number", f.Label)
			}
			payload[f.Name] = n
		case FieldImage:
			payload[f.Name] = raw
			images = append(images, f)
		default:
			payload[f.Name] = raw
		}
	}

	if cfg.Adjust != nil {
		cfg.Adjust(payload)
	}
	if firstErr != nil {
		return payload, nil, firstErr
	}

	var stored []formUpload
	for _, f := range images {
		res, err := h.uploadField(r, cfg, f)
		if err != nil {
			h.discardUploads(r.Context(), payload, stored)
			return payload, nil, err
		}
		if res.URL == "" {
			continue
		}
		stored = append(stored, formUpload{field: f.Name, raw: r.FormValue(f.Name), res: res})
		payload[f.Name] = res.URL
	}
	return payload, stored, nil
}

// uploadField stores the file sent as <field>_file, if any. A zero result
// means no file was sent.
func (h *ResourcesHandler) uploadField(r *http.Request, cfg *ResourceConfig, f Field) (service.UploadResult, error) {
	if r.MultipartForm == nil || h.uploads == nil {
		return service.UploadResult{}, nil
	}
	fhs := r.MultipartForm.File[f.Name+"_file"]
	if len(fhs) == 0 || fhs[0].Size == 0 {
		return service.UploadResult{}, nil
	}

	in, file, err := service.InputFromFileHeader(fhs[0], cfg.Slug)
	if err != nil {
		slog.Error("opening form upload failed", "error", err)
		return service.UploadResult{}, errors.New(api.MsgUploadFailed)
	}
	defer func() { _ = file.Close() }()

	res, err := h.uploads.Upload(r.Context(), in)
	if err != nil {
		_, msg := api.UploadErrorMessage(err)
		return service.UploadResult{}, errors.New(msg)
	}
	return res, nil
}

// discardUploads removes files stored for a row that was not saved and puts
// the typed URLs back into payload.
func (h *ResourcesHandler) discardUploads(ctx context.Context, payload map[string]any, stored []formUpload) {
	for _, u := range stored {
		_ = h.uploads.Discard(ctx, u.res.Path)
		payload[u.field] = u.raw
	}
}

func (h *ResourcesHandler) logUploads(r *http.Request, stored []formUpload) {
	if h.eventService == nil {
		return
	}
	for _, u := range stored {
		meta := service.EventMetaFromRequest(r)
		meta.ActorEmail = middleware.GetAdminEmail(r)
		meta.Extra = map[string]any{"path": u.res.Path}
		_ = h.eventService.LogEvent(r.Context(), service.EventLevelInfo, service.EventCategoryUpload, "File uploaded", meta)
	}
}

func (h *ResourcesHandler) logChange(r *http.Request, message string) {
	if h.eventService == nil {
		return
	}
	meta := service.EventMetaFromRequest(r)
	meta.ActorEmail = middleware.GetAdminEmail(r)
	_ = h.eventService.LogContentEvent(r.Context(), message, meta)
}

func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// int64Value reads a JSON number decoded into a map.
func int64Value(v any) int64 {
	if f, ok := v.(float64); ok {
		return int64(f)
	}
	return 0
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case float64:
		return strconv.FormatInt(int64(t), 10)
	default:
		return fmt.Sprint(t)
	}
}
