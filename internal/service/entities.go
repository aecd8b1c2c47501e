// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidJSON is returned for request bodies that are not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON body")
)

// Filter narrows public list queries. Empty fields do not filter.
type Filter struct {
	Page        string
	SectionType string
	Type        string
	Category    string
	Season      string
	Featured    bool
	Limit       int64
}

// Resource is the create/read/update/delete surface of one entity table.
// T is the stored row, In the writable payload.
type Resource[T any, In any] struct {
	Singular string // "Player"
	Plural   string // "players"

	svc *EntityService

	blank     func() In
	fromRow   func(T) In
	normalize func(*In)

	listPublic func(context.Context, Filter) ([]T, error)
	listAll    func(context.Context) ([]T, error)
	get        func(context.Context, int64) (T, error)
	visible    func(T) bool // nil when every row is public
	create     func(context.Context, In, time.Time) (T, error)
	update     func(context.Context, int64, In, time.Time) (T, error)
	remove     func(context.Context, int64) (int64, error)
	count      func(context.Context) (int64, error)
}

// List returns the rows a public visitor may see, narrowed by f.
func (r *Resource[T, In]) List(ctx context.Context, f Filter) ([]T, error) {
	rows, err := r.listPublic(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.Plural, err)
	}
	return rows, nil
}

// ListAll returns every row, active or not.
func (r *Resource[T, In]) ListAll(ctx context.Context) ([]T, error) {
	rows, err := r.listAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing all %s: %w", r.Plural, err)
	}
	return rows, nil
}

// Get returns the row with id or ErrNotFound.
func (r *Resource[T, In]) Get(ctx context.Context, id int64) (T, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("getting %s %d: %w", strings.ToLower(r.Singular), id, err)
	}
	return row, nil
}

// GetPublic is Get for visitors: a row left out of the public lists is
// reported as ErrNotFound.
func (r *Resource[T, In]) GetPublic(ctx context.Context, id int64) (T, error) {
	row, err := r.Get(ctx, id)
	if err != nil {
		return row, err
	}
	if r.visible != nil && !r.visible(row) {
		var zero T
		return zero, ErrNotFound
	}
	return row, nil
}

// Count returns the number of rows.
func (r *Resource[T, In]) Count(ctx context.Context) (int64, error) {
	n, err := r.count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.Plural, err)
	}
	return n, nil
}

// Input returns the writable payload of row, used to prefill edit forms.
func (r *Resource[T, In]) Input(row T) In {
	return r.fromRow(row)
}

// Blank returns the payload a new row starts from.
func (r *Resource[T, In]) Blank() In {
	return r.blank()
}

// Create decodes body over the default payload, validates it and inserts a row.
func (r *Resource[T, In]) Create(ctx context.Context, body []byte) (T, error) {
	var zero T

	in := r.blank()
	if err := decodeJSON(body, &in); err != nil {
		return zero, err
	}
	if err := r.check(&in); err != nil {
		return zero, err
	}

	row, err := r.create(ctx, in, r.svc.now().UTC())
	if err != nil {
		return zero, fmt.Errorf("creating %s: %w", strings.ToLower(r.Singular), err)
	}

	r.svc.changed(ctx)
	return row, nil
}

// Update decodes body over the stored row, so omitted fields keep their
// value, then validates and saves it. updated_at is stamped with the
// current time.
func (r *Resource[T, In]) Update(ctx context.Context, id int64, body []byte) (T, error) {
	var zero T

	existing, err := r.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	in := r.fromRow(existing)
	if err := decodeJSON(body, &in); err != nil {
		return zero, err
	}
	if err := r.check(&in); err != nil {
		return zero, err
	}

	row, err := r.update(ctx, id, in, r.svc.now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("updating %s %d: %w", strings.ToLower(r.Singular), id, err)
	}

	r.svc.changed(ctx)
	return row, nil
}

// Delete removes the row with id permanently.
func (r *Resource[T, In]) Delete(ctx context.Context, id int64) error {
	n, err := r.remove(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", strings.ToLower(r.Singular), id, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	r.svc.changed(ctx)
	return nil
}

func (r *Resource[T, In]) check(in *In) error {
	if r.normalize != nil {
		r.normalize(in)
	}
	return validateStruct(r.svc.validate, in)
}

// EntityService groups the content tables edited from the admin area.
// Every successful write notifies the OnChange subscribers.
type EntityService struct {
	Sections *Resource[store.Section, SectionInput]
	About    *Resource[store.AboutContent, AboutContentInput]
	Contact  *Resource[store.ContactInfo, ContactInfoInput]
	Players  *Resource[store.Player, PlayerInput]
	Gallery  *Resource[store.GalleryImage, GalleryImageInput]
	Stats    *Resource[store.TeamStat, TeamStatInput]
	TeamInfo *Resource[store.TeamInfo, TeamInfoInput]

	validate *validator.Validate
	now      func() time.Time

	mu       sync.RWMutex
	onChange []func(context.Context)
}

// NewEntityService binds the entity resources to db.
func NewEntityService(db *sql.DB) *EntityService {
	s := &EntityService{
		validate: newValidator(),
		now:      time.Now,
	}
	q := store.New(db)

	s.Sections = newSectionResource(s, q)
	s.About = newAboutContentResource(s, q)
	s.Contact = newContactInfoResource(s, q)
	s.Players = newPlayerResource(s, q)
	s.Gallery = newGalleryImageResource(s, q)
	s.Stats = newTeamStatResource(s, q)
	s.TeamInfo = newTeamInfoResource(s, q)

	return s
}

// OnChange registers fn to run after every successful write.
func (s *EntityService) OnChange(fn func(context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// SetClock replaces the time source used for created_at/updated_at.
func (s *EntityService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *EntityService) changed(ctx context.Context) {
	s.mu.RLock()
	fns := s.onChange
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx)
	}
}
