// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage puts uploaded objects into a bucket and hands back their
// public URLs. Two backends exist: a directory on local disk and Cloudinary.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectExists is returned by Put when the key is already taken.
var ErrObjectExists = errors.New("object already exists")

// Object identifies a stored upload.
type Object struct {
	Key string // bucket-relative path, e.g. players/1735689600000-ab12cd34.jpg
	URL string // public URL of the object
}

// Store is an object bucket.
type Store interface {
	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context) error
	// Put writes r under key. It never overwrites an existing object.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Object, error)
	// Delete removes the object at key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the URL at which key is served.
	PublicURL(key string) string
	// Name identifies the backend in logs.
	Name() string
}
