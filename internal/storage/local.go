// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PinkuChanda/frankfurter-rebels/internal/util"
)

// LocalURLPrefix is the path under which the uploads directory is served.
const LocalURLPrefix = "/uploads/"

// LocalStore keeps objects in <root>/<bucket>/ on local disk.
type LocalStore struct {
	root   string
	bucket string
	logger *slog.Logger

	mu      sync.Mutex
	ensured bool
}

// NewLocalStore creates a store rooted at root. Nothing is created on disk
// until EnsureBucket or Put is called.
func NewLocalStore(root, bucket string, logger *slog.Logger) *LocalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalStore{
		root:   root,
		bucket: util.SlugOr(bucket, "uploads"),
		logger: logger,
	}
}

// Name implements Store.
func (s *LocalStore) Name() string { return "local" }

// Root returns the directory served under LocalURLPrefix.
func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) bucketDir() string {
	return filepath.Join(s.root, s.bucket)
}

// EnsureBucket implements Store.
func (s *LocalStore) EnsureBucket(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ensured {
		return nil
	}

	dir := s.bucketDir()
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
		}
		s.logger.Info("created storage bucket", "backend", s.Name(), "bucket", s.bucket)
	} else if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}

	s.ensured = true
	return nil
}

// Put implements Store.
func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, _ string) (Object, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return Object{}, err
	}

	target, err := util.SafeJoinPath(s.bucketDir(), key)
	if err != nil {
		return Object{}, fmt.Errorf("object key %q: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Object{}, fmt.Errorf("creating object directory: %w", err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Object{}, fmt.Errorf("%w: %s", ErrObjectExists, key)
		}
		return Object{}, fmt.Errorf("creating object: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return Object{}, fmt.Errorf("writing object: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return Object{}, fmt.Errorf("closing object: %w", err)
	}

	return Object{Key: key, URL: s.PublicURL(key)}, nil
}

// Delete implements Store.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	target, err := util.SafeJoinPath(s.bucketDir(), key)
	if err != nil {
		return fmt.Errorf("object key %q: %w", key, err)
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing object: %w", err)
	}
	return nil
}

// PublicURL implements Store.
func (s *LocalStore) PublicURL(key string) string {
	return LocalURLPrefix + path.Join(s.bucket, strings.TrimPrefix(key, "/"))
}
