// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/PinkuChanda/frankfurter-rebels/internal/util"
)

// CloudinaryConfig holds Cloudinary credentials.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Bucket    string // root folder
}

// CloudinaryStore keeps objects as Cloudinary image assets under a root folder.
type CloudinaryStore struct {
	cloudName string
	bucket    string
	uploader  *uploader.API
	admin     *admin.API
	logger    *slog.Logger

	mu      sync.Mutex
	ensured bool
}

// NewCloudinaryStore builds a store from Cloudinary credentials.
func NewCloudinaryStore(cfg CloudinaryConfig, logger *slog.Logger) (*CloudinaryStore, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary: cloud name, API key and API secret are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	cldCfg, err := config.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	up, err := uploader.NewWithConfiguration(cldCfg)
	if err != nil {
		return nil, fmt.Errorf("cloudinary uploader: %w", err)
	}
	adm, err := admin.NewWithConfiguration(cldCfg)
	if err != nil {
		return nil, fmt.Errorf("cloudinary admin: %w", err)
	}

	return &CloudinaryStore{
		cloudName: cfg.CloudName,
		bucket:    util.SlugOr(cfg.Bucket, "uploads"),
		uploader:  up,
		admin:     adm,
		logger:    logger,
	}, nil
}

// Name implements Store.
func (s *CloudinaryStore) Name() string { return "cloudinary" }

// EnsureBucket implements Store. Creating an existing folder is a no-op on
// Cloudinary's side, so the call is made once per process.
func (s *CloudinaryStore) EnsureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ensured {
		return nil
	}

	if _, err := s.admin.CreateFolder(ctx, admin.CreateFolderParams{Folder: s.bucket}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	s.logger.Info("storage bucket ready", "backend", s.Name(), "bucket", s.bucket)

	s.ensured = true
	return nil
}

// Put implements Store.
func (s *CloudinaryStore) Put(ctx context.Context, key string, r io.Reader, _ string) (Object, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return Object{}, err
	}

	folder, publicID := s.split(key)
	result, err := s.uploader.Upload(ctx, r, uploader.UploadParams{
		Folder:    folder,
		PublicID:  publicID,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return Object{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.SecureURL == "" {
		return Object{}, fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}

	return Object{Key: key, URL: result.SecureURL}, nil
}

// Delete implements Store.
func (s *CloudinaryStore) Delete(ctx context.Context, key string) error {
	folder, publicID := s.split(key)
	if _, err := s.uploader.Destroy(ctx, uploader.DestroyParams{PublicID: folder + "/" + publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// PublicURL implements Store.
func (s *CloudinaryStore) PublicURL(key string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/%s",
		s.cloudName, s.bucket, strings.TrimPrefix(key, "/"))
}

// split maps a bucket key to a Cloudinary folder and public ID; the file
// extension is dropped because Cloudinary derives the format itself.
func (s *CloudinaryStore) split(key string) (folder, publicID string) {
	dir, file := path.Split(strings.TrimPrefix(key, "/"))
	folder = path.Join(s.bucket, dir)
	publicID = strings.TrimSuffix(file, path.Ext(file))
	return folder, publicID
}
