// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PinkuChanda/frankfurter-rebels/internal/imaging"
	"github.com/PinkuChanda/frankfurter-rebels/internal/storage"
	"github.com/PinkuChanda/frankfurter-rebels/internal/util"
)

// Upload limits
const (
	MaxUploadSize = 10 * 1024 * 1024 // 10MB
	DefaultFolder = "uploads"
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrInvalidImage    = errors.New("invalid image file")
	ErrStorage         = errors.New("failed to upload file")
)

// UploadInput is one file received from a form.
type UploadInput struct {
	Filename    string
	ContentType string // from the multipart part header; sniffed when empty
	Size        int64  // declared size; -1 when unknown
	Body        io.Reader
	Folder      string
}

// UploadResult locates a stored upload.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// UploadService validates images and writes them to the object store.
type UploadService struct {
	store     storage.Store
	processor *imaging.Processor
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewUploadService creates an upload service writing to st.
func NewUploadService(st storage.Store, logger *slog.Logger) *UploadService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadService{
		store:     st,
		processor: imaging.NewProcessor(),
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:12] },
	}
}

// InputFromFileHeader opens a multipart file for Upload. The caller closes
// the returned file.
func InputFromFileHeader(fh *multipart.FileHeader, folder string) (UploadInput, multipart.File, error) {
	if fh == nil {
		return UploadInput{}, nil, ErrNoFile
	}
	f, err := fh.Open()
	if err != nil {
		return UploadInput{}, nil, fmt.Errorf("opening upload: %w", err)
	}
	return UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
		Folder:      folder,
	}, f, nil
}

// Upload checks size, type and image validity, in that order, and only
// then writes the object. Nothing reaches storage when a check fails.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if in.Body == nil {
		return UploadResult{}, ErrNoFile
	}
	if in.Size > MaxUploadSize {
		return UploadResult{}, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(in.Body, MaxUploadSize+1))
	if err != nil {
		return UploadResult{}, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return UploadResult{}, ErrFileTooLarge
	}
	if len(data) == 0 {
		return UploadResult{}, ErrNoFile
	}

	mimeType := baseMimeType(in.ContentType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = imaging.DetectMimeType(data)
	}
	if !imaging.IsSupportedType(mimeType) {
		return UploadResult{}, ErrInvalidFileType
	}

	body, info, err := s.processor.Normalize(data)
	if err != nil {
		s.logger.Debug("upload rejected by image check", "filename", in.Filename, "error", err)
		return UploadResult{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	key := s.objectKey(in.Folder, info.MimeType)
	obj, err := s.store.Put(ctx, key, bytes.NewReader(body), info.MimeType)
	if err != nil {
		s.logger.Error("storing upload failed", "backend", s.store.Name(), "key", key, "error", err)
		return UploadResult{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.logger.Info("file uploaded",
		"key", obj.Key,
		"bytes", len(body),
		"width", info.Width,
		"height", info.Height,
		"rotated", info.Rotated,
	)
	return UploadResult{URL: obj.URL, Path: obj.Key}, nil
}

// Discard removes a stored upload by its path. It is used when the row the
// upload was meant for could not be saved.
func (s *UploadService) Discard(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := s.store.Delete(ctx, path); err != nil {
		s.logger.Warn("discarding upload failed", "backend", s.store.Name(), "key", path, "error", err)
		return fmt.Errorf("discarding upload %s: %w", path, err)
	}
	s.logger.Info("upload discarded", "key", path)
	return nil
}

// objectKey returns <folder>/<unix-millis>-<random>.<ext>.
func (s *UploadService) objectKey(folder, mimeType string) string {
	folder = util.SlugOr(folder, DefaultFolder)
	return fmt.Sprintf("%s/%d-%s.%s", folder, s.now().UnixMilli(), s.newID(), imaging.ExtensionFor(mimeType))
}

func baseMimeType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
