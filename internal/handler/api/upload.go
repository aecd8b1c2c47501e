// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"

	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
)

// Upload error messages.
const (
	MsgNoFile          = "No file provided"
	MsgFileTooLarge    = "File size must be less than 10MB"
	MsgInvalidFileType = "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed."
	MsgInvalidImage    = "Invalid image file"
	MsgUploadFailed    = "Failed to upload file"
)

// multipart overhead allowed on top of the file itself
const uploadEnvelope = 1 << 20

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Upload handles POST /api/upload.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadSize+uploadEnvelope)
	if err := r.ParseMultipartForm(service.MaxUploadSize + uploadEnvelope); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusBadRequest, MsgFileTooLarge)
			return
		}
		WriteError(w, http.StatusBadRequest, MsgNoFile)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	_, fh, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, MsgNoFile)
		return
	}

	in, f, err := service.InputFromFileHeader(fh, r.FormValue("folder"))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "opening upload failed", "error", err)
		WriteError(w, http.StatusInternalServerError, MsgUploadFailed)
		return
	}
	defer func() { _ = f.Close() }()

	res, err := h.uploads.Upload(r.Context(), in)
	if err != nil {
		status, msg := UploadErrorMessage(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "upload failed", "error", err)
		}
		WriteError(w, status, msg)
		return
	}

	h.logUploadEvent(r, res.Path)

	WriteJSON(w, http.StatusOK, uploadResponse{
		Success: true,
		URL:     res.URL,
		Path:    res.Path,
		Message: "File uploaded successfully",
	})
}

// UploadErrorMessage maps an upload error to its status and message.
func UploadErrorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNoFile):
		return http.StatusBadRequest, MsgNoFile
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusBadRequest, MsgFileTooLarge
	case errors.Is(err, service.ErrInvalidFileType):
		return http.StatusBadRequest, MsgInvalidFileType
	case errors.Is(err, service.ErrInvalidImage):
		return http.StatusBadRequest, MsgInvalidImage
	default:
		return http.StatusInternalServerError, MsgUploadFailed
	}
}
