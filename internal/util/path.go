// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathTraversal is returned when a joined path escapes its base directory.
var ErrPathTraversal = errors.New("path traversal detected: path escapes base directory")

// ValidatePathWithinBase ensures that targetPath resolves inside basePath.
func ValidatePathWithinBase(basePath, targetPath string) error {
	absBase, err := filepath.Abs(filepath.Clean(basePath))
	if err != nil {
		return fmt.Errorf("invalid base path: %w", err)
	}

	absTarget, err := filepath.Abs(filepath.Clean(targetPath))
	if err != nil {
		return fmt.Errorf("invalid target path: %w", err)
	}

	// Trailing separator so /uploads-evil does not match /uploads.
	if absTarget != absBase && !strings.HasPrefix(absTarget, absBase+string(filepath.Separator)) {
		return ErrPathTraversal
	}

	return nil
}

// SafeJoinPath joins an object key onto basePath and rejects keys that
// would land outside it. Keys use forward slashes on every platform.
func SafeJoinPath(basePath, key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || ContainsPathTraversal(key) {
		return "", ErrPathTraversal
	}

	fullPath := filepath.Join(basePath, filepath.FromSlash(key))
	if err := ValidatePathWithinBase(basePath, fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}

// ContainsPathTraversal reports whether any segment of key is "..".
func ContainsPathTraversal(key string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(key), "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
