// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSafeJoinPath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "nested key", key: "players/1-a.jpg", want: filepath.Join(base, "players", "1-a.jpg")},
		{name: "flat key", key: "photo.png", want: filepath.Join(base, "photo.png")},
		{name: "parent segment", key: "../secret", wantErr: true},
		{name: "inner parent segment", key: "players/../../x", wantErr: true},
		{name: "absolute key", key: "/etc/passwd", wantErr: true},
		{name: "empty key", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeJoinPath(base, tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrPathTraversal) {
					t.Errorf("SafeJoinPath(%q) error = %v; want ErrPathTraversal", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SafeJoinPath(%q) unexpected error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("SafeJoinPath(%q) = %q; want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestValidatePathWithinBase(t *testing.T) {
	base := t.TempDir()

	if err := ValidatePathWithinBase(base, filepath.Join(base, "a", "b")); err != nil {
		t.Errorf("inside path error = %v; want nil", err)
	}
	if err := ValidatePathWithinBase(base, base); err != nil {
		t.Errorf("base itself error = %v; want nil", err)
	}
	if err := ValidatePathWithinBase(base, base+"-evil"); err == nil {
		t.Error("sibling prefix path accepted")
	}
}

func TestContainsPathTraversal(t *testing.T) {
	tests := map[string]bool{
		"a/b.jpg":      false,
		"..":           true,
		"a/../b":       true,
		"a/..b/c":      false,
		"uploads/x..y": false,
	}
	for key, want := range tests {
		if got := ContainsPathTraversal(key); got != want {
			t.Errorf("ContainsPathTraversal(%q) = %v; want %v", key, got, want)
		}
	}
}
