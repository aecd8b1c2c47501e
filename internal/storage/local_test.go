// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PinkuChanda/frankfurter-rebels/internal/testutil"
)

func TestLocalStore_EnsureBucket(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root, "Cricket Images", testutil.TestLogger())

	if err := s.EnsureBucket(context.Background()); err != nil {
		t.Fatalf("EnsureBucket: %v", err)
	}
	info, err := os.Stat(filepath.Join(root, "cricket-images"))
	if err != nil || !info.IsDir() {
		t.Fatalf("bucket directory missing: %v", err)
	}
	if err := s.EnsureBucket(context.Background()); err != nil {
		t.Errorf("second EnsureBucket: %v", err)
	}
}

func TestLocalStore_PutAndDelete(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root, "cricket-images", testutil.TestLogger())
	ctx := context.Background()

	obj, err := s.Put(ctx, "players/1-abc.jpg", strings.NewReader("jpeg bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if obj.Key != "players/1-abc.jpg" {
		t.Errorf("Key = %q; want %q", obj.Key, "players/1-abc.jpg")
	}
	if obj.URL != "/uploads/cricket-images/players/1-abc.jpg" {
		t.Errorf("URL = %q; want %q", obj.URL, "/uploads/cricket-images/players/1-abc.jpg")
	}

	data, err := os.ReadFile(filepath.Join(root, "cricket-images", "players", "1-abc.jpg"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("stored = %q; want %q", data, "jpeg bytes")
	}

	if _, err := s.Put(ctx, "players/1-abc.jpg", strings.NewReader("other"), "image/jpeg"); !errors.Is(err, ErrObjectExists) {
		t.Errorf("second Put error = %v; want ErrObjectExists", err)
	}

	if err := s.Delete(ctx, "players/1-abc.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "players/1-abc.jpg"); err != nil {
		t.Errorf("Delete of missing object: %v", err)
	}
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	s := NewLocalStore(t.TempDir(), "bucket", testutil.TestLogger())

	for _, key := range []string{"../escape.jpg", "a/../../escape.jpg", "/abs.jpg"} {
		if _, err := s.Put(context.Background(), key, strings.NewReader("x"), "image/jpeg"); err == nil {
			t.Errorf("Put(%q) succeeded; want error", key)
		}
	}
}

func TestCloudinaryStore_RequiresCredentials(t *testing.T) {
	if _, err := NewCloudinaryStore(CloudinaryConfig{CloudName: "demo"}, nil); err == nil {
		t.Error("NewCloudinaryStore without key/secret succeeded")
	}
}

func TestCloudinaryStore_KeyMapping(t *testing.T) {
	s, err := NewCloudinaryStore(CloudinaryConfig{
		CloudName: "rebels", APIKey: "key", APISecret: "secret", Bucket: "cricket-images",
	}, testutil.TestLogger())
	if err != nil {
		t.Fatalf("NewCloudinaryStore: %v", err)
	}

	folder, id := s.split("players/1-abc.jpg")
	if folder != "cricket-images/players" || id != "1-abc" {
		t.Errorf("split = %q, %q; want cricket-images/players, 1-abc", folder, id)
	}
	if got := s.PublicURL("players/1-abc.jpg"); got != "https://res.cloudinary.com/rebels/image/upload/cricket-images/players/1-abc.jpg" {
		t.Errorf("PublicURL = %q", got)
	}
}
