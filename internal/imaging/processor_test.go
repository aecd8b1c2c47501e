// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

// createTestImage creates a simple test image with the given dimensions.
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodeTest(t *testing.T, format string, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatalf("encoding %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestIsSupportedType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{MimeTypeJPEG, true},
		{MimeTypePNG, true},
		{MimeTypeGIF, true},
		{MimeTypeWebP, true},
		{"text/plain", false},
		{"image/svg+xml", false},
		{"image/tiff", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := IsSupportedType(tt.mimeType); got != tt.want {
				t.Errorf("IsSupportedType(%q) = %v; want %v", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	p := NewProcessor()

	for _, format := range []string{"jpeg", "png", "gif"} {
		t.Run(format, func(t *testing.T) {
			data := encodeTest(t, format, createTestImage(40, 20))
			info, err := p.Inspect(data)
			if err != nil {
				t.Fatalf("Inspect: %v", err)
			}
			if info.Format != format {
				t.Errorf("Format = %q; want %q", info.Format, format)
			}
			if info.Width != 40 || info.Height != 20 {
				t.Errorf("size = %dx%d; want 40x20", info.Width, info.Height)
			}
		})
	}
}

func TestInspect_RejectsNonImages(t *testing.T) {
	p := NewProcessor()

	tests := map[string][]byte{
		"text":          []byte("just some text, definitely not pixels"),
		"empty":         nil,
		"truncated png": encodeTest(t, "png", createTestImage(10, 10))[:30],
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Inspect(data); !errors.Is(err, ErrNotImage) {
				t.Errorf("Inspect error = %v; want ErrNotImage", err)
			}
		})
	}
}

func TestInspect_PixelBudget(t *testing.T) {
	p := &Processor{MaxPixels: 100, Quality: 90}
	data := encodeTest(t, "png", createTestImage(20, 20))

	if _, err := p.Inspect(data); !errors.Is(err, ErrTooManyPixels) {
		t.Errorf("Inspect error = %v; want ErrTooManyPixels", err)
	}
}

func TestNormalize_KeepsBytesWithoutOrientation(t *testing.T) {
	p := NewProcessor()
	data := encodeTest(t, "png", createTestImage(8, 4))

	out, info, err := p.Normalize(data)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("Normalize changed bytes of an image without EXIF orientation")
	}
	if info.Rotated {
		t.Error("Rotated = true; want false")
	}
}

func TestApplyOrientation(t *testing.T) {
	img := createTestImage(30, 10)

	tests := []struct {
		orientation int
		wantW       int
		wantH       int
	}{
		{1, 30, 10},
		{2, 30, 10},
		{3, 30, 10},
		{4, 30, 10},
		{5, 10, 30},
		{6, 10, 30},
		{7, 10, 30},
		{8, 10, 30},
	}
	for _, tt := range tests {
		b := applyOrientation(img, tt.orientation).Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("orientation %d: size = %dx%d; want %dx%d", tt.orientation, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	tests := map[string]string{
		MimeTypeJPEG: "jpg",
		MimeTypePNG:  "png",
		MimeTypeGIF:  "gif",
		MimeTypeWebP: "webp",
		"text/plain": "bin",
	}
	for mime, want := range tests {
		if got := ExtensionFor(mime); got != want {
			t.Errorf("ExtensionFor(%q) = %q; want %q", mime, got, want)
		}
	}
}

func TestDetectMimeType(t *testing.T) {
	if got := DetectMimeType(encodeTest(t, "png", createTestImage(2, 2))); got != MimeTypePNG {
		t.Errorf("DetectMimeType(png) = %q; want %q", got, MimeTypePNG)
	}
	if got := DetectMimeType([]byte("hello")); got != "text/plain" {
		t.Errorf("DetectMimeType(text) = %q; want text/plain", got)
	}
}
