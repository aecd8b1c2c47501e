// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging checks uploaded image bytes and straightens EXIF-rotated photos.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// Accepted image MIME types.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// DefaultMaxPixels bounds width*height before a full decode is attempted.
const DefaultMaxPixels = 50_000_000

var (
	// ErrNotImage is returned when the bytes do not decode as a supported image.
	ErrNotImage = errors.New("not a supported image")

	// ErrTooManyPixels is returned for images larger than the pixel budget.
	ErrTooManyPixels = errors.New("image dimensions too large")
)

// Info describes a decoded image.
type Info struct {
	Format   string // jpeg, png, gif, webp
	MimeType string
	Width    int
	Height   int
	// Rotated is set when Normalize re-encoded the image upright.
	Rotated bool
}

// Processor inspects and normalises uploaded images in memory.
type Processor struct {
	MaxPixels int
	Quality   int
}

// NewProcessor creates a processor with default limits.
func NewProcessor() *Processor {
	return &Processor{
		MaxPixels: DefaultMaxPixels,
		Quality:   92,
	}
}

// IsSupportedType reports whether mimeType is one of the accepted image types.
func IsSupportedType(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// DetectMimeType sniffs the MIME type of data.
func DetectMimeType(data []byte) string {
	contentType := http.DetectContentType(data)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return contentType
}

// ExtensionFor returns the file extension (without dot) used for mimeType.
func ExtensionFor(mimeType string) string {
	switch mimeType {
	case MimeTypeJPEG:
		return "jpg"
	case MimeTypePNG:
		return "png"
	case MimeTypeGIF:
		return "gif"
	case MimeTypeWebP:
		return "webp"
	default:
		return "bin"
	}
}

// Inspect decodes data fully and reports its format and dimensions.
func (p *Processor) Inspect(data []byte) (Info, error) {
	_, info, err := p.decode(data)
	return info, err
}

// Normalize validates data as an image and returns the bytes to store.
// JPEGs carrying an EXIF orientation other than "normal" are re-encoded
// upright; every other image is returned unchanged so animated GIFs and
// WebP files keep their original encoding.
func (p *Processor) Normalize(data []byte) ([]byte, Info, error) {
	img, info, err := p.decode(data)
	if err != nil {
		return nil, info, err
	}

	if info.Format != "jpeg" {
		return data, info, nil
	}

	orientation := readExifOrientation(bytes.NewReader(data))
	if orientation == 1 {
		return data, info, nil
	}

	upright := applyOrientation(img, orientation)
	out, err := encodeImage(upright, info.Format, p.Quality)
	if err != nil {
		return nil, info, fmt.Errorf("encoding upright image: %w", err)
	}

	b := upright.Bounds()
	info.Width, info.Height = b.Dx(), b.Dy()
	info.Rotated = true
	return out, info, nil
}

func (p *Processor) decode(data []byte) (image.Image, Info, error) {
	var info Info

	format := detectFormat(data)
	if format == "" {
		return nil, info, ErrNotImage
	}
	info.Format = format
	info.MimeType = formatToMimeType(format)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, info, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if p.MaxPixels > 0 && cfg.Width*cfg.Height > p.MaxPixels {
		return nil, info, ErrTooManyPixels
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, info, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	b := img.Bounds()
	info.Width, info.Height = b.Dx(), b.Dy()
	return img, info, nil
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

// applyOrientation applies an EXIF orientation transformation.
// 1 normal, 2 flip H, 3 rotate 180, 4 flip V, 5 transpose,
// 6 rotate 90 CW, 7 transverse, 8 rotate 90 CCW.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func encodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// detectFormat detects the image format from raw bytes.
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	// TIFF goes through a decoder with known issues; refuse it outright.
	if strings.Contains(contentType, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}

func formatToMimeType(format string) string {
	switch format {
	case "jpeg":
		return MimeTypeJPEG
	case "png":
		return MimeTypePNG
	case "gif":
		return MimeTypeGIF
	case "webp":
		return MimeTypeWebP
	default:
		return "application/octet-stream"
	}
}
