package store

import (
	"context"
	"database/sql"
	"time"
)

const galleryColumns = `id, title, description, image_url, category, season, is_active, created_at, updated_at`

func scanGalleryImage(row rowScanner) (GalleryImage, error) {
	var i GalleryImage
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.ImageURL,
		&i.Category,
		&i.Season,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanGalleryImageRows(rows *sql.Rows) (GalleryImage, error) { return scanGalleryImage(rows) }

const listActiveGalleryImages = `
SELECT ` + galleryColumns + `
FROM gallery
WHERE is_active = 1
  AND (? = '' OR category = ?)
  AND (? = '' OR season = ?)
ORDER BY created_at ASC, id ASC
`

type ListActiveGalleryImagesParams struct {
	Category string
	Season   string
}

func (q *Queries) ListActiveGalleryImages(ctx context.Context, arg ListActiveGalleryImagesParams) ([]GalleryImage, error) {
	rows, err := q.db.QueryContext(ctx, listActiveGalleryImages,
		arg.Category, arg.Category,
		arg.Season, arg.Season,
	)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanGalleryImageRows)
}

const listGalleryImages = `
SELECT ` + galleryColumns + `
FROM gallery
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListGalleryImages(ctx context.Context) ([]GalleryImage, error) {
	rows, err := q.db.QueryContext(ctx, listGalleryImages)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanGalleryImageRows)
}

const getGalleryImage = `SELECT ` + galleryColumns + ` FROM gallery WHERE id = ?`

func (q *Queries) GetGalleryImage(ctx context.Context, id int64) (GalleryImage, error) {
	return scanGalleryImage(q.db.QueryRowContext(ctx, getGalleryImage, id))
}

const countGalleryImages = `SELECT COUNT(*) FROM gallery`

func (q *Queries) CountGalleryImages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countGalleryImages).Scan(&count)
	return count, err
}

const createGalleryImage = `
INSERT INTO gallery (title, description, image_url, category, season, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + galleryColumns

type CreateGalleryImageParams struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Season      string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateGalleryImage(ctx context.Context, arg CreateGalleryImageParams) (GalleryImage, error) {
	row := q.db.QueryRowContext(ctx, createGalleryImage,
		arg.Title,
		arg.Description,
		arg.ImageURL,
		arg.Category,
		arg.Season,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanGalleryImage(row)
}

const updateGalleryImage = `
UPDATE gallery SET
	title = ?, description = ?, image_url = ?, category = ?, season = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING ` + galleryColumns

type UpdateGalleryImageParams struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Season      string
	IsActive    bool
	UpdatedAt   time.Time
	ID          int64
}

func (q *Queries) UpdateGalleryImage(ctx context.Context, arg UpdateGalleryImageParams) (GalleryImage, error) {
	row := q.db.QueryRowContext(ctx, updateGalleryImage,
		arg.Title,
		arg.Description,
		arg.ImageURL,
		arg.Category,
		arg.Season,
		arg.IsActive,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanGalleryImage(row)
}

const deleteGalleryImage = `DELETE FROM gallery WHERE id = ?`

func (q *Queries) DeleteGalleryImage(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteGalleryImage, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
