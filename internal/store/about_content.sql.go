package store

import (
	"context"
	"database/sql"
	"time"
)

const aboutContentColumns = `id, section_type, title, content, image_url, icon,
	is_active, sort_order, created_at, updated_at`

func scanAboutContent(row rowScanner) (AboutContent, error) {
	var i AboutContent
	err := row.Scan(
		&i.ID,
		&i.SectionType,
		&i.Title,
		&i.Content,
		&i.ImageURL,
		&i.Icon,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanAboutContentRows(rows *sql.Rows) (AboutContent, error) { return scanAboutContent(rows) }

const listActiveAboutContent = `
SELECT ` + aboutContentColumns + `
FROM about_content
WHERE is_active = 1 AND (? = '' OR section_type = ?)
ORDER BY sort_order ASC, id ASC
`

// ListActiveAboutContent returns active rows, optionally narrowed to one section type.
func (q *Queries) ListActiveAboutContent(ctx context.Context, sectionType string) ([]AboutContent, error) {
	rows, err := q.db.QueryContext(ctx, listActiveAboutContent, sectionType, sectionType)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanAboutContentRows)
}

const listAboutContent = `
SELECT ` + aboutContentColumns + `
FROM about_content
ORDER BY section_type ASC, sort_order ASC, id ASC
`

func (q *Queries) ListAboutContent(ctx context.Context) ([]AboutContent, error) {
	rows, err := q.db.QueryContext(ctx, listAboutContent)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanAboutContentRows)
}

const getAboutContent = `SELECT ` + aboutContentColumns + ` FROM about_content WHERE id = ?`

func (q *Queries) GetAboutContent(ctx context.Context, id int64) (AboutContent, error) {
	return scanAboutContent(q.db.QueryRowContext(ctx, getAboutContent, id))
}

const countAboutContent = `SELECT COUNT(*) FROM about_content`

func (q *Queries) CountAboutContent(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countAboutContent).Scan(&count)
	return count, err
}

const createAboutContent = `
INSERT INTO about_content (
	section_type, title, content, image_url, icon, is_active, sort_order, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + aboutContentColumns

type CreateAboutContentParams struct {
	SectionType string
	Title       string
	Content     string
	ImageURL    string
	Icon        string
	IsActive    bool
	SortOrder   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateAboutContent(ctx context.Context, arg CreateAboutContentParams) (AboutContent, error) {
	row := q.db.QueryRowContext(ctx, createAboutContent,
		arg.SectionType,
		arg.Title,
		arg.Content,
		arg.ImageURL,
		arg.Icon,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanAboutContent(row)
}

const updateAboutContent = `
UPDATE about_content SET
	section_type = ?, title = ?, content = ?, image_url = ?, icon = ?,
	is_active = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING ` + aboutContentColumns

type UpdateAboutContentParams struct {
	SectionType string
	Title       string
	Content     string
	ImageURL    string
	Icon        string
	IsActive    bool
	SortOrder   int64
	UpdatedAt   time.Time
	ID          int64
}

func (q *Queries) UpdateAboutContent(ctx context.Context, arg UpdateAboutContentParams) (AboutContent, error) {
	row := q.db.QueryRowContext(ctx, updateAboutContent,
		arg.SectionType,
		arg.Title,
		arg.Content,
		arg.ImageURL,
		arg.Icon,
		arg.IsActive,
		arg.SortOrder,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanAboutContent(row)
}

const deleteAboutContent = `DELETE FROM about_content WHERE id = ?`

func (q *Queries) DeleteAboutContent(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAboutContent, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
