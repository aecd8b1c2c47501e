package store

import (
	"context"
	"database/sql"
	"time"
)

const sectionColumns = `id, page, section_name, title, subtitle, content, image_url,
	button_text, button_link, button_text_secondary, button_link_secondary,
	is_active, sort_order, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSection(row rowScanner) (Section, error) {
	var i Section
	err := row.Scan(
		&i.ID,
		&i.Page,
		&i.SectionName,
		&i.Title,
		&i.Subtitle,
		&i.Content,
		&i.ImageURL,
		&i.ButtonText,
		&i.ButtonLink,
		&i.ButtonTextSecondary,
		&i.ButtonLinkSecondary,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanSectionRows(rows *sql.Rows) (Section, error) { return scanSection(rows) }

const listActiveSectionsByPage = `
SELECT ` + sectionColumns + `
FROM sections
WHERE page = ? AND is_active = 1
ORDER BY sort_order ASC, id ASC
`

// ListActiveSectionsByPage returns the active sections of a page in render order.
func (q *Queries) ListActiveSectionsByPage(ctx context.Context, page string) ([]Section, error) {
	rows, err := q.db.QueryContext(ctx, listActiveSectionsByPage, page)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanSectionRows)
}

const listActiveSections = `
SELECT ` + sectionColumns + `
FROM sections
WHERE is_active = 1
ORDER BY page ASC, sort_order ASC, id ASC
`

func (q *Queries) ListActiveSections(ctx context.Context) ([]Section, error) {
	rows, err := q.db.QueryContext(ctx, listActiveSections)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanSectionRows)
}

const listSections = `
SELECT ` + sectionColumns + `
FROM sections
ORDER BY page ASC, sort_order ASC, id ASC
`

func (q *Queries) ListSections(ctx context.Context) ([]Section, error) {
	rows, err := q.db.QueryContext(ctx, listSections)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanSectionRows)
}

const getSection = `SELECT ` + sectionColumns + ` FROM sections WHERE id = ?`

func (q *Queries) GetSection(ctx context.Context, id int64) (Section, error) {
	return scanSection(q.db.QueryRowContext(ctx, getSection, id))
}

const countSections = `SELECT COUNT(*) FROM sections`

func (q *Queries) CountSections(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countSections).Scan(&count)
	return count, err
}

const createSection = `
INSERT INTO sections (
	page, section_name, title, subtitle, content, image_url,
	button_text, button_link, button_text_secondary, button_link_secondary,
	is_active, sort_order, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + sectionColumns

type CreateSectionParams struct {
	Page                string
	SectionName         string
	Title               string
	Subtitle            string
	Content             string
	ImageURL            string
	ButtonText          string
	ButtonLink          string
	ButtonTextSecondary string
	ButtonLinkSecondary string
	IsActive            bool
	SortOrder           int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (q *Queries) CreateSection(ctx context.Context, arg CreateSectionParams) (Section, error) {
	row := q.db.QueryRowContext(ctx, createSection,
		arg.Page,
		arg.SectionName,
		arg.Title,
		arg.Subtitle,
		arg.Content,
		arg.ImageURL,
		arg.ButtonText,
		arg.ButtonLink,
		arg.ButtonTextSecondary,
		arg.ButtonLinkSecondary,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanSection(row)
}

const updateSection = `
UPDATE sections SET
	page = ?, section_name = ?, title = ?, subtitle = ?, content = ?, image_url = ?,
	button_text = ?, button_link = ?, button_text_secondary = ?, button_link_secondary = ?,
	is_active = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING ` + sectionColumns

type UpdateSectionParams struct {
	Page                string
	SectionName         string
	Title               string
	Subtitle            string
	Content             string
	ImageURL            string
	ButtonText          string
	ButtonLink          string
	ButtonTextSecondary string
	ButtonLinkSecondary string
	IsActive            bool
	SortOrder           int64
	UpdatedAt           time.Time
	ID                  int64
}

func (q *Queries) UpdateSection(ctx context.Context, arg UpdateSectionParams) (Section, error) {
	row := q.db.QueryRowContext(ctx, updateSection,
		arg.Page,
		arg.SectionName,
		arg.Title,
		arg.Subtitle,
		arg.Content,
		arg.ImageURL,
		arg.ButtonText,
		arg.ButtonLink,
		arg.ButtonTextSecondary,
		arg.ButtonLinkSecondary,
		arg.IsActive,
		arg.SortOrder,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanSection(row)
}

const deleteSection = `DELETE FROM sections WHERE id = ?`

func (q *Queries) DeleteSection(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSection, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
