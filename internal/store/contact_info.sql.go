package store

import (
	"context"
	"database/sql"
	"time"
)

const contactInfoColumns = `id, type, label, value, icon, link, is_active, sort_order, created_at, updated_at`

func scanContactInfo(row rowScanner) (ContactInfo, error) {
	var i ContactInfo
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.Label,
		&i.Value,
		&i.Icon,
		&i.Link,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanContactInfoRows(rows *sql.Rows) (ContactInfo, error) { return scanContactInfo(rows) }

const listActiveContactInfo = `
SELECT ` + contactInfoColumns + `
FROM contact_info
WHERE is_active = 1 AND (? = '' OR type = ?)
ORDER BY sort_order ASC, id ASC
`

// ListActiveContactInfo returns active rows, optionally narrowed to one type.
func (q *Queries) ListActiveContactInfo(ctx context.Context, infoType string) ([]ContactInfo, error) {
	rows, err := q.db.QueryContext(ctx, listActiveContactInfo, infoType, infoType)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanContactInfoRows)
}

const listContactInfo = `
SELECT ` + contactInfoColumns + `
FROM contact_info
ORDER BY type ASC, sort_order ASC, id ASC
`

func (q *Queries) ListContactInfo(ctx context.Context) ([]ContactInfo, error) {
	rows, err := q.db.QueryContext(ctx, listContactInfo)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanContactInfoRows)
}

const getContactInfo = `SELECT ` + contactInfoColumns + ` FROM contact_info WHERE id = ?`

func (q *Queries) GetContactInfo(ctx context.Context, id int64) (ContactInfo, error) {
	return scanContactInfo(q.db.QueryRowContext(ctx, getContactInfo, id))
}

const countContactInfo = `SELECT COUNT(*) FROM contact_info`

func (q *Queries) CountContactInfo(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countContactInfo).Scan(&count)
	return count, err
}

const createContactInfo = `
INSERT INTO contact_info (type, label, value, icon, link, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + contactInfoColumns

type CreateContactInfoParams struct {
	Type      string
	Label     string
	Value     string
	Icon      string
	Link      string
	IsActive  bool
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateContactInfo(ctx context.Context, arg CreateContactInfoParams) (ContactInfo, error) {
	row := q.db.QueryRowContext(ctx, createContactInfo,
		arg.Type,
		arg.Label,
		arg.Value,
		arg.Icon,
		arg.Link,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanContactInfo(row)
}

const updateContactInfo = `
UPDATE contact_info SET
	type = ?, label = ?, value = ?, icon = ?, link = ?, is_active = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING ` + contactInfoColumns

type UpdateContactInfoParams struct {
	Type      string
	Label     string
	Value     string
	Icon      string
	Link      string
	IsActive  bool
	SortOrder int64
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateContactInfo(ctx context.Context, arg UpdateContactInfoParams) (ContactInfo, error) {
	row := q.db.QueryRowContext(ctx, updateContactInfo,
		arg.Type,
		arg.Label,
		arg.Value,
		arg.Icon,
		arg.Link,
		arg.IsActive,
		arg.SortOrder,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanContactInfo(row)
}

const deleteContactInfo = `DELETE FROM contact_info WHERE id = ?`

func (q *Queries) DeleteContactInfo(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteContactInfo, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
