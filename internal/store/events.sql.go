package store

import (
	"context"
	"database/sql"
	"time"
)

const eventColumns = `id, level, category, message, actor_email, ip_address, user_agent, request_url, metadata, created_at`

func scanEventRows(rows *sql.Rows) (Event, error) {
	var i Event
	err := rows.Scan(
		&i.ID,
		&i.Level,
		&i.Category,
		&i.Message,
		&i.ActorEmail,
		&i.IpAddress,
		&i.UserAgent,
		&i.RequestUrl,
		&i.Metadata,
		&i.CreatedAt,
	)
	return i, err
}

const createEvent = `
INSERT INTO events (level, category, message, actor_email, ip_address, user_agent, request_url, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateEventParams struct {
	Level      string
	Category   string
	Message    string
	ActorEmail string
	IpAddress  string
	UserAgent  string
	RequestUrl string
	Metadata   string
	CreatedAt  time.Time
}

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx, createEvent,
		arg.Level,
		arg.Category,
		arg.Message,
		arg.ActorEmail,
		arg.IpAddress,
		arg.UserAgent,
		arg.RequestUrl,
		arg.Metadata,
		arg.CreatedAt,
	)
	return err
}

const listRecentEvents = `
SELECT ` + eventColumns + `
FROM events
ORDER BY created_at DESC, id DESC
LIMIT ?
`

func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listRecentEvents, limit)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanEventRows)
}

const deleteEventsBefore = `
DELETE FROM events
WHERE created_at < ?
`

func (q *Queries) DeleteEventsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteEventsBefore, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
