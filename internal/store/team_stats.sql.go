package store

import (
	"context"
	"database/sql"
	"time"
)

const teamStatColumns = `id, label, value, icon, description, is_active, sort_order, created_at, updated_at`

func scanTeamStat(row rowScanner) (TeamStat, error) {
	var i TeamStat
	err := row.Scan(
		&i.ID,
		&i.Label,
		&i.Value,
		&i.Icon,
		&i.Description,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanTeamStatRows(rows *sql.Rows) (TeamStat, error) { return scanTeamStat(rows) }

const listActiveTeamStats = `
SELECT ` + teamStatColumns + `
FROM team_stats
WHERE is_active = 1
ORDER BY sort_order ASC, id ASC
`

func (q *Queries) ListActiveTeamStats(ctx context.Context) ([]TeamStat, error) {
	rows, err := q.db.QueryContext(ctx, listActiveTeamStats)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanTeamStatRows)
}

const listTeamStats = `
SELECT ` + teamStatColumns + `
FROM team_stats
ORDER BY sort_order ASC, id ASC
`

func (q *Queries) ListTeamStats(ctx context.Context) ([]TeamStat, error) {
	rows, err := q.db.QueryContext(ctx, listTeamStats)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanTeamStatRows)
}

const getTeamStat = `SELECT ` + teamStatColumns + ` FROM team_stats WHERE id = ?`

func (q *Queries) GetTeamStat(ctx context.Context, id int64) (TeamStat, error) {
	return scanTeamStat(q.db.QueryRowContext(ctx, getTeamStat, id))
}

const countTeamStats = `SELECT COUNT(*) FROM team_stats`

func (q *Queries) CountTeamStats(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countTeamStats).Scan(&count)
	return count, err
}

const createTeamStat = `
INSERT INTO team_stats (label, value, icon, description, is_active, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + teamStatColumns

type CreateTeamStatParams struct {
	Label       string
	Value       string
	Icon        string
	Description string
	IsActive    bool
	SortOrder   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateTeamStat(ctx context.Context, arg CreateTeamStatParams) (TeamStat, error) {
	row := q.db.QueryRowContext(ctx, createTeamStat,
		arg.Label,
		arg.Value,
		arg.Icon,
		arg.Description,
		arg.IsActive,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanTeamStat(row)
}

const updateTeamStat = `
UPDATE team_stats SET
	label = ?, value = ?, icon = ?, description = ?, is_active = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING ` + teamStatColumns

type UpdateTeamStatParams struct {
	Label       string
	Value       string
	Icon        string
	Description string
	IsActive    bool
	SortOrder   int64
	UpdatedAt   time.Time
	ID          int64
}

func (q *Queries) UpdateTeamStat(ctx context.Context, arg UpdateTeamStatParams) (TeamStat, error) {
	row := q.db.QueryRowContext(ctx, updateTeamStat,
		arg.Label,
		arg.Value,
		arg.Icon,
		arg.Description,
		arg.IsActive,
		arg.SortOrder,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanTeamStat(row)
}

const deleteTeamStat = `DELETE FROM team_stats WHERE id = ?`

func (q *Queries) DeleteTeamStat(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTeamStat, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
