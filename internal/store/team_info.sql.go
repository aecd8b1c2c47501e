package store

import (
	"context"
	"database/sql"
	"time"
)

const teamInfoColumns = `id, home_ground, founded_year, training_schedule, team_size, additional_info, created_at, updated_at`

func scanTeamInfo(row rowScanner) (TeamInfo, error) {
	var i TeamInfo
	err := row.Scan(
		&i.ID,
		&i.HomeGround,
		&i.FoundedYear,
		&i.TrainingSchedule,
		&i.TeamSize,
		&i.AdditionalInfo,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanTeamInfoRows(rows *sql.Rows) (TeamInfo, error) { return scanTeamInfo(rows) }

const listTeamInfo = `
SELECT ` + teamInfoColumns + `
FROM team_info
ORDER BY created_at DESC, id DESC
`

// ListTeamInfo returns all rows, newest first. The first row is the current one.
func (q *Queries) ListTeamInfo(ctx context.Context) ([]TeamInfo, error) {
	rows, err := q.db.QueryContext(ctx, listTeamInfo)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanTeamInfoRows)
}

const getTeamInfo = `SELECT ` + teamInfoColumns + ` FROM team_info WHERE id = ?`

func (q *Queries) GetTeamInfo(ctx context.Context, id int64) (TeamInfo, error) {
	return scanTeamInfo(q.db.QueryRowContext(ctx, getTeamInfo, id))
}

const countTeamInfo = `SELECT COUNT(*) FROM team_info`

func (q *Queries) CountTeamInfo(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countTeamInfo).Scan(&count)
	return count, err
}

const createTeamInfo = `
INSERT INTO team_info (home_ground, founded_year, training_schedule, team_size, additional_info, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING ` + teamInfoColumns

type CreateTeamInfoParams struct {
	HomeGround       string
	FoundedYear      string
	TrainingSchedule string
	TeamSize         string
	AdditionalInfo   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (q *Queries) CreateTeamInfo(ctx context.Context, arg CreateTeamInfoParams) (TeamInfo, error) {
	row := q.db.QueryRowContext(ctx, createTeamInfo,
		arg.HomeGround,
		arg.FoundedYear,
		arg.TrainingSchedule,
		arg.TeamSize,
		arg.AdditionalInfo,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanTeamInfo(row)
}

const updateTeamInfo = `
UPDATE team_info SET
	home_ground = ?, founded_year = ?, training_schedule = ?, team_size = ?, additional_info = ?, updated_at = ?
WHERE id = ?
RETURNING ` + teamInfoColumns

type UpdateTeamInfoParams struct {
	HomeGround       string
	FoundedYear      string
	TrainingSchedule string
	TeamSize         string
	AdditionalInfo   string
	UpdatedAt        time.Time
	ID               int64
}

func (q *Queries) UpdateTeamInfo(ctx context.Context, arg UpdateTeamInfoParams) (TeamInfo, error) {
	row := q.db.QueryRowContext(ctx, updateTeamInfo,
		arg.HomeGround,
		arg.FoundedYear,
		arg.TrainingSchedule,
		arg.TeamSize,
		arg.AdditionalInfo,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanTeamInfo(row)
}

const deleteTeamInfo = `DELETE FROM team_info WHERE id = ?`

func (q *Queries) DeleteTeamInfo(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTeamInfo, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
