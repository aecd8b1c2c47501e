package store

import (
	"context"
	"database/sql"
	"time"
)

const playerColumns = `id, name, role, image_url, experience, description,
	is_owner, owner_title, is_captain, is_management, management_role,
	matches, runs, wickets, season, created_at, updated_at`

func scanPlayer(row rowScanner) (Player, error) {
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Role,
		&i.ImageURL,
		&i.Experience,
		&i.Description,
		&i.IsOwner,
		&i.OwnerTitle,
		&i.IsCaptain,
		&i.IsManagement,
		&i.ManagementRole,
		&i.Matches,
		&i.Runs,
		&i.Wickets,
		&i.Season,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanPlayerRows(rows *sql.Rows) (Player, error) { return scanPlayer(rows) }

const listPlayers = `
SELECT ` + playerColumns + `
FROM players
WHERE (? = 0 OR is_owner = 1 OR is_captain = 1)
  AND (? = '' OR season = ?)
ORDER BY created_at ASC, id ASC
LIMIT ?
`

type ListPlayersParams struct {
	FeaturedOnly bool
	Season       string
	// Limit <= 0 means no limit.
	Limit int64
}

// ListPlayers returns players in creation order. Featured players are owners or captains.
func (q *Queries) ListPlayers(ctx context.Context, arg ListPlayersParams) ([]Player, error) {
	limit := arg.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := q.db.QueryContext(ctx, listPlayers, arg.FeaturedOnly, arg.Season, arg.Season, limit)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanPlayerRows)
}

const getPlayer = `SELECT ` + playerColumns + ` FROM players WHERE id = ?`

func (q *Queries) GetPlayer(ctx context.Context, id int64) (Player, error) {
	return scanPlayer(q.db.QueryRowContext(ctx, getPlayer, id))
}

const countPlayers = `SELECT COUNT(*) FROM players`

func (q *Queries) CountPlayers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPlayers).Scan(&count)
	return count, err
}

const createPlayer = `
INSERT INTO players (
	name, role, image_url, experience, description,
	is_owner, owner_title, is_captain, is_management, management_role,
	matches, runs, wickets, season, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + playerColumns

type CreatePlayerParams struct {
	Name           string
	Role           string
	ImageURL       string
	Experience     string
	Description    string
	IsOwner        bool
	OwnerTitle     string
	IsCaptain      bool
	IsManagement   bool
	ManagementRole string
	Matches        int64
	Runs           int64
	Wickets        int64
	Season         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, createPlayer,
		arg.Name,
		arg.Role,
		arg.ImageURL,
		arg.Experience,
		arg.Description,
		arg.IsOwner,
		arg.OwnerTitle,
		arg.IsCaptain,
		arg.IsManagement,
		arg.ManagementRole,
		arg.Matches,
		arg.Runs,
		arg.Wickets,
		arg.Season,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanPlayer(row)
}

const updatePlayer = `
UPDATE players SET
	name = ?, role = ?, image_url = ?, experience = ?, description = ?,
	is_owner = ?, owner_title = ?, is_captain = ?, is_management = ?, management_role = ?,
	matches = ?, runs = ?, wickets = ?, season = ?, updated_at = ?
WHERE id = ?
RETURNING ` + playerColumns

type UpdatePlayerParams struct {
	Name           string
	Role           string
	ImageURL       string
	Experience     string
	Description    string
	IsOwner        bool
	OwnerTitle     string
	IsCaptain      bool
	IsManagement   bool
	ManagementRole string
	Matches        int64
	Runs           int64
	Wickets        int64
	Season         string
	UpdatedAt      time.Time
	ID             int64
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, updatePlayer,
		arg.Name,
		arg.Role,
		arg.ImageURL,
		arg.Experience,
		arg.Description,
		arg.IsOwner,
		arg.OwnerTitle,
		arg.IsCaptain,
		arg.IsManagement,
		arg.ManagementRole,
		arg.Matches,
		arg.Runs,
		arg.Wickets,
		arg.Season,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanPlayer(row)
}

const deletePlayer = `DELETE FROM players WHERE id = ?`

func (q *Queries) DeletePlayer(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePlayer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
