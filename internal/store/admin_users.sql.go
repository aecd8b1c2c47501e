package store

import (
	"context"
	"time"
)

const countAdminUsers = `SELECT COUNT(*) FROM admin_users`

func (q *Queries) CountAdminUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAdminUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createAdminUser = `
INSERT INTO admin_users (email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id, email, password_hash, created_at, updated_at
`

type CreateAdminUserParams struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (q *Queries) CreateAdminUser(ctx context.Context, arg CreateAdminUserParams) (AdminUser, error) {
	row := q.db.QueryRowContext(ctx, createAdminUser,
		arg.Email,
		arg.PasswordHash,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i AdminUser
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getAdminUserByEmail = `
SELECT id, email, password_hash, created_at, updated_at
FROM admin_users
WHERE email = ?
`

func (q *Queries) GetAdminUserByEmail(ctx context.Context, email string) (AdminUser, error) {
	row := q.db.QueryRowContext(ctx, getAdminUserByEmail, email)
	var i AdminUser
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateAdminUserPassword = `
UPDATE admin_users SET password_hash = ?, updated_at = ?
WHERE email = ?
`

type UpdateAdminUserPasswordParams struct {
	PasswordHash string
	UpdatedAt    time.Time
	Email        string
}

func (q *Queries) UpdateAdminUserPassword(ctx context.Context, arg UpdateAdminUserPasswordParams) error {
	_, err := q.db.ExecContext(ctx, updateAdminUserPassword, arg.PasswordHash, arg.UpdatedAt, arg.Email)
	return err
}
