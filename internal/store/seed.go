// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
)

// SeedAdmin creates the admin account when the admin_users table is empty.
// An existing account is never touched, so a changed password survives restarts.
// The email is stored trimmed and lowercased, the form logins look it up in.
func SeedAdmin(ctx context.Context, db *sql.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("seeding admin: empty email")
	}
	queries := New(db)

	count, err := queries.CountAdminUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting admin users: %w", err)
	}
	if count > 0 {
		slog.Debug("admin user already exists, skipping seed")
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user, err := queries.CreateAdminUser(ctx, CreateAdminUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user", "id", user.ID, "email", user.Email)
	return nil
}

// SeedContent fills empty content tables with the club's starter rows.
func SeedContent(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	queries := New(db).WithTx(tx)
	now := time.Now().UTC()

	statCount, err := queries.CountTeamStats(ctx)
	if err != nil {
		return fmt.Errorf("counting team stats: %w", err)
	}
	if statCount == 0 {
		stats := []CreateTeamStatParams{
			{Label: "Matches", Value: "45", Icon: "Trophy"},
			{Label: "Wins", Value: "32", Icon: "Star"},
			{Label: "Players", Value: "15", Icon: "Users"},
			{Label: "Years", Value: "1", Icon: "Shield"},
		}
		for i, s := range stats {
			s.IsActive = true
			s.SortOrder = int64(i + 1)
			s.CreatedAt, s.UpdatedAt = now, now
			if _, err := queries.CreateTeamStat(ctx, s); err != nil {
				return fmt.Errorf("seeding team stat %q: %w", s.Label, err)
			}
		}
	}

	aboutCount, err := queries.CountAboutContent(ctx)
	if err != nil {
		return fmt.Errorf("counting about content: %w", err)
	}
	if aboutCount == 0 {
		values := []CreateAboutContentParams{
			{Title: "Passion", Icon: "Heart", Content: "We play with heart and dedication, bringing our love for cricket to every match."},
			{Title: "Team Spirit", Icon: "Users", Content: "Unity and camaraderie are the foundation of our success both on and off the field."},
			{Title: "Excellence", Icon: "Target", Content: "We strive for continuous improvement and excellence in all aspects of the game."},
			{Title: "Sportsmanship", Icon: "Award", Content: "We compete with honor, respect our opponents, and uphold the spirit of cricket."},
		}
		for i, v := range values {
			v.SectionType = "values"
			v.IsActive = true
			v.SortOrder = int64(i + 1)
			v.CreatedAt, v.UpdatedAt = now, now
			if _, err := queries.CreateAboutContent(ctx, v); err != nil {
				return fmt.Errorf("seeding value %q: %w", v.Title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	slog.Info("content seed complete", "stats_seeded", statCount == 0, "values_seeded", aboutCount == 0)
	return nil
}
