package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
)

// testDB opens a migrated database through the runtime driver.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "rebels-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestSeedAdmin(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := SeedAdmin(ctx, db, "admin@frankfurterrebels.de", "admin123"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}

	q := New(db)
	user, err := q.GetAdminUserByEmail(ctx, "admin@frankfurterrebels.de")
	if err != nil {
		t.Fatalf("GetAdminUserByEmail: %v", err)
	}
	if user.PasswordHash == "admin123" {
		t.Fatal("password stored in plain text")
	}
	ok, err := auth.CheckPassword("admin123", user.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("CheckPassword = %v, %v; want true, nil", ok, err)
	}

	// A second seed with a different password must not overwrite the row.
	if err := SeedAdmin(ctx, db, "admin@frankfurterrebels.de", "other-password"); err != nil {
		t.Fatalf("second SeedAdmin: %v", err)
	}
	count, err := q.CountAdminUsers(ctx)
	if err != nil {
		t.Fatalf("CountAdminUsers: %v", err)
	}
	if count != 1 {
		t.Errorf("admin count = %d; want 1", count)
	}
	again, _ := q.GetAdminUserByEmail(ctx, "admin@frankfurterrebels.de")
	if again.PasswordHash != user.PasswordHash {
		t.Error("second seed replaced the stored password")
	}
}

func TestSeedAdmin_NormalizesEmail(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := SeedAdmin(ctx, db, "  Admin@FrankfurterRebels.DE ", "admin123"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}

	user, err := New(db).GetAdminUserByEmail(ctx, "admin@frankfurterrebels.de")
	if err != nil {
		t.Fatalf("GetAdminUserByEmail: %v", err)
	}
	if user.Email != "admin@frankfurterrebels.de" {
		t.Errorf("Email = %q, want lowercased and trimmed", user.Email)
	}
}

func TestSeedAdmin_EmptyEmail(t *testing.T) {
	db := testDB(t)
	if err := SeedAdmin(context.Background(), db, "   ", "admin123"); err == nil {
		t.Fatal("SeedAdmin with blank email succeeded")
	}
}

func TestUpdateAdminUserPassword(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := q.CreateAdminUser(ctx, CreateAdminUserParams{
		Email: "a@b.c", PasswordHash: "old", CreatedAt: created, UpdatedAt: created,
	}); err != nil {
		t.Fatalf("CreateAdminUser: %v", err)
	}

	later := created.Add(48 * time.Hour)
	if err := q.UpdateAdminUserPassword(ctx, UpdateAdminUserPasswordParams{
		PasswordHash: "new", UpdatedAt: later, Email: "a@b.c",
	}); err != nil {
		t.Fatalf("UpdateAdminUserPassword: %v", err)
	}

	user, err := q.GetAdminUserByEmail(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("GetAdminUserByEmail: %v", err)
	}
	if user.PasswordHash != "new" {
		t.Errorf("PasswordHash = %q; want %q", user.PasswordHash, "new")
	}
	if !user.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v; want %v", user.UpdatedAt, later)
	}
}

func TestListActiveSectionsByPage_FiltersInactive(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	rows := []CreateSectionParams{
		{Page: "home", SectionName: "hero", Title: "Hidden hero", IsActive: false, SortOrder: 1},
		{Page: "home", SectionName: "about", Title: "About", IsActive: true, SortOrder: 3},
		{Page: "home", SectionName: "team", Title: "Team", IsActive: true, SortOrder: 2},
		{Page: "about", SectionName: "hero", Title: "About hero", IsActive: true, SortOrder: 1},
	}
	for _, r := range rows {
		r.CreatedAt, r.UpdatedAt = now, now
		if _, err := q.CreateSection(ctx, r); err != nil {
			t.Fatalf("CreateSection: %v", err)
		}
	}

	got, err := q.ListActiveSectionsByPage(ctx, "home")
	if err != nil {
		t.Fatalf("ListActiveSectionsByPage: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d; want 2", len(got))
	}
	if got[0].SectionName != "team" || got[1].SectionName != "about" {
		t.Errorf("order = [%s %s]; want [team about]", got[0].SectionName, got[1].SectionName)
	}
	for _, s := range got {
		if !s.IsActive {
			t.Errorf("inactive section %q returned", s.SectionName)
		}
	}

	all, err := q.ListSections(ctx)
	if err != nil {
		t.Fatalf("ListSections: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("ListSections len = %d; want 4", len(all))
	}
}

func TestSectionUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	s, err := q.CreateSection(ctx, CreateSectionParams{
		Page: "home", SectionName: "hero", Title: "Old", IsActive: true, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}

	later := now.Add(time.Minute)
	updated, err := q.UpdateSection(ctx, UpdateSectionParams{
		ID: s.ID, Page: s.Page, SectionName: s.SectionName, Title: "New", IsActive: true, UpdatedAt: later,
	})
	if err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("Title = %q; want %q", updated.Title, "New")
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v; want %v", updated.UpdatedAt, later)
	}

	if _, err := q.UpdateSection(ctx, UpdateSectionParams{ID: 9999, UpdatedAt: later}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateSection(missing) error = %v; want sql.ErrNoRows", err)
	}

	n, err := q.DeleteSection(ctx, s.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteSection = %d, %v; want 1, nil", n, err)
	}
	if _, err := q.GetSection(ctx, s.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetSection after delete error = %v; want sql.ErrNoRows", err)
	}
}

func TestListPlayers_Filters(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	players := []CreatePlayerParams{
		{Name: "Owner", IsOwner: true, Season: "2025"},
		{Name: "Batter", Season: "2024"},
		{Name: "Captain", IsCaptain: true, Season: "2025"},
		{Name: "Bowler", Season: "2025"},
	}
	for i, p := range players {
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		p.UpdatedAt = p.CreatedAt
		if _, err := q.CreatePlayer(ctx, p); err != nil {
			t.Fatalf("CreatePlayer: %v", err)
		}
	}

	tests := []struct {
		name string
		arg  ListPlayersParams
		want []string
	}{
		{"all", ListPlayersParams{}, []string{"Owner", "Batter", "Captain", "Bowler"}},
		{"featured", ListPlayersParams{FeaturedOnly: true}, []string{"Owner", "Captain"}},
		{"season", ListPlayersParams{Season: "2025"}, []string{"Owner", "Captain", "Bowler"}},
		{"limit", ListPlayersParams{Limit: 2}, []string{"Owner", "Batter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.ListPlayers(ctx, tt.arg)
			if err != nil {
				t.Fatalf("ListPlayers: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d; want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Name != tt.want[i] {
					t.Errorf("[%d] = %q; want %q", i, got[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestListActiveGalleryImages(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	for _, g := range []CreateGalleryImageParams{
		{Title: "Nets", ImageURL: "/uploads/a.jpg", Category: "Training", IsActive: true},
		{Title: "Final", ImageURL: "/uploads/b.jpg", Category: "Matches", Season: "2025", IsActive: true},
		{Title: "Draft", ImageURL: "/uploads/c.jpg", Category: "Matches", IsActive: false},
	} {
		g.CreatedAt, g.UpdatedAt = now, now
		if _, err := q.CreateGalleryImage(ctx, g); err != nil {
			t.Fatalf("CreateGalleryImage: %v", err)
		}
	}

	active, err := q.ListActiveGalleryImages(ctx, ListActiveGalleryImagesParams{})
	if err != nil {
		t.Fatalf("ListActiveGalleryImages: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("active len = %d; want 2", len(active))
	}

	matches, err := q.ListActiveGalleryImages(ctx, ListActiveGalleryImagesParams{Category: "Matches"})
	if err != nil {
		t.Fatalf("ListActiveGalleryImages(category): %v", err)
	}
	if len(matches) != 1 || matches[0].Title != "Final" {
		t.Errorf("category filter = %+v; want only Final", matches)
	}
}

func TestSeedContent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := SeedContent(ctx, db); err != nil {
		t.Fatalf("SeedContent: %v", err)
	}
	if err := SeedContent(ctx, db); err != nil {
		t.Fatalf("second SeedContent: %v", err)
	}

	q := New(db)
	stats, err := q.ListActiveTeamStats(ctx)
	if err != nil {
		t.Fatalf("ListActiveTeamStats: %v", err)
	}
	if len(stats) != 4 {
		t.Errorf("stats = %d; want 4", len(stats))
	}
	values, err := q.ListActiveAboutContent(ctx, "values")
	if err != nil {
		t.Fatalf("ListActiveAboutContent: %v", err)
	}
	if len(values) != 4 {
		t.Errorf("values = %d; want 4", len(values))
	}
}

func TestEvents(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)
	base := time.Now().UTC()

	for i, msg := range []string{"first", "second", "third"} {
		if err := q.CreateEvent(ctx, CreateEventParams{
			Level: "info", Category: "auth", Message: msg, Metadata: "{}",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	got, err := q.ListRecentEvents(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(got) != 2 || got[0].Message != "third" || got[1].Message != "second" {
		t.Errorf("recent events = %+v; want [third second]", got)
	}
}

func TestDeleteEventsBefore(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, age := range []time.Duration{100 * 24 * time.Hour, 95 * 24 * time.Hour, time.Hour} {
		if err := q.CreateEvent(ctx, CreateEventParams{
			Level: "info", Category: "auth", Message: "login", Metadata: "{}",
			CreatedAt: now.Add(-age),
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	n, err := q.DeleteEventsBefore(ctx, now.Add(-90*24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteEventsBefore: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d; want 2", n)
	}
	left, err := q.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(left) != 1 {
		t.Errorf("remaining = %d; want 1", len(left))
	}
}
