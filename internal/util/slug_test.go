package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Match Day", "match-day"},
		{"special characters", "Finals, 2025!", "finals-2025"},
		{"accents", "Café résumé", "cafe-resume"},
		{"german umlauts", "Über München", "uber-munchen"},
		{"sharp s", "Straße", "strasse"},
		{"multiple spaces", "Net   Session", "net-session"},
		{"underscores and dots", "team_photos.2025", "team-photos-2025"},
		{"path separators", "../../etc", "etc"},
		{"leading and trailing", "  gallery  ", "gallery"},
		{"cyrillic", "Крикет", "kriket"},
		{"only symbols", "!@#$%", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugOr(t *testing.T) {
	if got := SlugOr("", "uploads"); got != "uploads" {
		t.Errorf("SlugOr(empty) = %q; want %q", got, "uploads")
	}
	if got := SlugOr("***", "uploads"); got != "uploads" {
		t.Errorf("SlugOr(symbols) = %q; want %q", got, "uploads")
	}
	if got := SlugOr("Players", "uploads"); got != "players" {
		t.Errorf("SlugOr(Players) = %q; want %q", got, "players")
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"gallery", true},
		{"team-2025", true},
		{"", false},
		{"-lead", false},
		{"trail-", false},
		{"double--hyphen", false},
		{"Upper", false},
		{"with space", false},
	}

	for _, tt := range tests {
		if got := IsValidSlug(tt.input); got != tt.want {
			t.Errorf("IsValidSlug(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}
