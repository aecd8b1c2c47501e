package auth

import (
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret-key-32-bytes-long!!!")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSessionCodec_IssueThenValidate(t *testing.T) {
	codec := NewSessionCodec(testSecret)

	for _, email := range []string{"admin@frankfurterrebels.de", "a@b.c", "with:colon@example.com"} {
		token, err := codec.Issue(email)
		if err != nil {
			t.Fatalf("Issue(%q) error: %v", email, err)
		}
		if !codec.Validate(token) {
			t.Errorf("Validate(Issue(%q)) = false; want true", email)
		}
		got, err := codec.Parse(token)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got != email {
			t.Errorf("Parse() = %q; want %q", got, email)
		}
	}
}

func TestSessionCodec_Issue_EmptyEmail(t *testing.T) {
	if _, err := NewSessionCodec(testSecret).Issue(""); err == nil {
		t.Error("Issue(\"\") error = nil; want error")
	}
}

func TestSessionCodec_Age(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := NewSessionCodec(testSecret).WithClock(fixedClock(issued))

	token, err := codec.Issue("admin@frankfurterrebels.de")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name  string
		after time.Duration
		want  bool
	}{
		{"fresh", 0, true},
		{"one hour", time.Hour, true},
		{"just under a day", 24*time.Hour - time.Second, true},
		{"exactly a day", 24 * time.Hour, false},
		{"older than a day", 25 * time.Hour, false},
		{"issued in the future", -time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			later := codec.WithClock(fixedClock(issued.Add(tt.after)))
			if got := later.Validate(token); got != tt.want {
				t.Errorf("Validate() after %v = %v; want %v", tt.after, got, tt.want)
			}
		})
	}
}

func TestSessionCodec_Malformed(t *testing.T) {
	codec := NewSessionCodec(testSecret)
	legacy := base64.StdEncoding.EncodeToString([]byte("admin@frankfurterrebels.de:" + "1735732800000"))

	for _, token := range []string{
		"",
		"not-a-token",
		"%%%%",
		legacy,
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0",
		"eyJhbGciOiJIUzI1NiJ9..",
	} {
		if codec.Validate(token) {
			t.Errorf("Validate(%q) = true; want false", token)
		}
	}
}

func TestSessionCodec_WrongSecret(t *testing.T) {
	token, err := NewSessionCodec([]byte("another-secret-key-32-bytes-long")).Issue("admin@frankfurterrebels.de")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if NewSessionCodec(testSecret).Validate(token) {
		t.Error("token signed with another secret validated")
	}
}

func TestSessionCodec_RejectsUnsignedToken(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   "admin@frankfurterrebels.de",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}
	if NewSessionCodec(testSecret).Validate(token) {
		t.Error("unsigned token validated")
	}
}

func TestSessionCookies(t *testing.T) {
	c := NewSessionCookie("tok", true)
	if c.Name != SessionCookieName || c.Value != "tok" {
		t.Errorf("cookie = %s=%s; want %s=tok", c.Name, c.Value, SessionCookieName)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteStrictMode {
		t.Errorf("cookie flags HttpOnly=%v Secure=%v SameSite=%v", c.HttpOnly, c.Secure, c.SameSite)
	}
	if c.MaxAge != 86400 {
		t.Errorf("MaxAge = %d; want 86400", c.MaxAge)
	}

	cleared := ClearSessionCookie(false)
	if cleared.MaxAge >= 0 || cleared.Value != "" {
		t.Errorf("cleared cookie MaxAge=%d Value=%q; want negative and empty", cleared.MaxAge, cleared.Value)
	}
}
