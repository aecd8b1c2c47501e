package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$") {
		t.Errorf("HashPassword() = %q; want argon2id PHC string with default params", hash)
	}

	other, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == other {
		t.Error("two hashes of the same password are identical; salt not applied")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	tests := []struct {
		password string
		want     bool
	}{
		{"admin123", true},
		{"admin124", false},
		{"", false},
		{"ADMIN123", false},
	}
	for _, tt := range tests {
		got, err := CheckPassword(tt.password, hash)
		if err != nil {
			t.Fatalf("CheckPassword(%q) error: %v", tt.password, err)
		}
		if got != tt.want {
			t.Errorf("CheckPassword(%q) = %v; want %v", tt.password, got, tt.want)
		}
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{
		"",
		"admin123",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$a2V5",
	} {
		ok, err := CheckPassword("admin123", hash)
		if ok {
			t.Errorf("CheckPassword with hash %q accepted the password", hash)
		}
		if !errors.Is(err, ErrMalformedHash) {
			t.Errorf("CheckPassword with hash %q error = %v; want ErrMalformedHash", hash, err)
		}
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("NeedsRehash(current hash) = true; want false")
	}

	legacy := "$argon2id$v=19$m=65536,t=1,p=4$mucMvOaS6lZ2LWNS1OEFKw$UYEWv8cvCOO6l2zGeqv3JPVe1nyy0x9GXBfYEuDM544"
	if !NeedsRehash(legacy) {
		t.Error("NeedsRehash(legacy hash) = false; want true")
	}
	if !NeedsRehash("plain-text") {
		t.Error("NeedsRehash(plain text) = false; want true")
	}
}

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"sixsix", false},
		{"a much longer password", false},
	}
	for _, tt := range tests {
		err := ValidateNewPassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateNewPassword(%q) error = %v; wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}
