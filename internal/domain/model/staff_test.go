package model

import (
	"strings"
	"testing"
)

func TestStaffUserPassword(t *testing.T) {
	t.Parallel()

	u, err := NewStaffUser("", "a@b.com", "A", RoleEditor, "s3cret-pass")
	if err != nil {
		t.Fatalf("NewStaffUser: %v", err)
	}
	if !u.CheckPassword("s3cret-pass") {
		t.Fatal("correct password rejected")
	}
	if u.CheckPassword("wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordIsSaltedBcrypt(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(h1, "$2") {
		t.Fatalf("hash %q is not a bcrypt string", h1)
	}
	h2, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ (per-hash salt)")
	}

	// bcrypt rejects inputs over 72 bytes instead of silently truncating.
	if _, err := HashPassword(strings.Repeat("x", 73)); err == nil {
		t.Fatal("over-long password must be rejected")
	}
}

func TestNewStaffUserValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewStaffUser("", "a@b.com", "A", "owner", "pw"); err == nil {
		t.Fatal("unknown role must be rejected")
	}
	if _, err := NewStaffUser("", "", "A", RoleAdmin, "pw"); err == nil {
		t.Fatal("empty email must be rejected")
	}
}
