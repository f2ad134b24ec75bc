package domain

import "testing"

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Fatalf("expected admin role, got %q ok=%v", r, ok)
	}
	if r, ok := ParseRole("user"); !ok || r != RoleUser {
		t.Fatalf("expected user role, got %q ok=%v", r, ok)
	}
	if _, ok := ParseRole("superadmin"); ok {
		t.Fatalf("unknown role must be rejected")
	}
	if _, ok := ParseRole(""); ok {
		t.Fatalf("empty role must be rejected")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ann@X.Com "); got != "ann@x.com" {
		t.Fatalf("unexpected normalization: %q", got)
	}
	if got := NormalizeEmail("ann@x.com"); got != "ann@x.com" {
		t.Fatalf("already normalized email changed: %q", got)
	}
}

func TestWithoutHash(t *testing.T) {
	u := &User{ID: "u1", Email: "a@b.c", PasswordHash: "secret-hash"}

	clone := u.WithoutHash()
	if clone.PasswordHash != "" {
		t.Fatalf("hash not stripped")
	}
	if clone.ID != "u1" || clone.Email != "a@b.c" {
		t.Fatalf("unexpected clone: %+v", clone)
	}
	if u.PasswordHash != "secret-hash" {
		t.Fatalf("original mutated")
	}

	var nilUser *User
	if nilUser.WithoutHash() != nil {
		t.Fatalf("nil receiver must return nil")
	}
}
