package service

import "testing"

func TestHashPassword_ProducesDistinctHashes(t *testing.T) {
	h1, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == "password123" || h2 == "password123" {
		t.Fatalf("plaintext stored as hash")
	}
	if h1 == h2 {
		t.Fatalf("identical plaintexts must hash to different values (salting)")
	}
}

func TestVerifyPassword(t *testing.T) {
	h, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !verifyPassword(h, "password123") {
		t.Fatalf("matching password rejected")
	}
	if verifyPassword(h, "password124") {
		t.Fatalf("wrong password accepted")
	}
	if verifyPassword("", "password123") {
		t.Fatalf("empty hash must never verify")
	}
	if verifyPassword("not-a-bcrypt-hash", "password123") {
		t.Fatalf("malformed hash must verify false, not panic")
	}
}
