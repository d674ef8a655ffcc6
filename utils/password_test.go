package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("srif2026admin", 0)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("srif2026admin", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordBootstrapCost(t *testing.T) {
	hash, err := HashPassword("bootstrap-secret", BootstrapHashCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != BootstrapHashCost {
		t.Fatalf("hash cost = %d, want %d", cost, BootstrapHashCost)
	}
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"admin@um.edu.sa", "a.b+c@example.co"} {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false", email)
		}
	}
	for _, email := range []string{"", "not-an-email", "a@b", "a b@example.com"} {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("short password accepted")
	}
	if ok, msg := ValidatePassword("long enough"); !ok {
		t.Errorf("valid password rejected: %s", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("SanitizeInput = %q", got)
	}
}
