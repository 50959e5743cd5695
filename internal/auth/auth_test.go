package auth_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"harmonia/internal/auth"
)

func TestIssueProducesVerifiableHash(t *testing.T) {
	issuer := auth.Issuer{Cost: bcrypt.MinCost}

	user, err := issuer.Issue("Teddy", "yummy")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if user.Name != "Teddy" {
		t.Fatalf("unexpected name %q", user.Name)
	}
	if user.PasswordHash == "" || user.PasswordHash == "yummy" {
		t.Fatalf("password stored without hashing: %q", user.PasswordHash)
	}

	if !auth.Verify(user.PasswordHash, "yummy") {
		t.Fatal("expected password to verify")
	}
	if auth.Verify(user.PasswordHash, "wrong") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestIssueRejectsEmptyName(t *testing.T) {
	issuer := auth.Issuer{Cost: bcrypt.MinCost}
	if _, err := issuer.Issue("   ", "pw"); err == nil {
		t.Fatal("expected error for empty user name")
	}
}

func TestZeroValueIssuerUsesDefaultCost(t *testing.T) {
	var issuer auth.Issuer
	user, err := issuer.Issue("zero", "pw")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
