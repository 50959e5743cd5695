package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"harmonia/internal/store"
)

// Issuer hashes plaintext credentials into storable user records. The zero
// value uses bcrypt's default cost; tests lower it for speed.
type Issuer struct {
	Cost int
}

// NewIssuer returns an issuer with the production bcrypt cost.
func NewIssuer() Issuer {
	return Issuer{Cost: bcrypt.DefaultCost}
}

// Issue converts a name and plaintext password into a storable user record.
func (i Issuer) Issue(name, password string) (store.User, error) {
	if strings.TrimSpace(name) == "" {
		return store.User{}, errors.New("user name is empty")
	}
	cost := i.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return store.User{}, fmt.Errorf("hash password for %q: %w", name, err)
	}
	return store.User{Name: name, PasswordHash: string(hash)}, nil
}

// Verify reports whether a plaintext password matches a stored hash.
func Verify(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
