package testsupport

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"harmonia/internal/auth"
	"harmonia/internal/config"
	"harmonia/internal/store"
)

// MustOpenStore opens a settings store for tests and registers cleanup.
// The issuer runs at bcrypt's minimum cost so user-table tests stay fast.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg, auth.Issuer{Cost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}
