package testsupport

import (
	"path/filepath"
	"testing"

	"harmonia/internal/config"
)

// NewConfig produces a config backed by a unique temp directory per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(base, "settings.db")
	cfg.LogLevel = "error"
	cfg.LogFormat = "console"
	return &cfg
}
