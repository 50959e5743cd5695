package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "settings.db")
	configPath := filepath.Join(dir, "config.toml")
	content := "database_path = \"" + filepath.ToSlash(dbPath) + "\"\nlog_level = \"error\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	configPath := writeTestConfig(t)
	target := filepath.Join(t.TempDir(), "settings.toml")

	out, err := runCLI(t, configPath, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote sample settings") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected settings file at %s: %v", target, err)
	}

	if _, err := runCLI(t, configPath, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
}

func TestConfigImportExportRoundTrip(t *testing.T) {
	configPath := writeTestConfig(t)

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	document := `
album_art_pattern = "cover.jpg"
reindex_interval_seconds = 300

[[mount_points]]
source = "/srv/music"
name = "music"

[[users]]
name = "admin"
password = "change-me"
`
	if err := os.WriteFile(settingsPath, []byte(document), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	out, err := runCLI(t, configPath, "config", "import", settingsPath)
	if err != nil {
		t.Fatalf("config import: %v\n%s", err, out)
	}

	out, err = runCLI(t, configPath, "config", "export", "--format", "json")
	if err != nil {
		t.Fatalf("config export: %v\n%s", err, out)
	}
	for _, want := range []string{`"music"`, `"admin"`, `"cover.jpg"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("export missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "change-me") {
		t.Fatalf("export leaked a password:\n%s", out)
	}
}

func TestConfigImportReplaceClearsOmittedLists(t *testing.T) {
	configPath := writeTestConfig(t)
	dir := t.TempDir()

	fullPath := filepath.Join(dir, "full.toml")
	full := `
[[mount_points]]
source = "/srv/music"
name = "music"
`
	if err := os.WriteFile(fullPath, []byte(full), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if out, err := runCLI(t, configPath, "config", "import", fullPath); err != nil {
		t.Fatalf("config import: %v\n%s", err, out)
	}

	minimalPath := filepath.Join(dir, "minimal.toml")
	if err := os.WriteFile(minimalPath, []byte("album_art_pattern = \"x.png\"\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if out, err := runCLI(t, configPath, "config", "import", "--replace", minimalPath); err != nil {
		t.Fatalf("config import --replace: %v\n%s", err, out)
	}

	out, err := runCLI(t, configPath, "config", "export", "--format", "json")
	if err != nil {
		t.Fatalf("config export: %v\n%s", err, out)
	}
	if strings.Contains(out, `"music"`) {
		t.Fatalf("replace should have cleared mount points:\n%s", out)
	}
}

func TestConfigShowListsSettings(t *testing.T) {
	configPath := writeTestConfig(t)

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	document := `
[[mount_points]]
source = "/srv/music"
name = "music"
`
	if err := os.WriteFile(settingsPath, []byte(document), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if out, err := runCLI(t, configPath, "config", "import", settingsPath); err != nil {
		t.Fatalf("config import: %v\n%s", err, out)
	}

	out, err := runCLI(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	for _, want := range []string{"Mount points", "music", "Users"} {
		if !strings.Contains(out, want) {
			t.Fatalf("show missing %q:\n%s", want, out)
		}
	}
}
