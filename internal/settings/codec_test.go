package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"harmonia/internal/pathutil"
	"harmonia/internal/settings"
)

const jsonDocument = `{
  "album_art_pattern": "Folder.png",
  "reindex_interval_seconds": 123,
  "mount_points": [{"source": "/mnt//music/", "name": "music"}],
  "users": [{"name": "Teddy", "password": "secret"}],
  "dynamic_dns_settings": {"host": "x.ydns.eu", "username": "u", "password": "p"}
}`

const tomlDocument = `
album_art_pattern = "Folder.png"
reindex_interval_seconds = 123

[[mount_points]]
source = "/mnt//music/"
name = "music"

[[users]]
name = "Teddy"
password = "secret"

[dynamic_dns_settings]
host = "x.ydns.eu"
username = "u"
password = "p"
`

func TestParseJSONDocument(t *testing.T) {
	doc, err := settings.ParseJSON([]byte(jsonDocument))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	assertParsedDocument(t, doc)
}

func TestParseTOMLDocument(t *testing.T) {
	doc, err := settings.ParseTOML([]byte(tomlDocument))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	assertParsedDocument(t, doc)
}

func assertParsedDocument(t *testing.T, doc *settings.Document) {
	t.Helper()

	if doc.AlbumArtPattern == nil || *doc.AlbumArtPattern != "Folder.png" {
		t.Fatalf("unexpected album art pattern: %v", doc.AlbumArtPattern)
	}
	if doc.ReindexIntervalSeconds == nil || *doc.ReindexIntervalSeconds != 123 {
		t.Fatalf("unexpected reindex interval: %v", doc.ReindexIntervalSeconds)
	}
	if doc.MountPoints == nil || len(*doc.MountPoints) != 1 {
		t.Fatalf("unexpected mount points: %v", doc.MountPoints)
	}
	wantSource := filepath.FromSlash("/mnt/music")
	if got := (*doc.MountPoints)[0].Source; got != wantSource {
		t.Fatalf("mount source = %q, want normalized %q", got, wantSource)
	}
	if doc.Users == nil || len(*doc.Users) != 1 || (*doc.Users)[0].Name != "Teddy" {
		t.Fatalf("unexpected users: %v", doc.Users)
	}
	if doc.DynamicDNS == nil || doc.DynamicDNS.Host != "x.ydns.eu" {
		t.Fatalf("unexpected ddns settings: %v", doc.DynamicDNS)
	}
}

func TestParseRejectsBadMountPath(t *testing.T) {
	content := `{"mount_points": [{"source": "", "name": "broken"}]}`
	doc, err := settings.ParseJSON([]byte(content))
	if !errors.Is(err, pathutil.ErrInvalidPath) {
		t.Fatalf("ParseJSON = %v, want ErrInvalidPath", err)
	}
	if doc != nil {
		t.Fatalf("expected no partial document, got %#v", doc)
	}
}

func TestParseMalformedInput(t *testing.T) {
	if _, err := settings.ParseJSON([]byte(`{"users": [`)); !errors.Is(err, settings.ErrParse) {
		t.Fatalf("ParseJSON = %v, want ErrParse", err)
	}
	if _, err := settings.ParseTOML([]byte(`users = [{`)); !errors.Is(err, settings.ErrParse) {
		t.Fatalf("ParseTOML = %v, want ErrParse", err)
	}
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	doc, err := settings.ParseJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if doc.AlbumArtPattern != nil || doc.ReindexIntervalSeconds != nil ||
		doc.MountPoints != nil || doc.Users != nil || doc.DynamicDNS != nil {
		t.Fatalf("expected every field absent, got %#v", doc)
	}

	encoded, err := settings.EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	for _, field := range []string{"album_art_pattern", "reindex_interval_seconds", "mount_points", "users", "dynamic_dns_settings"} {
		if strings.Contains(string(encoded), field) {
			t.Fatalf("absent field %q serialized: %s", field, encoded)
		}
	}
}

func TestEmptyListIsDistinctFromAbsent(t *testing.T) {
	doc, err := settings.ParseJSON([]byte(`{"mount_points": []}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if doc.MountPoints == nil {
		t.Fatal("expected explicit empty list, got absent field")
	}
	if len(*doc.MountPoints) != 0 {
		t.Fatalf("expected empty list, got %v", *doc.MountPoints)
	}
	if doc.Users != nil {
		t.Fatal("expected users to stay absent")
	}
}

func TestParseFileByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(jsonPath, []byte(jsonDocument), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if _, err := settings.ParseFile(jsonPath); err != nil {
		t.Fatalf("ParseFile json: %v", err)
	}

	tomlPath := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlDocument), 0o644); err != nil {
		t.Fatalf("write toml: %v", err)
	}
	if _, err := settings.ParseFile(tomlPath); err != nil {
		t.Fatalf("ParseFile toml: %v", err)
	}

	yamlPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(yamlPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if _, err := settings.ParseFile(yamlPath); !errors.Is(err, settings.ErrParse) {
		t.Fatalf("ParseFile yaml = %v, want ErrParse", err)
	}
}

func TestCreateSampleIsParseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := settings.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	doc, err := settings.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile on sample failed: %v", err)
	}
	if doc.MountPoints == nil || len(*doc.MountPoints) == 0 {
		t.Fatal("expected sample to carry a mount point")
	}
}
