package settings

import (
	"harmonia/internal/pathutil"
)

// MountPoint maps a logical mount name to a filesystem location exposed to
// the library scanner.
type MountPoint struct {
	Source string `json:"source" toml:"source"`
	Name   string `json:"name" toml:"name"`
}

// ConfigUser is a user entry in a settings document. Password is plaintext
// on import and always empty on export.
type ConfigUser struct {
	Name     string `json:"name" toml:"name"`
	Password string `json:"password" toml:"password"`
}

// DDNSSettings is the dynamic DNS configuration consumed by the DDNS
// update client.
type DDNSSettings struct {
	Host     string `json:"host" toml:"host"`
	Username string `json:"username" toml:"username"`
	Password string `json:"password" toml:"password"`
}

// Document is the format-agnostic settings model. Every field is optional;
// a nil field means "leave persisted state untouched" under Amend, while a
// present-but-empty list means "clear the table". Pointer-to-slice keeps
// those two cases distinct on the wire.
type Document struct {
	AlbumArtPattern        *string       `json:"album_art_pattern,omitempty" toml:"album_art_pattern,omitempty"`
	ReindexIntervalSeconds *int          `json:"reindex_interval_seconds,omitempty" toml:"reindex_interval_seconds,omitempty"`
	MountPoints            *[]MountPoint `json:"mount_points,omitempty" toml:"mount_points,omitempty"`
	Users                  *[]ConfigUser `json:"users,omitempty" toml:"users,omitempty"`
	DynamicDNS             *DDNSSettings `json:"dynamic_dns_settings,omitempty" toml:"dynamic_dns_settings,omitempty"`
}

// cleanPaths normalizes every mount source in place. Any failure rejects
// the whole document.
func (d *Document) cleanPaths() error {
	if d.MountPoints == nil {
		return nil
	}
	mounts := *d.MountPoints
	for i := range mounts {
		normalized, err := pathutil.Normalize(mounts[i].Source)
		if err != nil {
			return err
		}
		mounts[i].Source = normalized
	}
	return nil
}
