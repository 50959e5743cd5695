package settings

import (
	"context"
	"errors"

	"harmonia/internal/store"
)

// Read assembles a fully-populated document from persisted state. User
// passwords are always emptied; plaintext never round-trips out of the
// store. Any query failure aborts the read with no partial document.
func Read(ctx context.Context, st *store.Store) (*Document, error) {
	global, err := st.GlobalSettings(ctx)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	pattern := global.AlbumArtPattern
	doc.AlbumArtPattern = &pattern
	interval := global.ReindexIntervalSeconds
	doc.ReindexIntervalSeconds = &interval

	storedMounts, err := st.MountPoints(ctx)
	if err != nil {
		return nil, err
	}
	mounts := make([]MountPoint, 0, len(storedMounts))
	for _, mount := range storedMounts {
		mounts = append(mounts, MountPoint{Source: mount.Source, Name: mount.Name})
	}
	doc.MountPoints = &mounts

	storedUsers, err := st.Users(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]ConfigUser, 0, len(storedUsers))
	for _, user := range storedUsers {
		users = append(users, ConfigUser{Name: user.Name, Password: ""})
	}
	doc.Users = &users

	ddns, err := st.DDNS(ctx)
	if err != nil {
		return nil, err
	}
	doc.DynamicDNS = &DDNSSettings{Host: ddns.Host, Username: ddns.Username, Password: ddns.Password}

	return doc, nil
}

// Amend applies the document's present fields to the store, in order: mount
// points, users, global settings, ddns. Absent fields are no-ops; a
// present-but-empty list clears its table. Steps already applied when a
// later step fails stay committed, so a failed amend leaves the store
// between "before" and "after".
func Amend(ctx context.Context, st *store.Store, doc *Document) error {
	if doc == nil {
		return errors.New("document is nil")
	}

	if doc.MountPoints != nil {
		mounts := make([]store.MountPoint, 0, len(*doc.MountPoints))
		for _, mount := range *doc.MountPoints {
			mounts = append(mounts, store.MountPoint{Source: mount.Source, Name: mount.Name})
		}
		if err := st.ReplaceMountPoints(ctx, mounts); err != nil {
			return err
		}
	}

	if doc.Users != nil {
		credentials := make([]store.Credential, 0, len(*doc.Users))
		for _, user := range *doc.Users {
			credentials = append(credentials, store.Credential{Name: user.Name, Password: user.Password})
		}
		if err := st.ReplaceUsers(ctx, credentials); err != nil {
			return err
		}
	}

	if doc.ReindexIntervalSeconds != nil || doc.AlbumArtPattern != nil {
		if err := st.UpdateGlobalSettings(ctx, doc.ReindexIntervalSeconds, doc.AlbumArtPattern); err != nil {
			return err
		}
	}

	if doc.DynamicDNS != nil {
		ddns := store.DDNSSettings{
			Host:     doc.DynamicDNS.Host,
			Username: doc.DynamicDNS.Username,
			Password: doc.DynamicDNS.Password,
		}
		if err := st.UpdateDDNS(ctx, ddns); err != nil {
			return err
		}
	}

	return nil
}

// Overwrite clears all mount points and users regardless of what the
// document specifies, then delegates to Amend. Lists the document omits
// therefore end up empty, unlike Amend where omission preserves them.
// Global and ddns settings keep Amend's targeted-update semantics.
func Overwrite(ctx context.Context, st *store.Store, doc *Document) error {
	if err := st.Reset(ctx); err != nil {
		return err
	}
	return Amend(ctx, st, doc)
}
