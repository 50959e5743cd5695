package store

import (
	"context"
	"fmt"
)

// GlobalSettings returns the single global settings row.
func (s *Store) GlobalSettings(ctx context.Context) (GlobalSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings GlobalSettings
	row := s.db.QueryRowContext(
		ctx,
		`SELECT auth_secret, reindex_interval_seconds, album_art_pattern FROM settings WHERE id = 1`,
	)
	if err := row.Scan(&settings.AuthSecret, &settings.ReindexIntervalSeconds, &settings.AlbumArtPattern); err != nil {
		return GlobalSettings{}, fmt.Errorf("%w: read global settings: %w", ErrStore, err)
	}
	return settings, nil
}

// MountPoints returns every mount point row in insertion order.
func (s *Store) MountPoints(ctx context.Context) ([]MountPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT source, name FROM mount_points ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query mount points: %w", ErrStore, err)
	}
	defer rows.Close()

	var mounts []MountPoint
	for rows.Next() {
		var mount MountPoint
		if err := rows.Scan(&mount.Source, &mount.Name); err != nil {
			return nil, fmt.Errorf("%w: scan mount point: %w", ErrStore, err)
		}
		mounts = append(mounts, mount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate mount points: %w", ErrStore, err)
	}
	return mounts, nil
}

// Users returns every user row in insertion order.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT name, password_hash FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query users: %w", ErrStore, err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.Name, &user.PasswordHash); err != nil {
			return nil, fmt.Errorf("%w: scan user: %w", ErrStore, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate users: %w", ErrStore, err)
	}
	return users, nil
}

// DDNS returns the single dynamic DNS settings row.
func (s *Store) DDNS(ctx context.Context) (DDNSSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ddns DDNSSettings
	row := s.db.QueryRowContext(ctx, `SELECT host, username, password FROM ddns_settings WHERE id = 1`)
	if err := row.Scan(&ddns.Host, &ddns.Username, &ddns.Password); err != nil {
		return DDNSSettings{}, fmt.Errorf("%w: read ddns settings: %w", ErrStore, err)
	}
	return ddns, nil
}

// ReplaceMountPoints swaps the mount point table for the provided rows in a
// single transaction.
func (s *Store) ReplaceMountPoints(ctx context.Context, mounts []MountPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin mount point tx: %w", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM mount_points`); err != nil {
		return fmt.Errorf("%w: clear mount points: %w", ErrStore, err)
	}
	for _, mount := range mounts {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO mount_points (source, name) VALUES (?, ?)`,
			mount.Source,
			mount.Name,
		); err != nil {
			return fmt.Errorf("%w: insert mount point %q: %w", ErrStore, mount.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit mount points: %w", ErrStore, err)
	}
	return nil
}

// ReplaceUsers swaps the user table for the provided credentials in a single
// transaction. Each credential goes through the issuer first; hashing never
// happens here.
func (s *Store) ReplaceUsers(ctx context.Context, credentials []Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]User, 0, len(credentials))
	for _, credential := range credentials {
		user, err := s.issuer.Issue(credential.Name, credential.Password)
		if err != nil {
			return fmt.Errorf("%w: issue credentials for %q: %w", ErrStore, credential.Name, err)
		}
		users = append(users, user)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin user tx: %w", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("%w: clear users: %w", ErrStore, err)
	}
	for _, user := range users {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO users (name, password_hash) VALUES (?, ?)`,
			user.Name,
			user.PasswordHash,
		); err != nil {
			return fmt.Errorf("%w: insert user %q: %w", ErrStore, user.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit users: %w", ErrStore, err)
	}
	return nil
}

// UpdateGlobalSettings applies targeted column updates to the global
// settings row. Nil arguments leave their column untouched.
func (s *Store) UpdateGlobalSettings(ctx context.Context, reindexSeconds *int, artPattern *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reindexSeconds != nil {
		if _, err := s.db.ExecContext(
			ctx,
			`UPDATE settings SET reindex_interval_seconds = ? WHERE id = 1`,
			*reindexSeconds,
		); err != nil {
			return fmt.Errorf("%w: update reindex interval: %w", ErrStore, err)
		}
	}
	if artPattern != nil {
		if _, err := s.db.ExecContext(
			ctx,
			`UPDATE settings SET album_art_pattern = ? WHERE id = 1`,
			*artPattern,
		); err != nil {
			return fmt.Errorf("%w: update album art pattern: %w", ErrStore, err)
		}
	}
	return nil
}

// UpdateDDNS overwrites the dynamic DNS row columns.
func (s *Store) UpdateDDNS(ctx context.Context, ddns DDNSSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(
		ctx,
		`UPDATE ddns_settings SET host = ?, username = ?, password = ? WHERE id = 1`,
		ddns.Host,
		ddns.Username,
		ddns.Password,
	); err != nil {
		return fmt.Errorf("%w: update ddns settings: %w", ErrStore, err)
	}
	return nil
}

// Reset deletes every mount point and user row in a single transaction. The
// global and ddns rows have no list semantics and are left in place.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin reset tx: %w", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM mount_points`); err != nil {
		return fmt.Errorf("%w: clear mount points: %w", ErrStore, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("%w: clear users: %w", ErrStore, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit reset: %w", ErrStore, err)
	}
	return nil
}
