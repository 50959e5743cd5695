// Package store persists Harmonia settings in SQLite and exposes typed
// read and write primitives over the four settings collections: the global
// settings row, mount points, users, and the dynamic DNS row.
//
// The Store owns the database connection, the schema bootstrap with seeded
// defaults, and a process-wide mutex that serializes every primitive. It
// implements no merge policy; deciding which fields to touch belongs to the
// settings package. List replacements run delete-then-insert inside one
// transaction, but multi-step callers reacquire the lock per primitive, so
// a sequence of primitives is not atomic as a whole.
//
// Treat this package as the single source of truth for the settings schema;
// schema changes go through schema.sql.
package store
