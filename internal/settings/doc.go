// Package settings implements Harmonia's declarative settings document and
// its reconciliation against the store.
//
// A Document is a partially-specified description of library state parsed
// from TOML or JSON. Every top-level field is optional: Amend applies only
// the fields a document carries, Overwrite first clears list-valued state so
// the document becomes the complete truth for mount points and users, and
// Read reassembles a fully-populated document from persisted state with
// passwords emptied.
//
// Documents are never observable with un-normalized mount paths; the codec
// rejects the whole file when any mount source fails normalization.
package settings
