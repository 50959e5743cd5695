// Command harmonia is the settings CLI for the Harmonia music server.
//
// It imports declarative settings documents into the SQLite-backed settings
// store, exports persisted state back into TOML or JSON, and renders the
// current configuration for inspection.
package main
