// Package config loads, normalizes, and validates Harmonia's own runtime
// configuration: where the settings database lives and how logs are emitted.
//
// This is distinct from the declarative settings document handled by the
// settings package; that document describes library state, while this file
// describes the process hosting it. Always obtain runtime settings through
// this package so downstream code receives expanded paths and validated
// log options.
package config
