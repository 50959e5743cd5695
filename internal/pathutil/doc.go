// Package pathutil canonicalizes user-supplied filesystem paths into the
// platform-native separator convention.
//
// Settings files are routinely authored on a different platform than the one
// running the server, so mount-point sources arrive with mixed forward and
// backward slashes. Normalize rewrites them into native form and collapses
// duplicate and trailing separators so the stored value is stable regardless
// of how the author wrote it.
package pathutil
