package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidPath indicates a path that cannot be represented natively.
var ErrInvalidPath = errors.New("invalid path")

// Normalize converts a path written with any mix of forward and backward
// slashes into the current platform's native form. Duplicate and trailing
// separators collapse through segment iteration, so normalizing an already
// native path returns it unchanged.
func Normalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(raw, 0) {
		return "", fmt.Errorf("%w: %q contains NUL", ErrInvalidPath, raw)
	}

	sep := string(filepath.Separator)
	replaced := strings.NewReplacer("\\", sep, "/", sep).Replace(raw)

	// Keep the volume prefix intact on Windows; joining "C:" with a segment
	// would otherwise produce a drive-relative path.
	volume := filepath.VolumeName(replaced)
	rest := replaced[len(volume):]
	rooted := strings.HasPrefix(rest, sep)

	segments := make([]string, 0, 8)
	for _, segment := range strings.Split(rest, sep) {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	prefix := volume
	if rooted {
		prefix += sep
	}
	normalized := prefix + filepath.Join(segments...)
	if normalized == "" {
		return "", fmt.Errorf("%w: %q has no path segments", ErrInvalidPath, raw)
	}
	return normalized, nil
}
