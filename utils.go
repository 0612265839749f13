package textstore

import (
	"strings"
)

// FilenameExtension is the only extension accepted by the filename policy.
const FilenameExtension = ".txt"

// IsValidFilename validates that a name is safe to use as a storage filename.
// It checks that the name:
//   - is not empty
//   - does not contain ".." (path traversal)
//   - does not contain "/" or "\" (no directories)
//   - ends with ".txt"
//   - only contains ASCII letters, digits, '_', '-' and '.'
//
// Returns true if the name is valid, false otherwise.
func IsValidFilename(name string) bool {
	if name == "" {
		return false
	}

	if strings.Contains(name, "..") {
		return false
	}

	if strings.ContainsAny(name, `/\`) {
		return false
	}

	if !strings.HasSuffix(name, FilenameExtension) {
		return false
	}

	for i := 0; i < len(name); i++ {
		if !isFilenameChar(name[i]) {
			return false
		}
	}

	return true
}

func isFilenameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '-':
		return true
	default:
		return false
	}
}

// NormalizeFilename trims surrounding whitespace from a requested filename.
func NormalizeFilename(name string) string {
	return strings.TrimSpace(name)
}
