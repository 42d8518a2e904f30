package util

import (
	"os"
	"path"
	"sort"
	"strings"
)

// NormalizeSlashes converts backslash separators and trims a leading "./" so
// specifiers and alias targets compare consistently.
func NormalizeSlashes(s string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(s, "\\", "/"))
	clean := path.Clean(trimmed)
	if clean == "." {
		return ""
	}
	return strings.TrimPrefix(clean, "./")
}

// IsRelativeSpecifier reports whether a module specifier is file-relative.
func IsRelativeSpecifier(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") ||
		spec == "." || spec == ".."
}

// HasURLScheme reports whether a specifier names a remote module
// (e.g. "https://..." or "node:fs"-style scheme prefixes).
func HasURLScheme(spec string) bool {
	if strings.Contains(spec, "://") {
		return true
	}
	return strings.HasPrefix(spec, "node:") || strings.HasPrefix(spec, "data:")
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// SortedStringKeys returns the map's keys in sorted order.
func SortedStringKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
