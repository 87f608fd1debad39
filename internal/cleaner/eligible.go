package cleaner

import (
	"path/filepath"
	"strings"
)

// reservedNames are OS/shell metadata files that must never be removed even
// though they live inside cleanup paths.
var reservedNames = map[string]bool{
	"desktop.ini": true,
	"thumbs.db":   true,
}

// isEligible decides whether a file is safe to delete. Files currently held
// open by another process are rejected first (best-effort probe), then
// reserved shell artifacts by base name, case-insensitively. The check
// reads filesystem state at call time and is never cached: a file locked
// during the scan pass may be free by the clean pass, and vice versa.
func isEligible(path string) bool {
	if fileInUse(path) {
		return false
	}
	if reservedNames[strings.ToLower(filepath.Base(path))] {
		return false
	}
	return true
}
