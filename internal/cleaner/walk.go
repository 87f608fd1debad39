package cleaner

import (
	"os"
	"path/filepath"
)

// walkFiles enumerates the regular files under root, calling fn with each
// file's path and size. A plain file yields itself; a directory yields its
// full recursive subtree. Directories themselves are never yielded.
//
// Unreadable or vanished paths yield nothing: cleanup locations vary by
// installed software, so absence and permission denial are expected here,
// not errors. Symlinks are never followed, and a visited set of resolved
// directory identities breaks junction cycles that slip past the symlink
// check.
func walkFiles(root string, fn func(path string, size int64)) {
	info, err := os.Lstat(root)
	if err != nil {
		return
	}
	if info.Mode().IsRegular() {
		fn(root, info.Size())
		return
	}
	if !info.IsDir() {
		return
	}

	visited := make(map[string]bool)

	var walk func(dir string)
	walk = func(dir string) {
		key := canonicalKey(dir)
		if visited[key] {
			return
		}
		visited[key] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		for _, entry := range entries {
			child := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(child)
				continue
			}
			fi, err := entry.Info()
			if err != nil {
				continue
			}
			// Symlinks, devices, and other irregular entries are skipped.
			if fi.Mode().IsRegular() {
				fn(child, fi.Size())
			}
		}
	}

	walk(root)
}
