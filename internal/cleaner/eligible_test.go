package cleaner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligibleReservedNames(t *testing.T) {
	dir := t.TempDir()

	reserved := []string{"thumbs.db", "Thumbs.db", "THUMBS.DB", "desktop.ini", "Desktop.INI"}
	for _, name := range reserved {
		path := writeFile(t, dir, name, 10)
		assert.False(t, isEligible(path), "%s is shell metadata", name)
	}
}

func TestIsEligibleRegularFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "report.tmp", 10)
	assert.True(t, isEligible(path))
}

func TestIsEligibleReservedNameAnywhere(t *testing.T) {
	path := writeFile(t, t.TempDir(), filepath.Join("deep", "nested", "thumbs.db"), 10)
	assert.False(t, isEligible(path))
}

func TestFileInUseReleasesProbe(t *testing.T) {
	// The probe must leave the file deletable afterwards.
	path := writeFile(t, t.TempDir(), "probe.tmp", 10)

	assert.False(t, fileInUse(path))
	assert.True(t, isEligible(path))
}

func TestFileInUseMissingFile(t *testing.T) {
	// A vanished file is not "in use"; the delete attempt reports it.
	assert.False(t, fileInUse(filepath.Join(t.TempDir(), "gone.tmp")))
}
