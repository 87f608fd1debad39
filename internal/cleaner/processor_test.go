package cleaner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCleaner(opts ...Option) *Cleaner {
	return New(zerolog.Nop(), opts...)
}

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644))
	return path
}

// progressRecorder captures progress events for assertions.
type progressRecorder struct {
	messages []string
	percents []int
}

func (p *progressRecorder) fn(message string, percent int) {
	p.messages = append(p.messages, message)
	p.percents = append(p.percents, percent)
}

func TestScanModeCountsEligibleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 100)
	writeFile(t, dir, "b.tmp", 200)
	writeFile(t, dir, filepath.Join("nested", "c.log"), 300)
	writeFile(t, dir, "thumbs.db", 999)

	c := testCleaner()
	result := c.processTemplates([]string{dir}, modeScan)

	assert.Equal(t, int64(3), result.FilesScanned)
	assert.Equal(t, int64(0), result.FilesDeleted)
	assert.Equal(t, int64(600), result.BytesFreed)
	assert.True(t, result.Success)
	assert.Empty(t, result.ErrorMessage)
}

func TestScanIsNonDestructive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 100)
	writeFile(t, dir, filepath.Join("sub", "b.tmp"), 200)

	before := listTree(t, dir)
	testCleaner().processTemplates([]string{dir}, modeScan)
	after := listTree(t, dir)

	assert.Equal(t, before, after)
}

func listTree(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	walkFiles(root, func(path string, size int64) {
		files = append(files, path)
	})
	sort.Strings(files)
	return files
}

func TestCleanDeletesEligibleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 100)
	writeFile(t, dir, "b.tmp", 200)
	writeFile(t, dir, "c.tmp", 300)
	reserved := writeFile(t, dir, "thumbs.db", 999)

	c := testCleaner()
	result := c.processTemplates([]string{dir}, modeClean)

	assert.Equal(t, int64(3), result.FilesScanned)
	assert.Equal(t, int64(3), result.FilesDeleted)
	assert.Equal(t, int64(600), result.BytesFreed)
	assert.True(t, result.Success)

	assert.NoFileExists(t, filepath.Join(dir, "a.tmp"))
	assert.FileExists(t, reserved, "reserved shell artifact must survive a clean")
}

func TestDryRunEquivalence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 100)
	writeFile(t, dir, filepath.Join("deep", "b.tmp"), 200)
	writeFile(t, dir, "desktop.ini", 50)

	scan := testCleaner().processTemplates([]string{dir}, modeScan)
	dry := testCleaner(WithDryRun(true)).processTemplates([]string{dir}, modeClean)

	assert.Equal(t, dry.FilesScanned, dry.FilesDeleted,
		"dry run counts every scanned file as would-be-deleted")
	assert.Equal(t, scan.FilesScanned, dry.FilesScanned)
	assert.Equal(t, scan.BytesFreed, dry.BytesFreed)

	// Nothing was removed, so a real clean now reports the same numbers.
	wet := testCleaner().processTemplates([]string{dir}, modeClean)
	assert.Equal(t, dry.FilesScanned, wet.FilesScanned)
	assert.Equal(t, dry.FilesDeleted, wet.FilesDeleted)
	assert.Equal(t, dry.BytesFreed, wet.BytesFreed)
}

func TestDryRunLeavesFilesOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.tmp", 100)

	result := testCleaner(WithDryRun(true)).processTemplates([]string{dir}, modeClean)

	assert.Equal(t, int64(1), result.FilesDeleted)
	assert.FileExists(t, path)
}

func TestMissingPathIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	result := testCleaner().processTemplates([]string{missing}, modeScan)

	assert.True(t, result.Success)
	assert.Empty(t, result.ErrorMessage)
	assert.Zero(t, result.FilesScanned)
}

func TestUnresolvedPlaceholderIsSkipped(t *testing.T) {
	result := testCleaner().processTemplates([]string{`%CCLEAN_NO_SUCH_VAR%\Temp`}, modeScan)

	assert.True(t, result.Success)
	assert.Zero(t, result.FilesScanned)
}

func TestWildcardTemplateExpandsProfiles(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, filepath.Join("profile-a", "cache2", "one.bin"), 10)
	writeFile(t, base, filepath.Join("profile-b", "cache2", "two.bin"), 20)
	writeFile(t, base, filepath.Join("profile-b", "prefs.js"), 5) // outside cache2

	tmpl := filepath.Join(base, "*", "cache2")
	result := testCleaner().processTemplates([]string{tmpl}, modeScan)

	assert.Equal(t, int64(2), result.FilesScanned)
	assert.Equal(t, int64(30), result.BytesFreed)
}

func TestDuplicateResolvedPathsProcessedOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 100)

	result := testCleaner().processTemplates([]string{dir, dir}, modeScan)

	assert.Equal(t, int64(1), result.FilesScanned)
	assert.Equal(t, int64(100), result.BytesFreed)
}

func TestPartialFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 100)
	locked := writeFile(t, dir, "b.tmp", 200)
	writeFile(t, dir, "c.tmp", 300)

	c := testCleaner()
	c.removeFile = func(path string) error {
		if path == locked {
			return errors.New("sharing violation")
		}
		return os.Remove(path)
	}

	result := c.processTemplates([]string{dir}, modeClean)

	assert.Equal(t, int64(3), result.FilesScanned)
	assert.Equal(t, int64(2), result.FilesDeleted)
	assert.Equal(t, int64(400), result.BytesFreed)
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "b.tmp")

	assert.FileExists(t, locked)
	assert.NoFileExists(t, filepath.Join(dir, "a.tmp"))
	assert.NoFileExists(t, filepath.Join(dir, "c.tmp"))
}

func TestFirstDeleteErrorWinsPerPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 10)
	writeFile(t, dir, "b.tmp", 10)

	c := testCleaner()
	c.removeFile = func(string) error { return errors.New("locked") }

	result := c.processTemplates([]string{dir}, modeClean)

	require.False(t, result.Success)
	// ReadDir yields names in lexical order, so a.tmp fails first.
	assert.Contains(t, result.ErrorMessage, "a.tmp")
	assert.NotContains(t, result.ErrorMessage, "b.tmp")
}

func TestErrorsConcatenatedAcrossTemplates(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, dirA, "a.tmp", 10)
	writeFile(t, dirB, "b.tmp", 10)

	c := testCleaner()
	c.removeFile = func(string) error { return errors.New("locked") }

	result := c.processTemplates([]string{dirA, dirB}, modeClean)

	require.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "a.tmp")
	assert.Contains(t, result.ErrorMessage, "; ")
	assert.Contains(t, result.ErrorMessage, "b.tmp")
}

func TestPanicConvertedToSoftError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 10)

	c := testCleaner()
	c.removeFile = func(string) error { panic("filesystem exploded") }

	var result CleanupResult
	require.NotPanics(t, func() {
		result = c.processTemplates([]string{dir}, modeClean)
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "filesystem exploded")
}

func TestPerTemplateProgress(t *testing.T) {
	rec := &progressRecorder{}
	templates := []string{
		filepath.Join(t.TempDir(), "one"),
		filepath.Join(t.TempDir(), "two"),
		filepath.Join(t.TempDir(), "three"),
	}

	testCleaner(WithProgress(rec.fn)).processTemplates(templates, modeScan)

	assert.Equal(t, []int{33, 66, 100}, rec.percents)
}

func TestNilProgressSinkIsLegal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tmp", 10)

	require.NotPanics(t, func() {
		testCleaner().processTemplates([]string{dir}, modeClean)
	})
}
