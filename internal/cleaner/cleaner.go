// Package cleaner implements the path-processing and cleanup engine: it
// expands category path templates, enumerates matching files, applies the
// deletion eligibility policy, and executes scan or clean operations with
// accurate accounting and staged progress reporting.
package cleaner

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/lakshaymaurya-felt/cclean/internal/config"
	"github.com/lakshaymaurya-felt/cclean/internal/core"
	"github.com/lakshaymaurya-felt/cclean/internal/envutil"
)

// ProgressFunc receives transient progress notifications: a human-readable
// stage description and a percentage in [0, 100]. Within one operation the
// percentage never decreases and ends at 100 on normal completion.
type ProgressFunc func(message string, percent int)

// Cleaner runs scan and clean operations over the cleanup categories.
// It holds only configuration; every operation is stateless between
// invocations and returns a fresh CleanupResult.
type Cleaner struct {
	log      zerolog.Logger
	lookup   envutil.LookupFunc
	bin      RecycleBin
	progress ProgressFunc
	dryRun   bool
	verbose  bool

	// removeFile is swapped in tests to simulate undeletable files.
	removeFile func(string) error
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithDryRun makes clean operations count and measure without deleting.
// A dry run reports the same numbers a real clean would.
func WithDryRun(enabled bool) Option {
	return func(c *Cleaner) { c.dryRun = enabled }
}

// WithVerbose enables per-file debug logging.
func WithVerbose(enabled bool) Option {
	return func(c *Cleaner) { c.verbose = enabled }
}

// WithProgress sets the progress sink. A nil sink is legal and means no
// notifications.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Cleaner) { c.progress = fn }
}

// WithRecycleBin replaces the platform recycle-bin capability.
func WithRecycleBin(bin RecycleBin) Option {
	return func(c *Cleaner) { c.bin = bin }
}

// WithEnv replaces the environment accessor used for template resolution.
func WithEnv(lookup envutil.LookupFunc) Option {
	return func(c *Cleaner) { c.lookup = lookup }
}

// New creates a Cleaner logging through log. By default it resolves
// templates against the process environment, uses the platform recycle bin,
// and really deletes files.
func New(log zerolog.Logger, opts ...Option) *Cleaner {
	c := &Cleaner{
		log:        log,
		lookup:     os.LookupEnv,
		bin:        newPlatformRecycleBin(),
		removeFile: os.Remove,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cleaner) emitProgress(message string, percent int) {
	if c.progress != nil {
		c.progress(message, percent)
	}
	if c.verbose {
		c.log.Info().Int("percent", percent).Msg(message)
	}
}

// stage returns a shallow copy whose progress events are remapped into the
// quarter band starting at base, so a full run reports one monotonic 0-100
// sequence instead of four nested ones.
func (c *Cleaner) stage(base int) *Cleaner {
	sub := *c
	if c.progress != nil {
		outer := c.progress
		sub.progress = func(message string, percent int) {
			outer(message, base+percent/4)
		}
	}
	return &sub
}

// ─── Single-category operations ──────────────────────────────────────────────

// ScanTempFiles measures reclaimable space in the temporary-file locations.
func (c *Cleaner) ScanTempFiles() CleanupResult {
	c.emitProgress("Scanning temporary files...", 0)
	return c.processTemplates(config.Templates(config.TempFiles), modeScan)
}

// CleanTempFiles deletes eligible files from the temporary-file locations.
func (c *Cleaner) CleanTempFiles() CleanupResult {
	c.emitProgress("Cleaning temporary files...", 0)
	return c.processTemplates(config.Templates(config.TempFiles), modeClean)
}

// ScanBrowserCache measures reclaimable space in browser cache locations.
func (c *Cleaner) ScanBrowserCache() CleanupResult {
	c.emitProgress("Scanning browser cache...", 0)
	return c.processTemplates(config.Templates(config.BrowserCache), modeScan)
}

// CleanBrowserCache deletes eligible files from browser cache locations.
func (c *Cleaner) CleanBrowserCache() CleanupResult {
	c.emitProgress("Cleaning browser cache...", 0)
	return c.processTemplates(config.Templates(config.BrowserCache), modeClean)
}

// ScanSystemFiles measures reclaimable space in system log and cache
// locations.
func (c *Cleaner) ScanSystemFiles() CleanupResult {
	c.emitProgress("Scanning system files...", 0)
	return c.processTemplates(config.Templates(config.SystemFiles), modeScan)
}

// CleanSystemFiles deletes eligible files from system log and cache
// locations.
func (c *Cleaner) CleanSystemFiles() CleanupResult {
	c.emitProgress("Cleaning system files...", 0)
	return c.processTemplates(config.Templates(config.SystemFiles), modeClean)
}

// ScanRecycleBin measures the recycle bin as one pseudo-file whose size is
// the bin's aggregate byte size.
func (c *Cleaner) ScanRecycleBin() CleanupResult {
	result := newResult()
	c.emitProgress("Scanning Recycle Bin...", 0)

	size, err := c.bin.Size()
	if err != nil {
		result.Success = false
		result.recordError("failed to query Recycle Bin: " + err.Error())
		c.log.Warn().Err(err).Msg("recycle bin query failed")
	} else {
		result.FilesScanned = 1
		result.BytesFreed = size
	}

	c.emitProgress("Recycle Bin scan completed", 100)
	return result
}

// CleanRecycleBin empties the recycle bin atomically: the whole bin goes in
// one platform call, not file-by-file, and the result reports one
// pseudo-file freed at the bin's pre-clean size.
func (c *Cleaner) CleanRecycleBin() CleanupResult {
	result := newResult()
	c.emitProgress("Cleaning Recycle Bin...", 0)

	size, sizeErr := c.bin.Size()
	if sizeErr != nil {
		// The empty call can still proceed; only the freed-bytes figure
		// is lost.
		c.log.Warn().Err(sizeErr).Msg("recycle bin query failed")
		size = 0
	}

	switch {
	case c.dryRun:
		result.FilesScanned = 1
		result.FilesDeleted = 1
		result.BytesFreed = size
		c.log.Info().Str("size", core.FormatSize(size)).Msg("dry run: would empty Recycle Bin")

	default:
		if err := c.bin.Empty(); err != nil {
			result.Success = false
			result.recordError("failed to empty Recycle Bin: " + err.Error())
			c.log.Error().Err(err).Msg("recycle bin empty failed")
		} else {
			result.FilesScanned = 1
			result.FilesDeleted = 1
			result.BytesFreed = size
			c.log.Info().Str("freed", core.FormatSize(size)).Msg("Recycle Bin emptied")
		}
	}

	c.emitProgress("Recycle Bin cleanup completed", 100)
	return result
}

// ─── Category dispatch ───────────────────────────────────────────────────────

// Scan measures reclaimable space for one category. All runs a full scan.
func (c *Cleaner) Scan(category config.Category) CleanupResult {
	switch category {
	case config.TempFiles:
		return c.ScanTempFiles()
	case config.BrowserCache:
		return c.ScanBrowserCache()
	case config.SystemFiles:
		return c.ScanSystemFiles()
	case config.RecycleBin:
		return c.ScanRecycleBin()
	default:
		return c.PerformFullScan()
	}
}

// Clean deletes eligible files for one category. All runs a full clean.
func (c *Cleaner) Clean(category config.Category) CleanupResult {
	switch category {
	case config.TempFiles:
		return c.CleanTempFiles()
	case config.BrowserCache:
		return c.CleanBrowserCache()
	case config.SystemFiles:
		return c.CleanSystemFiles()
	case config.RecycleBin:
		return c.CleanRecycleBin()
	default:
		return c.PerformFullClean()
	}
}

// ─── Full runs ───────────────────────────────────────────────────────────────

// PerformFullScan scans temp files, browser cache, system files, then the
// recycle bin, in that fixed order, summing results field-wise. Stage
// completions land at 25/50/75/100 percent.
func (c *Cleaner) PerformFullScan() CleanupResult {
	c.emitProgress("Performing full system scan...", 0)
	total := newResult()

	total.Merge(c.stage(0).ScanTempFiles())
	c.emitProgress("Full scan: temp files completed", 25)

	total.Merge(c.stage(25).ScanBrowserCache())
	c.emitProgress("Full scan: browser cache completed", 50)

	total.Merge(c.stage(50).ScanSystemFiles())
	c.emitProgress("Full scan: system files completed", 75)

	total.Merge(c.stage(75).ScanRecycleBin())
	c.emitProgress("Full scan completed", 100)

	c.log.Info().
		Int64("files", total.FilesScanned).
		Str("reclaimable", core.FormatSize(total.BytesFreed)).
		Msg("full scan completed")

	return total
}

// PerformFullClean cleans all categories in the same fixed order as
// PerformFullScan. The recycle bin goes last so its atomic empty is not
// interleaved with scans of overlapping cache paths.
func (c *Cleaner) PerformFullClean() CleanupResult {
	c.emitProgress("Performing full system cleanup...", 0)
	total := newResult()

	total.Merge(c.stage(0).CleanTempFiles())
	c.emitProgress("Full cleanup: temp files completed", 25)

	total.Merge(c.stage(25).CleanBrowserCache())
	c.emitProgress("Full cleanup: browser cache completed", 50)

	total.Merge(c.stage(50).CleanSystemFiles())
	c.emitProgress("Full cleanup: system files completed", 75)

	total.Merge(c.stage(75).CleanRecycleBin())
	c.emitProgress("Full cleanup completed", 100)

	c.log.Info().
		Int64("deleted", total.FilesDeleted).
		Int64("scanned", total.FilesScanned).
		Str("freed", core.FormatSize(total.BytesFreed)).
		Msg("full cleanup completed")

	return total
}
