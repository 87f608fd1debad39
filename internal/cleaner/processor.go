package cleaner

import (
	"fmt"
	"os"

	"github.com/lakshaymaurya-felt/cclean/internal/config"
)

type mode int

const (
	modeScan mode = iota
	modeClean
)

// processTemplates drives one category: each template in declared order is
// resolved, enumerated, filtered, and scanned or cleaned, with partial
// results merged by summation. A staged progress event follows every
// template. Errors degrade the result but never abort the remaining
// templates.
func (c *Cleaner) processTemplates(templates []string, m mode) CleanupResult {
	total := newResult()
	if len(templates) == 0 {
		return total
	}

	verb := "Scanning..."
	if m == modeClean {
		verb = "Cleaning..."
	}

	// Duplicate resolved paths across templates are processed once:
	// %TEMP% and %LOCALAPPDATA%\Temp commonly alias the same directory.
	seen := make(map[string]bool)

	for i, tmpl := range templates {
		total.Merge(c.processTemplate(tmpl, m, seen))
		c.emitProgress(verb, (i+1)*100/len(templates))
	}

	return total
}

// processTemplate handles one path template. Any panic escaping the
// underlying I/O is converted here into a soft path error; nothing
// propagates past this boundary.
func (c *Cleaner) processTemplate(tmpl string, m mode, seen map[string]bool) (result CleanupResult) {
	result = newResult()

	defer func() {
		if p := recover(); p != nil {
			result.Success = false
			result.recordError(fmt.Sprintf("error processing %s: %v", tmpl, p))
			c.log.Error().Str("template", tmpl).Msg(fmt.Sprintf("path processing failed: %v", p))
		}
	}()

	for _, path := range ResolveTemplate(c.lookup, tmpl) {
		key := canonicalKey(path)
		if seen[key] {
			continue
		}
		seen[key] = true

		if config.IsProtectedRoot(path) {
			c.log.Warn().Str("path", path).Msg("refusing to process protected root")
			continue
		}

		// Absence is normal: most machines only have a few of the
		// locations a category names.
		if _, err := os.Lstat(path); err != nil {
			if c.verbose {
				c.log.Debug().Str("path", path).Msg("path does not exist, skipping")
			}
			continue
		}

		result.Merge(c.processPath(path, m))
	}

	return result
}

// processPath enumerates one concrete location and applies the requested
// mode to every eligible file. Ineligible files are invisible: not counted,
// not reported. In clean mode a failed delete records the first failure and
// keeps going; one locked file must not block cleanup of the rest.
func (c *Cleaner) processPath(path string, m mode) CleanupResult {
	result := newResult()

	walkFiles(path, func(file string, size int64) {
		if !isEligible(file) {
			return
		}

		result.FilesScanned++

		switch {
		case m == modeScan:
			result.BytesFreed += size
			if c.verbose {
				c.log.Debug().Str("file", file).Int64("size", size).Msg("found")
			}

		case c.dryRun:
			result.FilesDeleted++
			result.BytesFreed += size
			if c.verbose {
				c.log.Debug().Str("file", file).Int64("size", size).Msg("dry run: would delete")
			}

		default:
			if err := c.removeFile(file); err != nil {
				c.log.Warn().Err(err).Str("file", file).Msg("failed to delete")
				result.Success = false
				result.recordError("failed to delete " + file + ": " + err.Error())
				return
			}
			result.FilesDeleted++
			result.BytesFreed += size
			if c.verbose {
				c.log.Debug().Str("file", file).Int64("size", size).Msg("deleted")
			}
		}
	})

	return result
}
