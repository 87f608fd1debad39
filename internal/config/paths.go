// Package config holds the static cleanup category tables: which filesystem
// locations each category covers, expressed as path templates with
// environment-variable placeholders and optional wildcard segments.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Category identifies a group of cleanup path templates.
type Category int

const (
	TempFiles Category = iota
	BrowserCache
	SystemFiles
	RecycleBin
	All
)

// String returns the display name for the category.
func (c Category) String() string {
	switch c {
	case TempFiles:
		return "Temporary files"
	case BrowserCache:
		return "Browser cache"
	case SystemFiles:
		return "System files"
	case RecycleBin:
		return "Recycle Bin"
	case All:
		return "All categories"
	}
	return "Unknown"
}

// CleanTarget represents one named cleanup location within a category.
type CleanTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Category groups related targets.
	Category Category

	// Templates is the list of path templates to process, in order.
	// Templates may contain %VAR% placeholders and a wildcard segment.
	Templates []string

	// Description is a human-readable description.
	Description string

	// RequiresAdmin indicates whether elevated privileges are needed.
	RequiresAdmin bool

	// RiskLevel is one of "low", "medium", "high".
	RiskLevel string
}

// Targets returns all cleanup targets in processing order.
func Targets() []CleanTarget {
	return []CleanTarget{
		// ── Temporary files ─────────────────────────────────────
		{
			Name:          "UserTemp",
			Category:      TempFiles,
			Templates:     []string{`%TEMP%`, `%LOCALAPPDATA%\Temp`},
			Description:   "User temporary files",
			RequiresAdmin: false,
			RiskLevel:     "low",
		},
		{
			Name:          "SystemTemp",
			Category:      TempFiles,
			Templates:     []string{`%WINDIR%\Temp`},
			Description:   "System temporary files",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},
		{
			Name:          "WindowsUpdateCache",
			Category:      TempFiles,
			Templates:     []string{`%WINDIR%\SoftwareDistribution\Download`},
			Description:   "Windows Update download cache",
			RequiresAdmin: true,
			RiskLevel:     "medium",
		},
		{
			Name:          "WindowsLogs",
			Category:      TempFiles,
			Templates:     []string{`%WINDIR%\Logs`},
			Description:   "Windows log files",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},
		{
			Name:          "WebCache",
			Category:      TempFiles,
			Templates:     []string{`%LOCALAPPDATA%\Microsoft\Windows\WebCache`},
			Description:   "Windows web cache database",
			RequiresAdmin: false,
			RiskLevel:     "low",
		},
		{
			Name:          "Prefetch",
			Category:      TempFiles,
			Templates:     []string{`%WINDIR%\Prefetch`},
			Description:   "Application prefetch data",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},

		// ── Browser caches ──────────────────────────────────────
		{
			Name:     "ChromeCache",
			Category: BrowserCache,
			Templates: []string{
				`%LOCALAPPDATA%\Google\Chrome\User Data\Default\Cache`,
				`%LOCALAPPDATA%\Google\Chrome\User Data\Default\Code Cache`,
			},
			Description:   "Google Chrome browser cache",
			RequiresAdmin: false,
			RiskLevel:     "low",
		},
		{
			Name:          "EdgeCache",
			Category:      BrowserCache,
			Templates:     []string{`%LOCALAPPDATA%\Microsoft\Edge\User Data\Default\Cache`},
			Description:   "Microsoft Edge browser cache",
			RequiresAdmin: false,
			RiskLevel:     "low",
		},
		{
			Name:     "FirefoxCache",
			Category: BrowserCache,
			Templates: []string{
				`%APPDATA%\Mozilla\Firefox\Profiles\*\cache2`,
				`%LOCALAPPDATA%\Mozilla\Firefox\Profiles\*\cache2`,
			},
			Description:   "Mozilla Firefox browser cache (cache2 within profiles)",
			RequiresAdmin: false,
			RiskLevel:     "low",
		},

		// ── System files ────────────────────────────────────────
		{
			Name:     "ServicingLogs",
			Category: SystemFiles,
			Templates: []string{
				`%WINDIR%\Logs\CBS`,
				`%WINDIR%\Logs\DISM`,
				`%WINDIR%\Logs\DPX`,
				`%WINDIR%\Logs\MoSetup`,
			},
			Description:   "Component servicing and setup logs",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},
		{
			Name:          "SetupPanther",
			Category:      SystemFiles,
			Templates:     []string{`%WINDIR%\Panther`},
			Description:   "Windows setup logs",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},
		{
			Name:          "UpdateDataStoreLogs",
			Category:      SystemFiles,
			Templates:     []string{`%WINDIR%\SoftwareDistribution\DataStore\Logs`},
			Description:   "Windows Update datastore logs",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},
		{
			Name:          "ThumbnailCache",
			Category:      SystemFiles,
			Templates:     []string{`%LOCALAPPDATA%\Microsoft\Windows\Explorer\thumbcache_*.db`},
			Description:   "Windows Explorer thumbnail cache",
			RequiresAdmin: false,
			RiskLevel:     "low",
		},
		{
			Name:     "CrashReports",
			Category: SystemFiles,
			Templates: []string{
				`%WINDIR%\LiveKernelReports`,
				`%WINDIR%\Minidump`,
			},
			Description:   "Kernel and minidump crash files",
			RequiresAdmin: true,
			RiskLevel:     "low",
		},

		// ── Recycle Bin ─────────────────────────────────────────
		{
			Name:          "RecycleBin",
			Category:      RecycleBin,
			Templates:     nil, // Emptied via the Shell API, no direct path.
			Description:   "Windows Recycle Bin (emptied via system API)",
			RequiresAdmin: false,
			RiskLevel:     "medium",
		},
	}
}

// TargetsFor returns the clean targets belonging to the given category.
// All returns every target.
func TargetsFor(category Category) []CleanTarget {
	var result []CleanTarget
	for _, t := range Targets() {
		if category == All || t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// Templates returns the flattened, ordered template list for a category.
func Templates(category Category) []string {
	var templates []string
	for _, t := range TargetsFor(category) {
		templates = append(templates, t.Templates...)
	}
	return templates
}

// RequiresAdmin reports whether any target in the category wants elevation.
func RequiresAdmin(category Category) bool {
	for _, t := range TargetsFor(category) {
		if t.RequiresAdmin {
			return true
		}
	}
	return false
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// systemDrive returns the system drive letter with backslash (e.g., C:\).
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

// programFiles returns the Program Files directory.
func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

// programFilesX86 returns the Program Files (x86) directory.
func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

// programData returns the ProgramData directory.
func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

// NeverDeletePaths returns roots that must NEVER be treated as cleanup
// locations under any circumstances. The list uses environment variables to
// support Windows installations on any drive letter (not just C:).
// The roots are joined with backslashes explicitly: this is a Windows path
// table, and the engine's tests exercise it on every OS.
func NeverDeletePaths() []string {
	w := winDir()
	sd := strings.TrimSuffix(systemDrive(), `\`)
	return []string{
		w,
		w + `\System32`,
		w + `\SysWOW64`,
		w + `\WinSxS`,
		w + `\assembly`,
		w + `\System32\config`,
		sd + `\Boot`,
		sd + `\bootmgr`,
		sd + `\EFI`,
		programFiles(),
		programFilesX86(),
		sd + `\Users`,
		programData(),
		sd + `\Recovery`,
		w + `\Installer`,
		w + `\servicing`,
	}
}

// IsProtectedRoot reports whether path is exactly one of the never-delete
// roots. Cleanup locations live inside several of these roots (%WINDIR%\Temp
// and friends), so only an exact match disqualifies a resolved path.
func IsProtectedRoot(path string) bool {
	cleaned := filepath.Clean(path)
	for _, p := range NeverDeletePaths() {
		if strings.EqualFold(cleaned, filepath.Clean(p)) {
			return true
		}
	}
	return false
}
