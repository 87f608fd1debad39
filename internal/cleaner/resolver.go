package cleaner

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lakshaymaurya-felt/cclean/internal/envutil"
)

// ResolveTemplate expands a path template into zero or more concrete paths.
// Environment placeholders are substituted best-effort: unknown variables
// stay literal, producing a path the existence check will reject later.
// A wildcard segment (a Firefox profile directory, thumbcache_*.db) is
// expanded against the filesystem; a template without wildcards resolves to
// exactly one path whether or not it exists.
func ResolveTemplate(lookup envutil.LookupFunc, template string) []string {
	expanded := envutil.Expand(template, lookup)

	if strings.ContainsAny(expanded, "*?") {
		matches, err := filepath.Glob(expanded)
		if err != nil {
			// Malformed pattern. Treat like an absent path.
			return nil
		}
		return matches
	}

	return []string{expanded}
}

// canonicalKey normalizes a path for duplicate detection. %TEMP% and
// %LOCALAPPDATA%\Temp usually point at the same directory; processing it
// twice would double every count. Follows symlinks so aliased roots
// collapse to one key, and folds case on Windows only.
func canonicalKey(path string) string {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		real = path
	}
	real = filepath.Clean(real)
	if runtime.GOOS == "windows" {
		real = strings.ToLower(real)
	}
	return real
}
