// Package envutil expands environment-variable references in Windows-style
// path templates.
package envutil

import (
	"os"
	"strings"
)

// LookupFunc is a read-only key→value environment accessor.
// It matches the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Expand replaces environment-variable references in path using lookup.
// Both Windows %VAR% and Unix $VAR / ${VAR} syntax are supported.
// References with no binding are left as literal text rather than removed,
// so a template like %LOCALAPPDATA%\Temp survives unharmed on hosts where
// the variable is unset and the caller's existence check rejects it later.
func Expand(path string, lookup LookupFunc) string {
	path = expandPercent(path, lookup)

	return os.Expand(path, func(name string) string {
		if v, ok := lookup(name); ok {
			return v
		}
		return "$" + name
	})
}

// ExpandWindowsEnv expands path against the current process environment.
func ExpandWindowsEnv(path string) string {
	return Expand(path, os.LookupEnv)
}

// expandPercent handles the %VAR% form. A lone or trailing percent sign is
// literal text, as is any %VAR% whose name has no binding.
func expandPercent(path string, lookup LookupFunc) string {
	if !strings.Contains(path, "%") {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))

	for {
		open := strings.IndexByte(path, '%')
		if open < 0 {
			b.WriteString(path)
			break
		}
		rest := path[open+1:]
		length := strings.IndexByte(rest, '%')
		if length < 0 {
			b.WriteString(path)
			break
		}

		name := rest[:length]
		b.WriteString(path[:open])
		if v, ok := lookup(name); ok && name != "" {
			b.WriteString(v)
		} else {
			b.WriteString(path[open : open+length+2])
		}
		path = rest[length+1:]
	}

	return b.String()
}
