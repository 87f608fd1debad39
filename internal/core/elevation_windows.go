package core

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process runs with an elevated
// (administrator) token. Cleaning system locations without elevation is
// allowed but will skip most files, so callers warn rather than abort.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
