//go:build !windows

package core

import (
	"fmt"
	"runtime"
)

// OSVersionString returns a human-readable platform description.
func OSVersionString() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
