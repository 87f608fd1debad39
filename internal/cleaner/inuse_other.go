//go:build !windows

package cleaner

import (
	"errors"
	"io/fs"
	"os"
)

// fileInUse approximates the Windows exclusive-open probe. POSIX has no
// mandatory sharing, so an open handle elsewhere never blocks us; only a
// permission failure maps onto the Windows "access denied" arm. The probe
// stays deliberately weak rather than pretending to semantics the platform
// does not have.
func fileInUse(path string) bool {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return errors.Is(err, fs.ErrPermission)
	}
	f.Close()
	return false
}
