package cleaner

import (
	"errors"

	"golang.org/x/sys/windows"
)

// fileInUse probes path with an exclusive open (no share mode) and reports
// whether another process holds it in a way that would block deletion.
// The handle is closed before returning; nothing stays locked across the
// probe. A sharing violation or access denial means in-use. Any other
// failure (file already gone, bad path) is not: the delete attempt itself
// will surface those.
//
// This is a heuristic. Under concurrent external writers it can return
// stale answers in either direction, which the caller tolerates.
func fileInUse(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0, // no sharing: fails if anyone else has the file open
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
			errors.Is(err, windows.ERROR_ACCESS_DENIED)
	}

	windows.CloseHandle(h)
	return false
}
