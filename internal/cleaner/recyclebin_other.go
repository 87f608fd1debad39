//go:build !windows

package cleaner

// noopRecycleBin stands in on platforms without a shell recycle bin.
// It always reports an empty bin.
type noopRecycleBin struct{}

func newPlatformRecycleBin() RecycleBin {
	return noopRecycleBin{}
}

func (noopRecycleBin) Size() (int64, error) { return 0, nil }

func (noopRecycleBin) Empty() error { return nil }
