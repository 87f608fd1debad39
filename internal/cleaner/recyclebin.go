package cleaner

// RecycleBin is the platform capability for the system recycle-bin
// location. It is deliberately tiny so the engine stays testable against a
// plain filesystem: scanning needs the aggregate size, cleaning needs one
// atomic empty operation. There is no per-file access.
type RecycleBin interface {
	// Size returns the total size in bytes of everything in the bin.
	Size() (int64, error)

	// Empty removes the entire contents of the bin in one call.
	Empty() error
}
