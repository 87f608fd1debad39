package cleaner

// CleanupResult accumulates the outcome of one scan or clean operation.
// FilesDeleted never exceeds FilesScanned; BytesFreed only counts files
// that passed the eligibility policy. A fresh result is successful until
// some path processing records an error.
type CleanupResult struct {
	FilesScanned int64
	FilesDeleted int64
	BytesFreed   int64
	Success      bool
	ErrorMessage string
}

func newResult() CleanupResult {
	return CleanupResult{Success: true}
}

// recordError keeps the first error seen by this result. Later errors are
// expected to be logged by the caller, not accumulated here.
func (r *CleanupResult) recordError(msg string) {
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	}
}

// Merge folds other into r by field-wise summation. Error messages are
// concatenated with a "; " delimiter, first one first, and a failed child
// marks the parent failed.
func (r *CleanupResult) Merge(other CleanupResult) {
	r.FilesScanned += other.FilesScanned
	r.FilesDeleted += other.FilesDeleted
	r.BytesFreed += other.BytesFreed

	if !other.Success {
		r.Success = false
	}
	if other.ErrorMessage != "" {
		if r.ErrorMessage == "" {
			r.ErrorMessage = other.ErrorMessage
		} else {
			r.ErrorMessage += "; " + other.ErrorMessage
		}
	}
}
