//go:build !windows

package status

// volumeLabels has no portable implementation; volumes go unlabeled.
func volumeLabels() map[string]string {
	return nil
}
