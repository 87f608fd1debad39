// Package core provides small shared helpers: byte formatting, privilege
// detection, and OS version reporting.
package core

import "fmt"

// FormatSize renders a byte count as a human-readable string.
// Examples: "512 B", "1.50 KB", "2.35 GB".
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	size := float64(bytes)
	idx := -1
	for size >= unit && idx < len(units)-1 {
		size /= unit
		idx++
	}
	return fmt.Sprintf("%.2f %s", size, units[idx])
}
