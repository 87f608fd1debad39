package status

import "github.com/yusufpapurcu/wmi"

// win32LogicalDisk mirrors the WMI Win32_LogicalDisk class fields we query.
type win32LogicalDisk struct {
	DeviceID   string
	VolumeName *string
}

// volumeLabels maps drive letters (e.g. "C:") to their volume names.
// A failed WMI query degrades to unlabeled volumes, never to an error.
func volumeLabels() map[string]string {
	var disks []win32LogicalDisk
	q := wmi.CreateQuery(&disks, "", "Win32_LogicalDisk")
	if err := wmi.Query(q, &disks); err != nil {
		return nil
	}

	labels := make(map[string]string, len(disks))
	for _, d := range disks {
		if d.VolumeName != nil && *d.VolumeName != "" {
			labels[d.DeviceID] = *d.VolumeName
		}
	}
	return labels
}
