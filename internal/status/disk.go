// Package status reports disk usage for mounted volumes: how full each one
// is before a cleanup, and how much space a cleanup actually returned.
package status

import (
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeUsage describes one mounted volume.
type VolumeUsage struct {
	Device      string
	Mount       string
	Fstype      string
	Label       string
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// Collect returns usage for every physical partition. Volumes that refuse
// a usage query (empty card readers, detached network drives) are skipped.
func Collect() ([]VolumeUsage, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	labels := volumeLabels()

	var vols []VolumeUsage
	for _, p := range parts {
		u, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		vols = append(vols, VolumeUsage{
			Device:      p.Device,
			Mount:       p.Mountpoint,
			Fstype:      p.Fstype,
			Label:       labels[strings.TrimSuffix(p.Mountpoint, `\`)],
			Total:       u.Total,
			Free:        u.Free,
			Used:        u.Used,
			UsedPercent: u.UsedPercent,
		})
	}
	return vols, nil
}

// FreeOn returns the free bytes on the volume containing path.
func FreeOn(path string) (uint64, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return u.Free, nil
}
