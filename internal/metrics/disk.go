//go:build linux || darwin

package metrics

import (
	"fmt"

	"golang.org/x/sys/unix"

	"memsweep/pkg/model"
)

// Disk reports filesystem space for the volume containing path.
func Disk(path string) (model.DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return model.DiskUsage{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	total := st.Blocks * uint64(st.Bsize)
	free := st.Bavail * uint64(st.Bsize)

	return model.DiskUsage{
		TotalBytes: total,
		FreeBytes:  free,
		UsedBytes:  total - free,
	}, nil
}
