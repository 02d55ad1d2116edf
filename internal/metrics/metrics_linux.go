//go:build linux

package metrics

import (
	"fmt"
	"os"

	"memsweep/pkg/model"
)

var meminfoPath = "/proc/meminfo"

// Collect reads a memory snapshot from /proc/meminfo.
func Collect() (model.ResourceSnapshot, error) {
	data, err := os.ReadFile(meminfoPath)
	if err != nil {
		return model.ResourceSnapshot{}, fmt.Errorf("%w: %v", ErrMetricsUnavailable, err)
	}
	return parseMeminfo(string(data))
}
