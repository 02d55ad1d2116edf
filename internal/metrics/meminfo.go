package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"memsweep/pkg/model"
)

// parseMeminfo turns /proc/meminfo content into a snapshot. Values are
// reported in KiB. Required fields: MemTotal, MemFree, Inactive.
//
// Derivation: available = free + inactive, used = total - available.
// Slab stands in for wired (unreclaimable kernel memory); there is no
// compressor on a stock kernel, so compressed is genuinely zero.
func parseMeminfo(out string) (model.ResourceSnapshot, error) {
	kib := map[string]uint64{}
	for _, line := range strings.Split(out, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "kB"))
		if !numericRe.MatchString(raw) {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		kib[strings.TrimSpace(name)] = n
	}

	for _, k := range []string{"MemTotal", "MemFree", "Inactive"} {
		if _, ok := kib[k]; !ok {
			return model.ResourceSnapshot{}, fmt.Errorf("%w: meminfo field %q missing or invalid", ErrMetricsUnavailable, k)
		}
	}

	total := kib["MemTotal"] * 1024
	free := kib["MemFree"] * 1024
	inactive := kib["Inactive"] * 1024
	wired := kib["Slab"] * 1024

	available := free + inactive
	if available > total {
		return model.ResourceSnapshot{}, fmt.Errorf("%w: meminfo free+inactive exceeds total", ErrMetricsUnavailable)
	}

	return model.ResourceSnapshot{
		TotalBytes:     total,
		UsedBytes:      total - available,
		FreeBytes:      free,
		InactiveBytes:  inactive,
		WiredBytes:     wired,
		AvailableBytes: available,
		Timestamp:      time.Now(),
	}, nil
}
