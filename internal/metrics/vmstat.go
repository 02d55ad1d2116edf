package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"memsweep/pkg/model"
)

// parseVMStat turns `vm_stat` output into a snapshot. The page size is
// taken from the header line; all page counts are validated strictly.
//
// Derivation: used = active + wired + compressed,
// available = free + inactive, total = used + available.
func parseVMStat(out string) (model.ResourceSnapshot, error) {
	pageSize, err := vmStatPageSize(out)
	if err != nil {
		return model.ResourceSnapshot{}, err
	}

	pages := map[string]uint64{}
	for _, line := range strings.Split(out, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimSpace(value), ".")
		if !numericRe.MatchString(raw) {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		pages[strings.TrimSpace(name)] = n
	}

	required := []string{
		"Pages free",
		"Pages active",
		"Pages inactive",
		"Pages wired down",
		"Pages occupied by compressor",
	}
	for _, k := range required {
		if _, ok := pages[k]; !ok {
			return model.ResourceSnapshot{}, fmt.Errorf("%w: vm_stat field %q missing or invalid", ErrMetricsUnavailable, k)
		}
	}

	free := pages["Pages free"] * pageSize
	active := pages["Pages active"] * pageSize
	inactive := pages["Pages inactive"] * pageSize
	wired := pages["Pages wired down"] * pageSize
	compressed := pages["Pages occupied by compressor"] * pageSize

	used := active + wired + compressed
	available := free + inactive

	return model.ResourceSnapshot{
		TotalBytes:      used + available,
		UsedBytes:       used,
		FreeBytes:       free,
		InactiveBytes:   inactive,
		WiredBytes:      wired,
		CompressedBytes: compressed,
		AvailableBytes:  available,
		Timestamp:       time.Now(),
	}, nil
}

// vmStatPageSize extracts the page size from the vm_stat header:
// "Mach Virtual Memory Statistics: (page size of 16384 bytes)"
func vmStatPageSize(out string) (uint64, error) {
	const marker = "page size of "
	idx := strings.Index(out, marker)
	if idx < 0 {
		return 0, fmt.Errorf("%w: vm_stat page size header missing", ErrMetricsUnavailable)
	}
	rest := out[idx+len(marker):]
	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		return 0, fmt.Errorf("%w: vm_stat page size header malformed", ErrMetricsUnavailable)
	}
	raw := rest[:end]
	if !numericRe.MatchString(raw) {
		return 0, fmt.Errorf("%w: vm_stat page size %q not numeric", ErrMetricsUnavailable, raw)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: vm_stat page size %q invalid", ErrMetricsUnavailable, raw)
	}
	return n, nil
}
