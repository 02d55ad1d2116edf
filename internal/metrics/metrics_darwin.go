//go:build darwin

package metrics

import (
	"fmt"

	"golang.org/x/sys/unix"

	"memsweep/internal/proc"
	"memsweep/pkg/model"
)

// Collect reads a memory snapshot from vm_stat, plus the optional
// pressure figure from the kernel memorystatus level.
func Collect() (model.ResourceSnapshot, error) {
	out, err := proc.Run("vm_stat")
	if err != nil {
		return model.ResourceSnapshot{}, fmt.Errorf("%w: vm_stat: %v", ErrMetricsUnavailable, err)
	}

	snap, err := parseVMStat(string(out))
	if err != nil {
		return model.ResourceSnapshot{}, err
	}

	// kern.memorystatus_level is the free percentage; pressure is its
	// complement. Optional: on any error the field stays unknown.
	if level, err := unix.SysctlUint32("kern.memorystatus_level"); err == nil && level <= 100 {
		pressure := int(100 - level)
		snap.PressurePercent = &pressure
	}

	return snap, nil
}
