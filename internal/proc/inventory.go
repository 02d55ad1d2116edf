//go:build linux || darwin

package proc

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"memsweep/pkg/model"
)

var numericRe = regexp.MustCompile(`^[0-9]+$`)

// List enumerates running processes with resident memory at or above
// minSizeBytes, sorted descending by resident size. Rows that fail the
// strict numeric validation for pid or rss are dropped silently; process
// tables routinely contain ephemeral or unreadable entries.
func List(minSizeBytes uint64, guard *Guard) ([]model.Process, error) {
	out, err := Run("ps", "-axo", "pid=,ppid=,rss=,comm=")
	if err != nil {
		return nil, fmt.Errorf("ps process list: %w", err)
	}

	procs := parsePS(string(out), guard)

	filtered := procs[:0]
	for _, p := range procs {
		if p.ResidentBytes >= minSizeBytes {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ResidentBytes > filtered[j].ResidentBytes
	})

	return filtered, nil
}

// parsePS parses `ps -axo pid=,ppid=,rss=,comm=` output. rss is in KiB.
func parsePS(out string, guard *Guard) []model.Process {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	procs := make([]model.Process, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		if !numericRe.MatchString(fields[0]) || !numericRe.MatchString(fields[1]) || !numericRe.MatchString(fields[2]) {
			continue
		}

		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		ppid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		rssKiB, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			continue
		}

		// comm may contain spaces (macOS app binaries)
		command := strings.Join(fields[3:], " ")

		procs = append(procs, model.Process{
			PID:           pid,
			PPID:          ppid,
			ResidentBytes: rssKiB * 1024,
			Command:       command,
			Protected:     guard.Protected(pid, command),
		})
	}

	return procs
}
