// Package plan turns the process inventory and configured filesystem
// paths into an ordered, deterministic target list.
package plan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"memsweep/internal/config"
	"memsweep/pkg/model"
)

// Group is the unit of confirmation: one named category and the targets
// planned under it.
type Group struct {
	Category string
	Targets  []model.CleanupTarget
}

// Plan is the full deterministic target list for one session. File
// groups come first (in config order, glob matches sorted), process
// targets after, aggressive command targets last. Skips holds the
// results recorded for patterns that matched nothing.
type Plan struct {
	Groups []Group
	Skips  []model.ActionResult
}

// Targets flattens the plan in execution order.
func (p Plan) Targets() []model.CleanupTarget {
	var out []model.CleanupTarget
	for _, g := range p.Groups {
		out = append(out, g.Targets...)
	}
	return out
}

// Files plans file targets for each configured category. A pattern that
// matches nothing yields an immediate Skipped result instead of a
// target; absent optional caches are not an error and no size walk is
// attempted for them.
func Files(categories []config.Category, logger zerolog.Logger) Plan {
	var p Plan

	for _, cat := range categories {
		group := Group{Category: cat.Name}

		for _, pattern := range cat.Paths {
			matches, err := filepath.Glob(pattern)
			if err != nil || len(matches) == 0 {
				p.Skips = append(p.Skips, model.ActionResult{
					Target: model.CleanupTarget{
						Kind:  model.KindFile,
						Path:  pattern,
						Label: cat.Name + ": " + pattern,
					},
					Status: model.StatusSkipped,
				})
				continue
			}
			sort.Strings(matches)

			for _, match := range matches {
				size := TreeSize(match)
				logger.Debug().Str("path", match).Uint64("bytes", size).Msg("planned file target")
				group.Targets = append(group.Targets, model.CleanupTarget{
					Kind:      model.KindFile,
					Path:      match,
					SizeBytes: size,
					Label:     cat.Name + ": " + match,
				})
			}
		}

		if len(group.Targets) > 0 {
			p.Groups = append(p.Groups, group)
		}
	}

	return p
}

// Processes plans termination targets from the inventory: resident size
// strictly above threshold and not protected. Inventory order (resident
// size descending) is preserved.
func Processes(procs []model.Process, threshold uint64) Group {
	group := Group{Category: "applications"}

	for _, proc := range procs {
		if proc.Protected || proc.ResidentBytes <= threshold {
			continue
		}
		group.Targets = append(group.Targets, model.CleanupTarget{
			Kind:  model.KindProcess,
			PID:   proc.PID,
			Label: proc.Command,
		})
	}

	return group
}

// TreeSize sums on-disk bytes under path, the directory-tree equivalent
// of `du`. Unreadable entries contribute zero rather than aborting the
// walk.
func TreeSize(path string) uint64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return fileBytes(info)
	}

	var total uint64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if fi, err := d.Info(); err == nil {
				total += fileBytes(fi)
			}
		}
		return nil
	})
	return total
}

func fileBytes(info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}
	return uint64(info.Size())
}
