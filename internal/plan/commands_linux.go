//go:build linux

package plan

import "memsweep/pkg/model"

// MemoryCommands plans the core command-backed memory action: a
// filesystem sync, which lets the kernel release clean page cache.
func MemoryCommands() Group {
	return Group{
		Category: "memory purge",
		Targets: []model.CleanupTarget{
			{
				Kind:  model.KindCommand,
				Argv:  []string{"sync"},
				Label: "sync filesystems",
			},
		},
	}
}

// Aggressive plans the riskier actions outside the core set: dropping
// the kernel page cache (needs root).
func Aggressive() Group {
	return Group{
		Category: "system caches",
		Targets: []model.CleanupTarget{
			{
				Kind:  model.KindCommand,
				Argv:  []string{"sysctl", "vm.drop_caches=3"},
				Label: "drop page cache",
			},
		},
	}
}
