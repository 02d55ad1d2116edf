//go:build darwin

package plan

import "memsweep/pkg/model"

// MemoryCommands plans the core command-backed memory action: the
// kernel purge. Each command is its own target so each gets its own
// result.
func MemoryCommands() Group {
	return Group{
		Category: "memory purge",
		Targets: []model.CleanupTarget{
			{
				Kind:  model.KindCommand,
				Argv:  []string{"purge"},
				Label: "purge inactive memory",
			},
		},
	}
}

// Aggressive plans the riskier service actions outside the core set:
// DNS cache flush and an mDNSResponder restart.
func Aggressive() Group {
	return Group{
		Category: "system services",
		Targets: []model.CleanupTarget{
			{
				Kind:  model.KindCommand,
				Argv:  []string{"dscacheutil", "-flushcache"},
				Label: "flush DNS cache",
			},
			{
				Kind:  model.KindCommand,
				Argv:  []string{"killall", "-HUP", "mDNSResponder"},
				Label: "restart mDNSResponder",
			},
		},
	}
}
