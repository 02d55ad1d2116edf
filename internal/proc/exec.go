package proc

import (
	"context"
	"os/exec"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks memsweep/internal/proc Executor

// Executor runs external commands. The indirection exists so tests can
// feed canned ps/vm_stat output instead of touching the real system.
type Executor interface {
	Run(name string, args ...string) ([]byte, error)
	RunContext(ctx context.Context, name string, args ...string) ([]byte, error)
}

type RealExecutor struct{}

func (r *RealExecutor) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (r *RealExecutor) RunContext(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var executor Executor = &RealExecutor{}

func SetExecutor(e Executor) {
	executor = e
}

func ResetExecutor() {
	executor = &RealExecutor{}
}

// Run executes a command using the current executor
func Run(name string, args ...string) ([]byte, error) {
	return executor.Run(name, args...)
}

// RunContext executes a command with a deadline using the current executor.
// Callers treat a deadline hit the same as any other command failure.
func RunContext(ctx context.Context, name string, args ...string) ([]byte, error) {
	return executor.RunContext(ctx, name, args...)
}
