//go:build linux || darwin

package execute

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"memsweep/internal/proc"
	"memsweep/internal/proc/mocks"
	"memsweep/pkg/model"
)

func newTestSession(t *testing.T, dryRun bool) *model.Session {
	t.Helper()
	s := model.NewSession(dryRun)
	snap := model.ResourceSnapshot{TotalBytes: 100, UsedBytes: 60, AvailableBytes: 40}
	require.NoError(t, s.SetBaseline(snap))
	require.NoError(t, s.SetPlanned(nil))
	return s
}

func TestDryRunMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, "cache")
	require.NoError(t, os.MkdirAll(cache, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cache, "blob"), make([]byte, 512), 0o644))

	targets := []model.CleanupTarget{
		{Kind: model.KindFile, Path: cache, SizeBytes: 512, Label: "caches: " + cache},
		{Kind: model.KindProcess, PID: os.Getpid(), Label: "self"},
		{Kind: model.KindCommand, Argv: []string{"purge"}, Label: "purge"},
	}

	session := newTestSession(t, true)
	e := New(Options{DryRun: true, Logger: zerolog.Nop()})
	e.Run(context.Background(), session, targets)

	require.Len(t, session.Actions, 3)
	for _, a := range session.Actions {
		assert.Equal(t, model.StatusDryRun, a.Status)
	}
	assert.Equal(t, uint64(512), session.Actions[0].BytesFreed)

	// The directory is untouched.
	_, err := os.Stat(filepath.Join(cache, "blob"))
	assert.NoError(t, err)
}

func TestRemoveFileSuccess(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "victim")
	require.NoError(t, os.MkdirAll(victim, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(victim, "blob"), make([]byte, 128), 0o644))

	session := newTestSession(t, false)
	e := New(Options{Logger: zerolog.Nop()})
	e.Run(context.Background(), session, []model.CleanupTarget{
		{Kind: model.KindFile, Path: victim, SizeBytes: 128, Label: "victim"},
	})

	require.Len(t, session.Actions, 1)
	assert.Equal(t, model.StatusSuccess, session.Actions[0].Status)
	assert.Equal(t, uint64(128), session.Actions[0].BytesFreed)

	_, err := os.Stat(victim)
	assert.True(t, os.IsNotExist(err))
}

func TestVanishedFileFailsButRunContinues(t *testing.T) {
	dir := t.TempDir()
	survivor := filepath.Join(dir, "survivor")
	require.NoError(t, os.WriteFile(survivor, []byte("x"), 0o644))

	session := newTestSession(t, false)
	e := New(Options{Logger: zerolog.Nop()})
	e.Run(context.Background(), session, []model.CleanupTarget{
		{Kind: model.KindFile, Path: filepath.Join(dir, "gone"), SizeBytes: 99, Label: "gone"},
		{Kind: model.KindFile, Path: survivor, SizeBytes: 1, Label: "survivor"},
	})

	require.Len(t, session.Actions, 2)
	assert.Equal(t, model.StatusFailed, session.Actions[0].Status)
	assert.Zero(t, session.Actions[0].BytesFreed)
	assert.Error(t, session.Actions[0].Err)

	// The failure did not abort the session: the next target ran.
	assert.Equal(t, model.StatusSuccess, session.Actions[1].Status)
}

func TestTerminateGracefully(t *testing.T) {
	child := exec.Command("sleep", "60")
	require.NoError(t, child.Start())
	defer func() {
		_ = child.Process.Kill()
		_, _ = child.Process.Wait()
	}()
	go func() { _, _ = child.Process.Wait() }()

	session := newTestSession(t, false)
	e := New(Options{GracePeriod: 2 * time.Second, Logger: zerolog.Nop()})
	e.Run(context.Background(), session, []model.CleanupTarget{
		{Kind: model.KindProcess, PID: child.Process.Pid, Label: "sleep"},
	})

	require.Len(t, session.Actions, 1)
	assert.Equal(t, model.StatusSuccess, session.Actions[0].Status)
	// No bytes are attributable to a terminated process.
	assert.Zero(t, session.Actions[0].BytesFreed)
}

func TestProtectedTargetIsNeverActedOn(t *testing.T) {
	session := newTestSession(t, false)
	e := New(Options{Guard: proc.NewGuard(nil), Logger: zerolog.Nop()})
	e.Run(context.Background(), session, []model.CleanupTarget{
		{Kind: model.KindProcess, PID: os.Getpid(), Label: "self"},
	})

	require.Len(t, session.Actions, 1)
	assert.Equal(t, model.StatusSkipped, session.Actions[0].Status)
}

func TestCommandTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mocks.NewMockExecutor(ctrl)
	proc.SetExecutor(mockExec)
	defer proc.ResetExecutor()

	mockExec.EXPECT().RunContext(gomock.Any(), "purge").Return([]byte{}, nil)
	mockExec.EXPECT().RunContext(gomock.Any(), "dscacheutil", "-flushcache").
		Return(nil, context.DeadlineExceeded)

	session := newTestSession(t, false)
	e := New(Options{CommandTimeout: time.Second, Logger: zerolog.Nop()})
	e.Run(context.Background(), session, []model.CleanupTarget{
		{Kind: model.KindCommand, Argv: []string{"purge"}, Label: "purge"},
		{Kind: model.KindCommand, Argv: []string{"dscacheutil", "-flushcache"}, Label: "dns"},
	})

	require.Len(t, session.Actions, 2)
	assert.Equal(t, model.StatusSuccess, session.Actions[0].Status)
	// A timeout is a failure like any other; the session continued.
	assert.Equal(t, model.StatusFailed, session.Actions[1].Status)
}

func TestCancellationBetweenTargets(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := newTestSession(t, false)
	e := New(Options{Logger: zerolog.Nop()})
	e.Run(ctx, session, []model.CleanupTarget{
		{Kind: model.KindFile, Path: keep, SizeBytes: 1, Label: "keep"},
	})

	// Nothing was scheduled after cancellation; aggregated state kept.
	assert.Empty(t, session.Actions)
	assert.True(t, session.Cancelled)
	_, err := os.Stat(keep)
	assert.NoError(t, err)
}
