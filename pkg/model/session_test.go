package model

import (
	"testing"
	"time"
)

func TestSessionStageOrder(t *testing.T) {
	s := NewSession(false)
	if s.Stage() != StageCreated {
		t.Fatalf("new session stage = %s, want created", s.Stage())
	}

	snap := ResourceSnapshot{TotalBytes: 100, UsedBytes: 60, AvailableBytes: 40, Timestamp: time.Now()}

	if err := s.SetBaseline(snap); err != nil {
		t.Fatalf("SetBaseline: %v", err)
	}
	if err := s.SetPlanned(nil); err != nil {
		t.Fatalf("SetPlanned: %v", err)
	}
	if err := s.MarkExecuted(); err != nil {
		t.Fatalf("MarkExecuted: %v", err)
	}
	if err := s.SetFinal(snap, false); err != nil {
		t.Fatalf("SetFinal: %v", err)
	}
	if err := s.MarkReported(); err != nil {
		t.Fatalf("MarkReported: %v", err)
	}
	if s.Stage() != StageReported {
		t.Errorf("stage = %s, want reported", s.Stage())
	}
	if s.Elapsed() < 0 {
		t.Errorf("elapsed = %v, want >= 0", s.Elapsed())
	}
}

func TestSessionRejectsBackwardTransitions(t *testing.T) {
	s := NewSession(true)
	snap := ResourceSnapshot{TotalBytes: 10, UsedBytes: 6, AvailableBytes: 4}

	if err := s.SetPlanned(nil); err == nil {
		t.Error("SetPlanned before baseline should fail")
	}
	if err := s.SetBaseline(snap); err != nil {
		t.Fatalf("SetBaseline: %v", err)
	}
	if err := s.SetBaseline(snap); err == nil {
		t.Error("second SetBaseline should fail")
	}
	if err := s.SetFinal(snap, false); err == nil {
		t.Error("SetFinal before execution should fail")
	}
}

func TestSessionActionLogIsAppendOnly(t *testing.T) {
	s := NewSession(false)
	s.Append(ActionResult{Status: StatusSkipped})
	s.Append(ActionResult{Status: StatusFailed})
	s.Append(ActionResult{Status: StatusSuccess, BytesFreed: 10})

	if len(s.Actions) != 3 {
		t.Fatalf("actions = %d, want 3", len(s.Actions))
	}
	want := []Status{StatusSkipped, StatusFailed, StatusSuccess}
	for i, st := range want {
		if s.Actions[i].Status != st {
			t.Errorf("action %d status = %s, want %s", i, s.Actions[i].Status, st)
		}
	}
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		snap    ResourceSnapshot
		wantErr bool
	}{
		{"balanced", ResourceSnapshot{TotalBytes: 100, UsedBytes: 70, AvailableBytes: 30}, false},
		{"mismatch", ResourceSnapshot{TotalBytes: 100, UsedBytes: 70, AvailableBytes: 40}, true},
		{"zero", ResourceSnapshot{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSuccess, "SUCCESS"},
		{StatusSkipped, "SKIPPED"},
		{StatusFailed, "FAILED"},
		{StatusDryRun, "DRY_RUN"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
