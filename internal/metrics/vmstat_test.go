package metrics

import (
	"errors"
	"strings"
	"testing"
)

const sampleVMStat = `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                              100000.
Pages active:                            200000.
Pages inactive:                           50000.
Pages speculative:                        10000.
Pages throttled:                              0.
Pages wired down:                         80000.
Pages purgeable:                           5000.
"Translation faults":                 123456789.
Pages occupied by compressor:             40000.
Pages stored in compressor:              120000.
File-backed pages:                        60000.
Swapins:                                      0.
Swapouts:                                     0.
`

func TestParseVMStat(t *testing.T) {
	snap, err := parseVMStat(sampleVMStat)
	if err != nil {
		t.Fatalf("parseVMStat: %v", err)
	}

	const page = 16384
	if snap.FreeBytes != 100000*page {
		t.Errorf("free = %d, want %d", snap.FreeBytes, 100000*page)
	}
	if snap.WiredBytes != 80000*page {
		t.Errorf("wired = %d, want %d", snap.WiredBytes, 80000*page)
	}
	if snap.CompressedBytes != 40000*page {
		t.Errorf("compressed = %d, want %d", snap.CompressedBytes, 40000*page)
	}

	// used = active + wired + compressed
	wantUsed := uint64((200000 + 80000 + 40000) * page)
	if snap.UsedBytes != wantUsed {
		t.Errorf("used = %d, want %d", snap.UsedBytes, wantUsed)
	}
	// available = free + inactive
	wantAvail := uint64((100000 + 50000) * page)
	if snap.AvailableBytes != wantAvail {
		t.Errorf("available = %d, want %d", snap.AvailableBytes, wantAvail)
	}

	if err := snap.Validate(); err != nil {
		t.Errorf("accounting invariant violated: %v", err)
	}
	if snap.PressurePercent != nil {
		t.Errorf("pressure should be unknown from vm_stat alone, got %d", *snap.PressurePercent)
	}
}

func TestParseVMStatMissingField(t *testing.T) {
	out := strings.ReplaceAll(sampleVMStat, "Pages wired down", "Pages wired gone")
	_, err := parseVMStat(out)
	if !errors.Is(err, ErrMetricsUnavailable) {
		t.Errorf("err = %v, want ErrMetricsUnavailable", err)
	}
}

func TestParseVMStatRejectsGarbageField(t *testing.T) {
	// An unparseable required field must fail the whole collection, not
	// silently become zero.
	out := strings.ReplaceAll(sampleVMStat, "100000.", "1.0e5.")
	_, err := parseVMStat(out)
	if !errors.Is(err, ErrMetricsUnavailable) {
		t.Errorf("err = %v, want ErrMetricsUnavailable", err)
	}
}

func TestVMStatPageSize(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    uint64
		wantErr bool
	}{
		{"standard", "Mach Virtual Memory Statistics: (page size of 4096 bytes)\n", 4096, false},
		{"apple silicon", sampleVMStat, 16384, false},
		{"missing header", "Pages free: 1.\n", 0, true},
		{"zero", "(page size of 0 bytes)", 0, true},
		{"non numeric", "(page size of abc bytes)", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vmStatPageSize(tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("page size = %d, want %d", got, tt.want)
			}
		})
	}
}
