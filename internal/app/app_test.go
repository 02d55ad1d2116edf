//go:build linux || darwin

package app

import (
	"bytes"
	"strings"
	"syscall"
	"testing"
)

func TestRunApp_Help(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute help failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Usage:") {
		t.Errorf("Help output missing 'Usage:'. Got: %s", output)
	}
	for _, sub := range []string{"memory", "disk"} {
		if !strings.Contains(output, sub) {
			t.Errorf("Help output missing %q subcommand. Got: %s", sub, output)
		}
	}
}

func TestRunApp_Version(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute version failed: %v", err)
	}

	if !strings.Contains(buf.String(), "memsweep version") {
		t.Errorf("version output = %q", buf.String())
	}
}

func TestExitCodeAfterInterrupt(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	// A recorded interrupt must surface as 128+signal even though the
	// command itself completed and returned nil.
	exitSignal.Store(int32(syscall.SIGINT))
	defer exitSignal.Store(0)

	if code := Execute(); code != 130 {
		t.Errorf("exit code = %d, want 130 after interrupt", code)
	}
}

func TestExitCodeNormalCompletion(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if code := Execute(); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRecognizedFlags(t *testing.T) {
	// The documented option surface; a rename here is a breaking change.
	flags := map[string]string{
		"yes":        "y",
		"verbose":    "v",
		"dry-run":    "d",
		"summary":    "s",
		"aggressive": "a",
		"quit-apps":  "q",
	}

	for name, short := range flags {
		f := rootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			t.Errorf("flag --%s not registered", name)
			continue
		}
		if f.Shorthand != short {
			t.Errorf("flag --%s shorthand = %q, want %q", name, f.Shorthand, short)
		}
	}
}
