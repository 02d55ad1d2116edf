//go:build !linux && !darwin

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"memsweep is only supported on macOS and Linux.\n\nIf you are seeing this message, you are attempting to build or run memsweep on an unsupported platform.",
	)
	os.Exit(1)
}
