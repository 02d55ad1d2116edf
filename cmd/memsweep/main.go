//go:build linux || darwin

package main

import (
	"os"

	"memsweep/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
