// Package metrics reads point-in-time resource snapshots from the OS.
//
// Every numeric field is validated against a strict integer pattern
// before it is accepted. A required field that is missing or fails
// validation makes the whole collection fail with ErrMetricsUnavailable;
// no field is ever silently defaulted to zero.
package metrics

import (
	"errors"
	"regexp"
)

// ErrMetricsUnavailable means the OS snapshot could not be read or
// validated. Fatal at baseline time; at final-collection time the
// caller reuses the baseline and flags the delta as incomplete.
var ErrMetricsUnavailable = errors.New("memory metrics unavailable")

// ErrUnsupportedPlatform is returned on platforms without a collector.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

var numericRe = regexp.MustCompile(`^[0-9]+$`)
