package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"memsweep/pkg/model"
)

// Decision is the user's answer for one category.
type Decision int

const (
	// DecisionAccept executes the category's targets.
	DecisionAccept Decision = iota
	// DecisionDecline skips this category and moves to the next.
	DecisionDecline
	// DecisionAbort skips this and every remaining category.
	DecisionAbort
)

// Ask is the non-interactive fallback for the confirmation gate: a
// plain y/N prompt that works through pipes. EOF and anything other
// than y/yes counts as a decline; q aborts the remaining categories.
func Ask(category string, targets []model.CleanupTarget, in io.Reader, out io.Writer) Decision {
	var total uint64
	for _, t := range targets {
		total += t.SizeBytes
	}

	fmt.Fprintf(out, "Clean %s? %d targets, %s [y/N/q] ", category, len(targets), humanize.IBytes(total))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return DecisionDecline
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return DecisionAccept
	case "q", "quit", "abort":
		return DecisionAbort
	default:
		return DecisionDecline
	}
}
