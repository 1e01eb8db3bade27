package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live UI and why.
type uiModeDecision struct {
	useLive bool
	reason  string
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether to run the Bubble Tea review UI. Verbose
// output always uses the plain line-based review.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto", "live", "plain":
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verbose {
		return uiModeDecision{reason: "verbose output uses plain review"}, nil
	}

	tty := isTerminal(stdout)
	switch {
	case normalized == "plain":
		return uiModeDecision{reason: "plain review requested"}, nil
	case tty:
		return uiModeDecision{useLive: true, reason: "stdout is a terminal"}, nil
	case normalized == "live":
		return uiModeDecision{
			reason:  "stdout is not a terminal",
			warning: "Live UI requested but stdout is not a TTY; falling back to plain review.",
		}, nil
	default:
		return uiModeDecision{reason: "stdout is not a terminal"}, nil
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
