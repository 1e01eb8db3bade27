package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"quizmd/internal/review"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type outputStyle int

const (
	styleDefault outputStyle = iota
	styleHeading
	styleCorrect
	styleIncorrect
	styleMuted
)

type palette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	return palette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p palette) apply(style outputStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleHeading:
		return ansiBold + ansiBlue + text + ansiReset
	case styleCorrect:
		return ansiBold + ansiGreen + text + ansiReset
	case styleIncorrect:
		return ansiBold + ansiRed + text + ansiReset
	case styleMuted:
		return ansiGray + text + ansiReset
	default:
		return text
	}
}

// styleForState picks the style for an option's visual state.
func styleForState(state review.State) outputStyle {
	switch state {
	case review.StateCorrect:
		return styleCorrect
	case review.StateIncorrect:
		return styleIncorrect
	case review.StateDisabled:
		return styleMuted
	default:
		return styleDefault
	}
}

func logVerbose(enabled bool, writer io.Writer, noColor bool, format string, args ...any) {
	if !enabled || writer == nil {
		return
	}
	p := paletteFor(writer, noColor)
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer, "%s %s\n", p.prefix(verbosePrefix), line)
}
