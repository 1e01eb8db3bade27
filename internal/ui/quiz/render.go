package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizmd/internal/inline"
	"quizmd/internal/review"
)

// renderHeader renders the deck title, position, and tally line.
func renderHeader(title string, view review.View, noColor bool) string {
	line := fmt.Sprintf("Question %d/%d | Correct: %d/%d", view.Index+1, view.Total, view.Tally.Correct, view.Tally.Answered)
	if title != "" {
		line = title + " | " + line
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderQuestion renders the question text with inline markdown.
func renderQuestion(view review.View, styles inline.Styles) string {
	text := inline.Terminal(view.Text, styles)
	if styles.Plain {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// renderOptions renders one line per option, colored by visual state.
func renderOptions(view review.View, styles inline.Styles, noColor bool) string {
	lines := make([]string, 0, len(view.Options))
	for _, option := range view.Options {
		line := option.ID.String() + ") " + inline.Terminal(option.Label, styles) + stateMarker(option.State)
		lines = append(lines, stylize(line, noColor, stateColor(option.State)))
	}
	return strings.Join(lines, "\n")
}

// renderUploadError renders the load failure line on the picker screen.
func renderUploadError(err error, noColor bool) string {
	return stylize("Upload failed: "+err.Error(), noColor, lipgloss.Color("196"))
}

func stateColor(state review.State) lipgloss.Color {
	switch state {
	case review.StateCorrect:
		return lipgloss.Color("42")
	case review.StateIncorrect:
		return lipgloss.Color("196")
	case review.StateDisabled:
		return lipgloss.Color("240")
	default:
		return lipgloss.Color("252")
	}
}

// stateMarker keeps states readable without color.
func stateMarker(state review.State) string {
	switch state {
	case review.StateCorrect:
		return "  ✓"
	case review.StateIncorrect:
		return "  ✗"
	default:
		return ""
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
