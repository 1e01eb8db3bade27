package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quizmd/internal/inline"
	"quizmd/internal/question"
	"quizmd/internal/review"
)

const plainHelp = "Commands: a-d answer, n next, p previous, q quit"

// runPlainReview drives a session from line-based commands on in.
func runPlainReview(in io.Reader, stdout io.Writer, deck question.Deck, session *review.Session, p palette) int {
	styles := inline.PlainStyles()
	if p.enabled {
		styles = inline.DefaultStyles()
	}
	if deck.Title != "" {
		fmt.Fprintln(stdout, p.apply(styleHeading, fmt.Sprintf("%s (%d questions)", deck.Title, session.Len())))
	}
	fmt.Fprintln(stdout, plainHelp)
	printQuestion(stdout, session, styles, p)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			break
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if input == "" {
			continue
		}
		if input == "q" || input == "quit" {
			break
		}
		switch input {
		case "n", "next":
			if !session.Next() {
				fmt.Fprintln(stdout, "Already at the last question.")
				continue
			}
			printQuestion(stdout, session, styles, p)
		case "p", "prev", "previous":
			if !session.Previous() {
				fmt.Fprintln(stdout, "Already at the first question.")
				continue
			}
			printQuestion(stdout, session, styles, p)
		case "?", "h", "help":
			fmt.Fprintln(stdout, plainHelp)
		default:
			id, ok := question.ParseOptionID(input)
			if !ok || len(input) != 1 {
				fmt.Fprintf(stdout, "Unknown command %q. %s\n", input, plainHelp)
				continue
			}
			if _, locked := session.Selected(); locked {
				fmt.Fprintln(stdout, "Answer already locked in.")
				continue
			}
			if !session.Select(id) {
				fmt.Fprintf(stdout, "No option %s for this question.\n", id)
				continue
			}
			printOptions(stdout, session, styles, p)
			printVerdict(stdout, session, p)
		}
	}

	tally := session.Tally()
	fmt.Fprintf(stdout, "Score: %d/%d answered correctly (%d questions)\n", tally.Correct, tally.Answered, tally.Total)
	return ExitOK
}

func printQuestion(stdout io.Writer, session *review.Session, styles inline.Styles, p palette) {
	current, ok := session.Current()
	if !ok {
		return
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, p.apply(styleHeading, fmt.Sprintf("Question %d/%d", session.Index()+1, session.Len())))
	fmt.Fprintln(stdout, inline.Terminal(current.Text, styles))
	printOptions(stdout, session, styles, p)
}

func printOptions(stdout io.Writer, session *review.Session, styles inline.Styles, p palette) {
	current, _ := session.Current()
	for _, option := range current.Options {
		state := session.OptionState(option)
		line := fmt.Sprintf("  %s) %s", option.ID, inline.Terminal(option.Label, styles))
		if state != review.StateNeutral {
			line += " [" + state.String() + "]"
		}
		fmt.Fprintln(stdout, p.apply(styleForState(state), line))
	}
}

func printVerdict(stdout io.Writer, session *review.Session, p palette) {
	current, _ := session.Current()
	selected, _ := session.Selected()
	switch {
	case !current.HasAnswer():
		fmt.Fprintln(stdout, p.apply(styleMuted, "This question has no recorded answer."))
	case selected == current.CorrectOptionID:
		fmt.Fprintln(stdout, p.apply(styleCorrect, "Correct!"))
	default:
		fmt.Fprintln(stdout, p.apply(styleIncorrect, fmt.Sprintf("Incorrect. The answer is %s.", current.CorrectOptionID)))
	}
}
