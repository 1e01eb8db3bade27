package cli

import (
	"flag"
	"fmt"
	"io"

	"quizmd/internal/question"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "Missing <file.md>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		exitCode := ExitOK
		for _, path := range flags.Args() {
			deck, err := question.LoadDeck(path)
			if err == nil {
				err = question.Check(deck)
			}
			if err != nil {
				fmt.Fprintf(stderr, "%s:\n%v\n", path, err)
				exitCode = ExitError
				continue
			}
			fmt.Fprintf(stdout, "%s: OK (%d questions)\n", path, len(deck.Questions))
		}
		return exitCode
	}
}
