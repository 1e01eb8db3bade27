package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"quizmd/internal/question"
)

// runParse builds the handler for the parse command.
func runParse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		format := flags.String("format", "json", "Output format: json|yaml")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "Expected exactly one <file.md>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		deck, err := question.LoadDeck(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Parse failed: %v\n", err)
			return ExitError
		}

		switch strings.ToLower(strings.TrimSpace(*format)) {
		case "json":
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(deck); err != nil {
				fmt.Fprintf(stderr, "Parse failed: %v\n", err)
				return ExitError
			}
		case "yaml", "yml":
			encoder := yaml.NewEncoder(stdout)
			encoder.SetIndent(2)
			if err := encoder.Encode(deck); err != nil {
				fmt.Fprintf(stderr, "Parse failed: %v\n", err)
				return ExitError
			}
			if err := encoder.Close(); err != nil {
				fmt.Fprintf(stderr, "Parse failed: %v\n", err)
				return ExitError
			}
		default:
			fmt.Fprintf(stderr, "invalid format %q (expected json|yaml)\n", *format)
			return ExitUsage
		}
		return ExitOK
	}
}
