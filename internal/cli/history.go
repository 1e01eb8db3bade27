package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quizmd/internal/history"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dbPath := flags.String("db", "", "Path to history database (default: config history.path)")
		format := flags.String("format", "text", "Output format: text|json")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizmd/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		outputFormat := strings.ToLower(strings.TrimSpace(*format))
		if outputFormat != "text" && outputFormat != "json" {
			fmt.Fprintf(stderr, "invalid format %q (expected text|json)\n", *format)
			return ExitUsage
		}

		path := strings.TrimSpace(*dbPath)
		if path == "" {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Config error:\n%v\n", err)
				return ExitError
			}
			path = cfg.History.Path
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(stdout, "No history recorded at %s\n", path)
				return ExitOK
			}
			fmt.Fprintf(stderr, "History error: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		store, err := history.Open(ctx, path)
		if err != nil {
			fmt.Fprintf(stderr, "History error: %v\n", err)
			return ExitError
		}
		defer store.Close()
		summaries, err := store.Summaries(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "History error: %v\n", err)
			return ExitError
		}

		if outputFormat == "json" {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(summaries); err != nil {
				fmt.Fprintf(stderr, "History error: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		printSummaries(stdout, summaries)
		return ExitOK
	}
}

func printSummaries(w io.Writer, summaries []history.DeckSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No answers recorded yet.")
		return
	}
	fmt.Fprintf(w, "%-30s %8s %8s %9s %s\n", "DECK", "ANSWERED", "CORRECT", "ACCURACY", "LAST SEEN")
	for _, summary := range summaries {
		fmt.Fprintf(w, "%-30s %8d %8d %8.0f%% %s\n",
			truncate(summary.Title, 30),
			summary.Answered,
			summary.Correct,
			summary.Accuracy()*100,
			summary.LastSeen.Local().Format("2006-01-02 15:04"),
		)
	}
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return string(runes[:width-1]) + "…"
}
