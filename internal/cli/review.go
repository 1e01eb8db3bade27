package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"quizmd/internal/history"
	"quizmd/internal/question"
	"quizmd/internal/review"
	"quizmd/internal/ui/quiz"
)

// reviewInput allows tests to override stdin for the review loop.
var reviewInput io.Reader = os.Stdin

// runLiveReview is a test seam for the Bubble Tea review UI.
var runLiveReview = quiz.Run

// reviewOptions are the resolved review settings.
type reviewOptions struct {
	strict  bool
	shuffle bool
	seed    int64
	noColor bool
	verbose bool
}

// runReview builds the handler for the review command.
func runReview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config or auto)")
		shuffle := flags.Bool("shuffle", false, "Shuffle question order")
		seed := flags.Int64("seed", 0, "Shuffle seed (default: time based)")
		strict := flags.Bool("strict", false, "Refuse decks that fail checks")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Print diagnostic lines (forces plain UI)")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizmd/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		mode := *uiMode
		if mode == "" {
			mode = cfg.Review.UI
		}
		decision, err := resolveUIMode(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		logVerbose(*verbose, stderr, *noColor, "ui mode: %s", decision.reason)

		opts := reviewOptions{
			strict:  *strict || cfg.Review.Strict,
			shuffle: *shuffle || cfg.Review.Shuffle,
			seed:    *seed,
			noColor: *noColor || cfg.Review.NoColor,
			verbose: *verbose,
		}
		if opts.seed == 0 {
			opts.seed = time.Now().UnixNano()
		}

		ctx := context.Background()
		var store *history.Store
		if cfg.History.Enabled {
			store, err = history.Open(ctx, cfg.History.Path)
			if err != nil {
				fmt.Fprintf(stderr, "History error: %v\n", err)
				return ExitError
			}
			defer store.Close()
			logVerbose(opts.verbose, stderr, opts.noColor, "recording answers to %s", cfg.History.Path)
		}
		sessionOptions := historySessionOptions(ctx, store, stderr)

		path := flags.Arg(0)
		if !decision.useLive {
			if path == "" {
				fmt.Fprintln(stderr, "Missing <file.md>")
				printCommandUsage(cmd, stderr)
				return ExitUsage
			}
			deck, err := prepareDeck(path, opts)
			if err != nil {
				fmt.Fprintf(stderr, "Review failed: %v\n", err)
				return ExitError
			}
			if len(deck.Questions) == 0 {
				fmt.Fprintln(stderr, "Review failed: no questions found")
				return ExitError
			}
			logVerbose(opts.verbose, stderr, opts.noColor, "loaded %s: %d questions, key %s", path, len(deck.Questions), deck.Key)
			session := review.New(deck.Questions, sessionOptions(deck)...)
			return runPlainReview(reviewInput, stdout, deck, session, paletteFor(stdout, opts.noColor))
		}

		uiOpts := quiz.Options{
			NoColor: opts.noColor,
			Load: func(path string) (question.Deck, error) {
				return prepareDeck(path, opts)
			},
			SessionOptions: sessionOptions,
		}
		if path != "" {
			deck, err := prepareDeck(path, opts)
			if err != nil {
				fmt.Fprintf(stderr, "Review failed: %v\n", err)
				return ExitError
			}
			if len(deck.Questions) > 0 {
				uiOpts.Deck = &deck
			}
		}
		if err := runLiveReview(ctx, reviewInput, stdout, uiOpts); err != nil {
			fmt.Fprintf(stderr, "Review failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// prepareDeck loads a deck and applies strict checks and shuffling.
func prepareDeck(path string, opts reviewOptions) (question.Deck, error) {
	deck, err := question.LoadDeck(path)
	if err != nil {
		return question.Deck{}, err
	}
	if opts.strict {
		if err := question.Check(deck); err != nil {
			return question.Deck{}, err
		}
	}
	if opts.shuffle {
		deck = question.ShuffleDeck(deck, rand.New(rand.NewSource(opts.seed)))
	}
	return deck, nil
}

// historySessionOptions attaches a history observer to every new session
// when store is non-nil.
func historySessionOptions(ctx context.Context, store *history.Store, stderr io.Writer) func(question.Deck) []review.Option {
	return func(deck question.Deck) []review.Option {
		if store == nil {
			return nil
		}
		if _, _, err := store.UpsertDeck(ctx, deck); err != nil {
			fmt.Fprintf(stderr, "History error: %v\n", err)
		}
		onError := func(err error) {
			fmt.Fprintf(stderr, "History error: %v\n", err)
		}
		return []review.Option{review.WithObserver(store.Observer(ctx, uuid.NewString(), deck, onError))}
	}
}
