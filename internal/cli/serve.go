package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"quizmd/internal/history"
	"quizmd/internal/logging"
	"quizmd/internal/server"
)

// serveAPI is a test seam for running the HTTP server.
var serveAPI = server.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "", "Address to listen on (default: config or 127.0.0.1:8080)")
		strict := fs.Bool("strict", false, "Reject uploads that fail deck checks")
		configPath := fs.String("config", "", "Path to config file (default: search for .quizmd/config.yml)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		if *addr != "" {
			cfg.Server.Addr = *addr
		}

		provider, err := logging.NewProvider(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serverCfg := server.Config{
			Addr:           cfg.Server.Addr,
			MaxUploadBytes: cfg.Server.MaxUploadBytes,
			CORSOrigins:    cfg.Server.CORSOrigins,
			MaxSessions:    cfg.Server.MaxSessions,
			SessionTTL:     cfg.Server.SessionTTL,
			Strict:         *strict || cfg.Review.Strict,
			Logger:         logging.ModuleLogger(provider, "server"),
		}
		if cfg.History.Enabled {
			store, err := history.Open(ctx, cfg.History.Path)
			if err != nil {
				fmt.Fprintf(stderr, "History error: %v\n", err)
				return ExitError
			}
			defer store.Close()
			serverCfg.History = store
		}

		fmt.Fprintf(stdout, "Serving review API at http://%s\n", serverCfg.Addr)
		if err := serveAPI(ctx, serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
