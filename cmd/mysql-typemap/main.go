// Package main provides the CLI entrypoint for mysql-typemap.
//
// mysql-typemap shows the MySQL column types chosen for Go value types:
//   - columns: loads Go packages and resolves every exported struct field
//   - lookup: prints the descriptor registered for store type names
//   - types: lists the Go types with a canonical column type
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"mysql-typemap/internal/config"
	"mysql-typemap/typemap"
)

const usage = `usage: mysql-typemap [-v] [-config file] <command> [args]

commands:
  columns [-format text|yaml] [-dump] [-dir dir] <packages...>
  lookup <store-type...>
  types
`

func main() {
	err := mainImpl(os.Args[1:], os.Stdout, os.Stderr)
	if code := exitCode(err); code != 0 {
		fmt.Fprintf(os.Stderr, "mysql-typemap: %v\n", err)
		os.Exit(code)
	}
}

// exitCode maps the result of mainImpl to a process exit status. Help
// requests and interrupts are not failures.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

func mainImpl(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mysql-typemap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	verbose := fs.Bool("v", false, "Enable debug logging")
	configPath := fs.String("config", "", "Path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	logger := newLogger(*verbose)
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", *configPath)
	}

	resolver, err := typemap.New(cfg.Resolver)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "columns":
		return runColumns(ctx, cfg, resolver, logger, rest, stdout, stderr)
	case "lookup":
		return runLookup(resolver, rest, stdout)
	case "types":
		return runTypes(resolver, stdout)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newLogger(verbose bool) *slog.Logger {
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	if verbose {
		ll.Set(slog.LevelDebug)
	}

	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}
