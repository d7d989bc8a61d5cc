// Command svcmerge merges versioned flat-text service listings
// (name<TAB>id, one file per build) into a single table and renders it as
// markdown, csv, json, yaml, or an interactive html page.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

// Exit codes, one per failure class.
const (
	exitOK = iota
	exitNoInput
	exitBadArgs
	exitNoSources
	exitDirAccess
	exitIngest
	exitWriteOutput
)

// CLI flags parsed from command line.
type cliFlags struct {
	Dir      string
	Output   string
	Format   string
	Title    string
	Validate bool
	Verbose  bool
	ServeMCP bool
	Version  bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		code := exitBadArgs
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}

// exitError pairs a failure with its process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitErrf(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("svcmerge", flag.ContinueOnError)
	fs.StringVar(&flags.Dir, "dir", "", "directory containing versioned service listings (*.txt)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: services.<ext> in the working directory)")
	fs.StringVar(&flags.Format, "format", "", "output format: markdown, csv, json, yaml, html (default: markdown)")
	fs.StringVar(&flags.Title, "title", "", "page title for the html format")
	fs.BoolVar(&flags.Validate, "validate", false, "ingest only: report per-source stats, write no output file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log skipped lines and ingest details")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return exitErrf(exitBadArgs, "%v", err)
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}
	if flags.Dir == "" && fs.NArg() > 0 {
		flags.Dir = fs.Arg(0)
	}

	logger := newLogger(flags.Verbose)

	if flags.ServeMCP {
		return runServeMCP(logger)
	}
	if flags.Dir == "" {
		return exitErrf(exitNoInput, "no input directory given (use -dir or a positional argument)")
	}
	return runMerge(flags, logger)
}

// newLogger builds the stderr logger. Normal runs only surface warnings;
// -verbose lowers the level to debug so skipped lines become visible.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
