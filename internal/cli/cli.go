package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eleven-am/stepgraph/internal/domain"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed form of a command line.
type Options struct {
	DefinitionPath string
	RecordsPath    string
	SessionID      string
	Pretty         bool
	Config         *domain.Config
}

// Parse processes command-line arguments. It returns the parsed options, a
// flag reporting that the program should exit cleanly (help was printed), or
// an ExitError for bad usage.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("stepgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stepgraph - Lay out a workflow step graph annotated with execution status.

Usage:
  stepgraph [options] DEFINITION_PATH

Arguments:
  DEFINITION_PATH
    Path to a graph definition (.json, .hcl or .yaml).

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := domain.DefaultConfig()

	recordsFlag := flagSet.String("records", "", "Path to a JSON array of step execution records.")
	sessionFlag := flagSet.String("session", "", "Session ID whose canvas bounds are reused. Empty generates one.")
	dataDirFlag := flagSet.String("data-dir", "", "Badger directory for canvas bounds. Empty keeps them in memory.")
	titleFlag := flagSet.String("title", defaults.Style.Title, "Title attached to the layout.")
	legendFlag := flagSet.Bool("legend", defaults.Style.ShowLegend, "Attach a legend of statuses and edge kinds.")
	themeFlag := flagSet.String("theme", string(defaults.Style.Theme), "Theme hint for the renderer. Options: 'light' or 'dark'.")
	logLevelFlag := flagSet.String("log-level", defaults.Logging.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.Logging.Format, "Log output format. Options: 'text' or 'json'.")
	prettyFlag := flagSet.Bool("pretty", false, "Indent the layout JSON.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing DEFINITION_PATH"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}

	config := domain.DefaultConfig()
	config.Logging.Level = strings.ToLower(*logLevelFlag)
	config.Logging.Format = strings.ToLower(*logFormatFlag)
	config.WithTitle(*titleFlag).
		WithLegend(*legendFlag).
		WithTheme(domain.Theme(strings.ToLower(*themeFlag)))
	if *dataDirFlag != "" {
		config.WithBadgerStorage(*dataDirFlag)
	}

	// Validate needs a logger; the caller builds the real one from Logging.
	config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := config.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	config.Logger = nil

	return &Options{
		DefinitionPath: flagSet.Arg(0),
		RecordsPath:    *recordsFlag,
		SessionID:      *sessionFlag,
		Pretty:         *prettyFlag,
		Config:         config,
	}, false, nil
}

// NewLogger builds a logger for the given level and format. Unknown values
// fall back to info and text.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
