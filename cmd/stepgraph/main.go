package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eleven-am/stepgraph"
	"github.com/eleven-am/stepgraph/internal/cli"
	"github.com/eleven-am/stepgraph/internal/xjson"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run writes the layout for one definition to outW. Logs and usage text go
// to errW so stdout stays valid JSON.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(opts.Config.Logging.Level, opts.Config.Logging.Format, errW)
	opts.Config.Logger = logger

	manager, err := stepgraph.NewWithConfig(opts.Config)
	if err != nil {
		return err
	}
	defer manager.Close()

	layout, err := manager.RenderFiles(ctx, opts.SessionID, opts.DefinitionPath, opts.RecordsPath)
	if err != nil {
		return err
	}

	logger.Info("layout computed",
		slog.String("definition", opts.DefinitionPath),
		slog.Int("nodes", len(layout.Nodes)),
		slog.Int("edges", len(layout.Edges)),
		slog.Float64("width", layout.Width),
		slog.Float64("height", layout.Height))

	return xjson.Encode(outW, layout, opts.Pretty)
}
