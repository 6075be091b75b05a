package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/bython/formatter"
	"github.com/gnolang/bython/internal"
	"github.com/gnolang/bython/lint"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run the linter every time a Python file changes",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: " + errMissingPath.Error())
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runWatch(ctx, logger, lint.New(logger), args[0], config.Format, os.Stdout); err != nil {
			logger.Fatal("Failed to watch file", zap.String("file", args[0]), zap.Error(err))
		}
	},
}

// runWatch prints a fresh report every time path is written, until ctx
// is cancelled.
func runWatch(ctx context.Context, logger *zap.Logger, engine lint.WatchEngine, path, format string, stdout io.Writer) error {
	return engine.Watch(ctx, path, func(result *internal.Result, err error) {
		if err != nil {
			logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
			return
		}
		report, err := formatter.Format(result, format)
		if err != nil {
			logger.Error("Error formatting report", zap.String("file", path), zap.Error(err))
			return
		}
		fmt.Fprintf(stdout, "==> %s\n%s", path, report)
	})
}
