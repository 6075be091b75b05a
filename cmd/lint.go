package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/bython/formatter"
	"github.com/gnolang/bython/internal/resultpage"
	"github.com/gnolang/bython/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Run the linter on a Python file",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		opts := lintOptions{
			format:     config.Format,
			output:     outPath,
			openPage:   config.ShouldOpenResultPage(),
			resultPage: config.ResultPage,
			opener:     resultpage.BrowserOpener(),
		}
		count, err := runLint(ctx, logger, lint.New(logger), args, opts, os.Stdout)
		if errors.Is(err, errMissingPath) {
			fmt.Println("error: " + err.Error())
			os.Exit(1)
		}
		if err != nil {
			logger.Error("Error processing file", zap.Error(err))
			os.Exit(1)
		}
		if count > 0 {
			os.Exit(1)
		}
	},
}

type lintOptions struct {
	format     string
	output     string
	openPage   bool
	resultPage string
	opener     resultpage.Opener
}

// runLint analyzes the single file in args, writes the report and opens
// the result page. It returns the number of issues found.
func runLint(
	ctx context.Context,
	logger *zap.Logger,
	engine lint.LintEngine,
	args []string,
	opts lintOptions,
	stdout io.Writer,
) (int, error) {
	if len(args) == 0 {
		return 0, errMissingPath
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("expected a single file path, got %d", len(args))
	}

	result, err := lint.ProcessFile(ctx, logger, engine, args[0])
	if err != nil {
		return 0, err
	}

	report, err := formatter.Format(result, opts.format)
	if err != nil {
		return 0, err
	}
	if err := writeReport(report, opts.output, stdout); err != nil {
		return 0, err
	}

	if opts.openPage {
		u, err := resultpage.Open(opts.opener, "", opts.resultPage)
		if err != nil {
			logger.Warn("Could not open result page", zap.Error(err))
		} else {
			logger.Debug("Opened result page", zap.String("url", u))
		}
	}

	return len(result.Issues), nil
}

func writeReport(report, output string, stdout io.Writer) error {
	if output == "" {
		_, err := io.WriteString(stdout, report)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(report); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
