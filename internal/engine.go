package internal

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/gnolang/bython/internal/pyparse"
	tt "github.com/gnolang/bython/internal/types"
)

// Engine manages the linting process for a single Python file.
type Engine struct {
	logger *zap.Logger
	walker *Walker
}

// Result is the outcome of analyzing one source.
type Result struct {
	// Filename is empty when the source did not come from a file.
	Filename string
	Source   *SourceCode
	Issues   tt.Issues
}

// NewEngine creates a new lint engine. A nil logger discards log output.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger: logger,
		walker: NewWalker(logger),
	}
}

// Run reads, parses and analyzes the given file.
func (e *Engine) Run(ctx context.Context, filename string) (*Result, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	result, err := e.analyze(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("error analyzing %s: %w", filename, err)
	}
	result.Filename = filename
	return result, nil
}

// RunSource parses and analyzes source held in memory.
func (e *Engine) RunSource(ctx context.Context, source []byte) (*Result, error) {
	return e.analyze(ctx, source)
}

func (e *Engine) analyze(ctx context.Context, source []byte) (*Result, error) {
	start := time.Now()

	tree, err := pyparse.Parse(ctx, source)
	if err != nil {
		return nil, err
	}

	issues := e.walker.Analyze(tree)
	e.logger.Debug("Analysis finished",
		zap.Int("issues", len(issues)),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		Source: NewSourceCode(source),
		Issues: issues,
	}, nil
}
