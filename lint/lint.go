package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gnolang/bython/internal"
)

// LintEngine analyzes one Python source per call.
type LintEngine interface {
	Run(ctx context.Context, filePath string) (*internal.Result, error)
	RunSource(ctx context.Context, source []byte) (*internal.Result, error)
}

// WatchEngine is a LintEngine that can follow a file as it changes.
type WatchEngine interface {
	LintEngine
	Watch(ctx context.Context, filename string, onResult func(*internal.Result, error)) error
}

// New creates the default lint engine.
func New(logger *zap.Logger) *internal.Engine {
	return internal.NewEngine(logger)
}

// ProcessFile analyzes a single file.
func ProcessFile(ctx context.Context, logger *zap.Logger, engine LintEngine, path string) (*internal.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a single source file", path)
	}
	if !hasDesiredExtension(path) && logger != nil {
		logger.Warn("File does not look like Python source", zap.String("file", path))
	}

	result, err := engine.Run(ctx, path)
	if err != nil {
		if logger != nil {
			logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

// ProcessSource analyzes source held in memory.
func ProcessSource(ctx context.Context, engine LintEngine, source []byte) (*internal.Result, error) {
	return engine.RunSource(ctx, source)
}

var desiredExtensions = map[string]bool{
	".py":  true,
	".pyi": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
