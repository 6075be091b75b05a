package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnolang/bython/internal"
	"github.com/gnolang/bython/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLintEngine struct {
	mock.Mock
}

func (m *mockLintEngine) Run(ctx context.Context, filePath string) (*internal.Result, error) {
	args := m.Called(ctx, filePath)
	result, _ := args.Get(0).(*internal.Result)
	return result, args.Error(1)
}

func (m *mockLintEngine) RunSource(ctx context.Context, source []byte) (*internal.Result, error) {
	args := m.Called(ctx, source)
	result, _ := args.Get(0).(*internal.Result)
	return result, args.Error(1)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "test.py", "def f():\n    pass\n")
	expected := &internal.Result{
		Filename: path,
		Issues:   types.Issues{{Rule: "missing-docstring", Message: "function \"f\" lacks a docstring", Line: 1}},
	}

	ctx := context.Background()
	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", ctx, path).Return(expected, nil)

	logger, _ := zap.NewProduction()
	result, err := ProcessFile(ctx, logger, mockEngine, path)

	assert.NoError(t, err)
	assert.Same(t, expected, result)
	mockEngine.AssertExpectations(t)
}

func TestProcessFileEngineError(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "broken.py", "def f(:\n")
	ctx := context.Background()
	boom := errors.New("boom")

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", ctx, path).Return(nil, boom)

	result, err := ProcessFile(ctx, nil, mockEngine, path)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
	mockEngine.AssertExpectations(t)
}

func TestProcessFileRejectsMissingAndDirectories(t *testing.T) {
	t.Parallel()

	mockEngine := new(mockLintEngine)
	ctx := context.Background()

	_, err := ProcessFile(ctx, nil, mockEngine, filepath.Join(t.TempDir(), "missing.py"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ProcessFile(ctx, nil, mockEngine, t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	mockEngine.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestProcessSource(t *testing.T) {
	t.Parallel()

	source := []byte("if x:\n    pass\n")
	expected := &internal.Result{Issues: types.Issues{{Rule: "conditional-statement", Line: 1}}}

	ctx := context.Background()
	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", ctx, source).Return(expected, nil)

	result, err := ProcessSource(ctx, mockEngine, source)
	assert.NoError(t, err)
	assert.Same(t, expected, result)
}

func TestNewEngineEndToEnd(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "module.py", `def documented():
    """Return one, always, no matter what the caller passes in here.

    >>> documented()
    1
    """
    return 1


def bare():
    pass
`)

	result, err := ProcessFile(context.Background(), nil, New(nil), path)
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, 10, result.Issues[0].Line)
	assert.Equal(t, "missing-docstring", result.Issues[0].Rule)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()

	assert.True(t, hasDesiredExtension("a/b/c.py"))
	assert.True(t, hasDesiredExtension("stubs.pyi"))
	assert.False(t, hasDesiredExtension("main.go"))
	assert.False(t, hasDesiredExtension("README"))
}
