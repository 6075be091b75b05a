package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceCodeLineAt(t *testing.T) {
	t.Parallel()

	src := NewSourceCode([]byte("def f():\n    if x:  \n\treturn 1"))
	require.Len(t, src.Lines, 3)

	line, err := src.LineAt(2)
	require.NoError(t, err)
	assert.Equal(t, "if x:", line)

	line, err = src.LineAt(3)
	require.NoError(t, err)
	assert.Equal(t, "return 1", line)

	for _, n := range []int{0, -1, 4} {
		line, err := src.LineAt(n)
		assert.ErrorIs(t, err, ErrLineOutOfRange, "line %d", n)
		assert.Empty(t, line)
	}
}

func TestReadSourceCode(t *testing.T) {
	t.Parallel()

	tempDir := createTempDir(t, "source_test")
	path := writeFile(t, tempDir, "a.py", "x = 1\ny = 2\n")

	src, err := ReadSourceCode(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1", "y = 2", ""}, src.Lines)

	_, err = ReadSourceCode(path + ".missing")
	assert.Error(t, err)
}
