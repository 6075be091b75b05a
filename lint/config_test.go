package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
		assert.True(t, config.ShouldOpenResultPage())
	}
}

func TestLoadConfigYAML(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, ".bython.yaml", `name: project
format: json
open_result_page: false
result_page: ./res/page.html
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "project", config.Name)
	assert.Equal(t, FormatJSON, config.Format)
	assert.Equal(t, ColorAuto, config.Color, "unset keys keep their defaults")
	assert.False(t, config.ShouldOpenResultPage())
	assert.Equal(t, "./res/page.html", config.ResultPage)
}

func TestLoadConfigEmptyYAML(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(writeTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigTOML(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "bython.toml", `name = "project"
format = "yaml"
color = "never"
open_result_page = true
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, config.Format)
	assert.Equal(t, ColorNever, config.Color)
	assert.True(t, config.ShouldOpenResultPage())
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"bad yaml", "bad.yaml", "format: [json", "failed to parse YAML"},
		{"bad toml", "bad.toml", "format = ", "failed to parse TOML"},
		{"unknown format", "fmt.yaml", "format: xml", `invalid format "xml"`},
		{"unknown color", "color.toml", `color = "sometimes"`, `invalid color mode "sometimes"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadConfig(writeTempFile(t, tt.file, tt.content))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	disabled := false
	want := DefaultConfig()
	want.OpenResultPage = &disabled

	for _, name := range []string{"out.yaml", "out.toml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, WriteConfig(path, want))

		_, err := os.Stat(path)
		require.NoError(t, err)

		got, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}
