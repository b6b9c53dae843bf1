package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "leapscaffold.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.StringP("scaffold", "s", "", "")
	flags.StringP("dir", "d", "", "")
	flags.Bool("indent", false, "")
	flags.Duration("debounce", 0, "")
	flags.StringArray("var", nil, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultScaffold, cfg.DefaultScaffold)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Indent)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, `output: json
default_scaffold: rest-api
destination: projects
indent: true
vars:
  author: Sam
  year: 2024
scaffolds:
  internal:
    path: templates/internal
    description: Company service layout
watch:
  debounce: 1s
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "rest-api", cfg.DefaultScaffold)
	assert.True(t, cfg.Indent)
	assert.Equal(t, map[string]string{"author": "Sam", "year": "2024"}, cfg.Vars)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, path, GetConfigFileUsed())

	// Relative paths in the file resolve against the file's directory.
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, "projects"), cfg.Destination)
	require.Contains(t, cfg.Scaffolds, "internal")
	assert.Equal(t, filepath.Join(dir, "templates", "internal"), cfg.Scaffolds["internal"].Path)
	assert.Equal(t, "Company service layout", cfg.Scaffolds["internal"].Description)
}

func TestLoadConfig_SearchesUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	writeConfig(t, root, "default_scaffold: rest-api\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "rest-api", cfg.DefaultScaffold)
	assert.Equal(t, filepath.Join(root, "leapscaffold.yaml"), GetConfigFileUsed())
}

func TestLoadConfig_YmlExtension(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapscaffold.yml"), []byte("indent: true\n"), 0600))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Indent)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "default_scaffold: from_file\n")
	t.Setenv("LEAPSCAFFOLD_DEFAULT_SCAFFOLD", "from_env")

	flags := testFlags()
	require.NoError(t, flags.Set("scaffold", "from_flag"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from_flag", cfg.DefaultScaffold, "flag value should override config file and env var")
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "default_scaffold: from_file\n")
	t.Setenv("LEAPSCAFFOLD_DEFAULT_SCAFFOLD", "from_env")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.DefaultScaffold, "env var should override config file")
}

func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "default_scaffold: from_file\n")
	t.Setenv("LEAPSCAFFOLD_DEFAULT_SCAFFOLD", "from_env")

	cfg, err := LoadConfig(path, testFlags())
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.DefaultScaffold, "env var should be used when flag is not set")
}

func TestLoadConfig_NestedEnvKeys(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("LEAPSCAFFOLD_WATCH__DEBOUNCE", "2s")
	t.Setenv("LEAPSCAFFOLD_VARS__AUTHOR", "Sam")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "Sam", cfg.Vars["author"])
}

func TestLoadConfig_DestinationFromFlagStaysRelative(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "destination: from_file\n")

	flags := testFlags()
	require.NoError(t, flags.Set("dir", "out"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Destination)
}

func TestLoadConfig_CommandLocalFlagsIgnored(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	flags := testFlags()
	require.NoError(t, flags.Set("var", "author=Sam"))
	require.NoError(t, flags.Set("debounce", "50ms"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Empty(t, cfg.Vars)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"unknown output", "output: yaml\n", "unknown output format"},
		{"negative debounce", "watch:\n  debounce: -1s\n", "must not be negative"},
		{"scaffold without path", "scaffolds:\n  mine:\n    description: x\n", "scaffolds.mine.path is required"},
		{"bad yaml", "output: [\n", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := LoadConfig(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.OutputFormat = "html"
	cfg.Watch.Debounce = -time.Second
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))

	GetLogger(ctx).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	quiet.Info("hidden")
	quiet.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
