package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "denolint", configBaseName)
	assert.Equal(t, "denolint.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "lint.config", lintConfigKey)
	assert.Equal(t, "lint.default_ignore_dir", defaultIgnoreDirKey)
	assert.Equal(t, "lint.parallel", lintParallelKey)
	assert.Equal(t, "lint.format", lintFormatKey)
	assert.Equal(t, "lint.fail_fast", lintFailFastKey)
	assert.Equal(t, ".denolintrc.json", defaultLintConfig)
	assert.Equal(t, 0, defaultLintParallel)
	assert.Equal(t, "pretty", defaultLintFormat)
	assert.Equal(t, "DENOLINT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "denolint.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	slog.Info("logger configured")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "logger configured")
}

func TestConfigureLogger_DefaultLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "denolint.log"), false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelInfo))
}

func TestExecutableDir(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(exe), executableDir())
}
