package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "demorun.dev/pkg/demorun/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "demorun", configBaseName)
	assert.Equal(t, "demorun.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "format", formatFlagName)
	assert.Equal(t, "verbose", verboseFlagName)
	assert.Equal(t, "runs", checkRunsFlagName)
	assert.Equal(t, "check.runs", checkRunsConfigKey)
	assert.Equal(t, m.FormatText, defaultFormat)
	assert.Equal(t, 2, defaultCheckRuns)
	assert.Equal(t, "DEMORUN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "info", viper.GetString(logLevelKey))
	assert.Equal(t, 10, viper.GetInt(logMaxSizeKey))
	assert.Equal(t, 3, viper.GetInt(logMaxBackupsKey))
	assert.Equal(t, 28, viper.GetInt(logMaxAgeKey))
	assert.True(t, viper.GetBool(logCompressKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"blank uses default", "   ", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error padded", " error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestLogLevel(t *testing.T) {
	previous := viper.GetString(logLevelKey)
	t.Cleanup(func() { viper.Set(logLevelKey, previous) })

	viper.Set(logLevelKey, "warn")
	assert.Equal(t, slog.LevelWarn, logLevel(false))
	assert.Equal(t, slog.LevelDebug, logLevel(true))

	viper.Set(logLevelKey, "")
	assert.Equal(t, slog.LevelInfo, logLevel(false))
}

func TestNewLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazy.log")

	writer := newLogFile(path)
	assert.Equal(t, path, writer.Filename)
	assert.Equal(t, defaultLogMaxBackups, writer.MaxBackups)

	_, err := os.Stat(path)
	require.ErrorIs(t, err, fs.ErrNotExist, "file is created on first write only")

	assert.Equal(t, defaultLogFilename, newLogFile("  ").Filename)
}

func TestIsConfigNotFound(t *testing.T) {
	assert.True(t, isConfigNotFound(viper.ConfigFileNotFoundError{}))
	assert.True(t, isConfigNotFound(&fs.PathError{Op: "open", Path: configFileName, Err: fs.ErrNotExist}))
	assert.False(t, isConfigNotFound(errors.New("yaml: line 1: did not find expected key")))
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "demorun.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))

	slog.Debug("logger check", "key", "value")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "logger check")
	assert.Contains(t, string(contents), "key=value")
}

func TestConfigureLogger_LevelFromConfig(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	viper.Set(logLevelKey, "error")
	t.Cleanup(func() { viper.Set(logLevelKey, defaultLogLevel) })

	configureLogger(filepath.Join(t.TempDir(), "demorun.log"), false)

	assert.False(t, globalLogger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelError))
}
