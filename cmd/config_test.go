package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "codemod", configBaseName)
	assert.Equal(t, "codemod.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "dry-run", dryRunFlagName)
	assert.Equal(t, "strip.file", stripFileKey)
	assert.Equal(t, "mocks.pattern", mocksPatternKey)
	assert.Equal(t, "mocks.root", mocksRootKey)
	assert.Equal(t, "mocks.default_org_id", mocksDefaultOrgKey)
	assert.Equal(t, "mocks.replace_all", mocksReplaceAllKey)
	assert.Equal(t, "CODEMOD", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "app/routes/tenant/settings/integrations.tsx", viper.GetString(stripFileKey))
	assert.Equal(t, "tests/integration/**/*.ts", viper.GetString(mocksPatternKey))
	assert.Equal(t, `"org-uuid-123"`, viper.GetString(mocksDefaultOrgKey))
	assert.Equal(t, ".codemod.log", viper.GetString(logFilenameKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"info+2", slog.LevelInfo + 2},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestLoadLogSettings(t *testing.T) {
	t.Run("flag path wins", func(t *testing.T) {
		settings := loadLogSettings(" custom.log ", false)
		assert.Equal(t, "custom.log", settings.Filename)
		assert.Equal(t, slog.LevelInfo, settings.Level)
		assert.Equal(t, defaultLogMaxSize, settings.MaxSize)
		assert.Equal(t, defaultLogMaxBackups, settings.MaxBackups)
		assert.Equal(t, defaultLogMaxAge, settings.MaxAge)
		assert.True(t, settings.Compress)
	})

	t.Run("falls back to log.filename", func(t *testing.T) {
		settings := loadLogSettings("", true)
		assert.Equal(t, viper.GetString(logFilenameKey), settings.Filename)
		assert.Equal(t, slog.LevelDebug, settings.Level)
	})
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "codemod.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))

	slog.Debug("rule applied", "rule", "api-keys-loader")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "rule=api-keys-loader")

	configureLogger(logPath, false)
	assert.False(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelInfo))
}
