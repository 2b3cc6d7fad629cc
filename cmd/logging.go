package cmd

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalLogger *slog.Logger

// logSettings is the resolved log.* configuration.
type logSettings struct {
	Filename   string
	Level      slog.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// loadLogSettings reads the log.* keys. A non-blank logPath replaces
// log.filename and verbose forces the debug level.
func loadLogSettings(logPath string, verbose bool) logSettings {
	settings := logSettings{
		Filename:   strings.TrimSpace(logPath),
		Level:      parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	if settings.Filename == "" {
		settings.Filename = strings.TrimSpace(viper.GetString(logFilenameKey))
	}

	if settings.Filename == "" {
		settings.Filename = defaultLogFilename
	}

	if verbose {
		settings.Level = slog.LevelDebug
	}

	return settings
}

func (s logSettings) writer() *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   s.Filename,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   s.Compress,
	}
}

// parseSlogLevel accepts slog level names (with offsets such as "debug+2"),
// "warning" and plain integers.
func parseSlogLevel(value string, fallback slog.Level) slog.Level {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "warning") {
		value = "warn"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err == nil {
		return level
	}

	if n, err := strconv.Atoi(value); err == nil {
		return slog.Level(n)
	}

	return fallback
}

// configureLogger points the default slog logger at the rotating log file.
// Console output never goes through it.
func configureLogger(logPath string, verbose bool) {
	settings := loadLogSettings(logPath, verbose)

	handler := slog.NewTextHandler(settings.writer(), &slog.HandlerOptions{
		AddSource: true,
		Level:     settings.Level,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
