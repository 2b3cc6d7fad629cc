package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codemod.dev/pkg/codemod/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "codemod"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dryRunFlagName       = "dry-run"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"
	rootFlagName         = "root"
	patternFlagName      = "pattern"
	defaultOrgIDFlagName = "default-org-id"
	replaceAllFlagName   = "replace-all"
	formatFlagName       = "format"

	stripFileKey       = "strip.file"
	mocksRootKey       = "mocks.root"
	mocksPatternKey    = "mocks.pattern"
	mocksDefaultOrgKey = "mocks.default_org_id"
	mocksReplaceAllKey = "mocks.replace_all"

	defaultDryRun     = false
	defaultMocksRoot  = "."
	defaultReplaceAll = false

	envPrefix = "CODEMOD"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".codemod.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(dryRunFlagName, defaultDryRun)
	viper.SetDefault(stripFileKey, domain.DefaultStripFile)
	viper.SetDefault(mocksRootKey, defaultMocksRoot)
	viper.SetDefault(mocksPatternKey, domain.DefaultMockPattern)
	viper.SetDefault(mocksDefaultOrgKey, domain.DefaultOrgID)
	viper.SetDefault(mocksReplaceAllKey, defaultReplaceAll)

	// log.* keys feed loadLogSettings.
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing or unreadable codemod.yaml leaves the defaults in place.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Ignoring config file", "path", viper.ConfigFileUsed(), "error", err)
		}
	}
}
