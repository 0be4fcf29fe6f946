package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"demorun.dev/pkg/demorun/internal/domain"
	m "demorun.dev/pkg/demorun/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "demorun"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	formatFlagName    = "format"
	verboseFlagName   = "verbose"
	checkRunsFlagName = "runs"

	checkRunsConfigKey = "check.runs"

	defaultFormat    = m.FormatText
	defaultCheckRuns = domain.MinCheckRuns

	envPrefix = "DEMORUN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".demorun.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configDefaults is written by `demorun init` and seeds every viper lookup.
var configDefaults = map[string]any{
	configVersionKey:   currentConfigVersion,
	formatFlagName:     string(defaultFormat),
	checkRunsConfigKey: defaultCheckRuns,
	logFilenameKey:     defaultLogFilename,
	logLevelKey:        defaultLogLevel,
	logVerboseKey:      defaultLogVerbose,
	logMaxSizeKey:      defaultLogMaxSize,
	logMaxBackupsKey:   defaultLogMaxBackups,
	logMaxAgeKey:       defaultLogMaxAge,
	logCompressKey:     defaultLogCompress,
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	for key, value := range configDefaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil && !isConfigNotFound(err) {
		slog.Warn("failed to read config file, using defaults", "file", configFileName, "error", err)
	}
}

// isConfigNotFound reports whether err means there is no config file to read.
// SetConfigFile makes viper report a plain fs error instead of its own type.
func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// parseSlogLevel accepts level names (debug, info, warn, error) or numeric
// slog levels such as -4.
func parseSlogLevel(value string, fallback slog.Level) slog.Level {
	name := strings.ToLower(strings.TrimSpace(value))

	switch name {
	case "":
		return fallback
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	n, err := strconv.Atoi(name)
	if err != nil {
		return fallback
	}

	return slog.Level(n)
}

// logLevel is Debug when verbose, otherwise the configured log.level.
func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
}

// newLogFile returns a rotating writer for path. lumberjack creates the file
// on first write, so a run that logs nothing at the active level leaves no file.
func newLogFile(path string) *lumberjack.Logger {
	if strings.TrimSpace(path) == "" {
		path = defaultLogFilename
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}
}

// configureLogger points the default slog logger at the rotating log file.
// Stdout belongs to command output and never receives log records.
func configureLogger(logPath string, verbose bool) {
	handler := slog.NewTextHandler(newLogFile(logPath), &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel(verbose),
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
