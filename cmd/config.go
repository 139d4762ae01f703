package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "apidiff"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	repoFlagName     = "repo"
	outputFlagName   = "output"
	srcFlagName      = "src"
	packagesFlagName = "packages"
	jdiffFlagName    = "jdiff"

	defaultSrcRelPath   = "bindings/java/src"
	defaultPackage      = "org.sleuthkit.datamodel"
	defaultOutputFolder = "apidiff_output"
	defaultJDiffRelPath = "thirdparty/jdiff/v-custom/jdiff.jar"

	envPrefix = "APIDIFF"

	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = false
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(repoFlagName, "")
	viper.SetDefault(outputFlagName, "")
	viper.SetDefault(srcFlagName, defaultSrcRelPath)
	viper.SetDefault(packagesFlagName, []string{defaultPackage})
	viper.SetDefault(jdiffFlagName, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at the run's shared log file.
// Every stage of a run, and the external tool's combined output, land in the
// same file, so rotation is off by default.
func configureLogger(logPath string) {
	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// toolDir returns the directory the executable lives in; the default output
// and jdiff locations are resolved against it.
func toolDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(exe)
}

// resolveOutputPath applies the "next to the program" default when no output
// path was configured.
func resolveOutputPath(configured string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}

	return filepath.Join(toolDir(), defaultOutputFolder)
}

// resolveJDiffPath applies the bundled-jar default when no jdiff path was
// configured.
func resolveJDiffPath(configured string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}

	return filepath.Join(toolDir(), filepath.FromSlash(defaultJDiffRelPath))
}
