package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "deepunit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	includeFlagName     = "include"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	allFlagName         = "all"
	ciFlagName          = "ci"
	baseRefFlagName     = "base-ref"
	maxAttemptsFlagName = "max-attempts"
	dryRunFlagName      = "dry-run"

	workspaceRootKey    = "project.root"
	frameworkKey        = "project.framework"
	frameworkVersionKey = "project.framework_version"
	testFrameworkKey    = "project.test_framework"
	testSuffixKey       = "project.test_suffix"
	scriptTargetKey     = "project.script_target"
	testCommandKey      = "project.test_command"
	minNodeVersionKey   = "project.min_node_version"

	apiHostKey         = "api.host"
	apiTimeoutKey      = "api.timeout"
	apiRetriesKey      = "api.retries"
	apiRetryBackoffKey = "api.retry_backoff"

	maxAttemptsKey = "run.max_attempts"
	ciModeKey      = "run.ci"
	baseRefKey     = "run.base_ref"
	allFilesKey    = "run.all"

	includeConfigKey = "paths.include"
	excludeConfigKey = "paths.exclude"

	defaultReportsDir     = ".deepunit-reports"
	defaultWorkspaceRoot  = "."
	defaultFramework      = "typescript"
	defaultTestFramework  = m.TestFrameworkJest
	defaultTestSuffix     = "test"
	defaultScriptTarget   = "typescript"
	defaultMinNodeVersion = ">= 14.0.0"
	defaultAPIHost        = "https://api.deepunit.dev"
	defaultAPITimeout     = time.Minute * 2
	defaultAPIRetries     = 2
	defaultRetryBackoff   = time.Second * 2
	defaultMaxAttempts    = 7
	defaultBaseRef        = "origin/HEAD"

	envPrefix = "DEEPUNIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".deepunit.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
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
	viper.SetDefault(outputFlagName, defaultReportsDir)

	viper.SetDefault(workspaceRootKey, defaultWorkspaceRoot)
	viper.SetDefault(frameworkKey, defaultFramework)
	viper.SetDefault(frameworkVersionKey, "")
	viper.SetDefault(testFrameworkKey, defaultTestFramework)
	viper.SetDefault(testSuffixKey, defaultTestSuffix)
	viper.SetDefault(scriptTargetKey, defaultScriptTarget)
	viper.SetDefault(testCommandKey, "")
	viper.SetDefault(minNodeVersionKey, defaultMinNodeVersion)

	viper.SetDefault(apiHostKey, defaultAPIHost)
	viper.SetDefault(apiTimeoutKey, int64(defaultAPITimeout.Seconds()))
	viper.SetDefault(apiRetriesKey, defaultAPIRetries)
	viper.SetDefault(apiRetryBackoffKey, int64(defaultRetryBackoff.Seconds()))

	viper.SetDefault(maxAttemptsKey, defaultMaxAttempts)
	viper.SetDefault(ciModeKey, false)
	viper.SetDefault(baseRefKey, defaultBaseRef)
	viper.SetDefault(allFilesKey, false)

	viper.SetDefault(includeConfigKey, []string{})
	viper.SetDefault(excludeConfigKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", configFileName, err)
	}
}

// buildConfig assembles the run configuration from viper. The workspace root
// is made absolute so adapters never depend on the process working directory.
func buildConfig() (m.Config, error) {
	root, err := filepath.Abs(viper.GetString(workspaceRootKey))
	if err != nil {
		return m.Config{}, fmt.Errorf("resolve workspace root: %w", err)
	}

	cfg := m.Config{
		WorkspaceRoot:    m.Path(root),
		Framework:        strings.ToLower(strings.TrimSpace(viper.GetString(frameworkKey))),
		FrameworkVersion: viper.GetString(frameworkVersionKey),
		TestFramework:    strings.ToLower(strings.TrimSpace(viper.GetString(testFrameworkKey))),
		TestSuffix:       viper.GetString(testSuffixKey),
		ScriptTarget:     strings.ToLower(strings.TrimSpace(viper.GetString(scriptTargetKey))),
		APIHost:          viper.GetString(apiHostKey),
		APITimeout:       secondsKey(apiTimeoutKey),
		GenerateRetries:  viper.GetInt(apiRetriesKey),
		RetryBackoff:     secondsKey(apiRetryBackoffKey),
		ClientVersion:    clientVersion(),
		MaxAttempts:      viper.GetInt(maxAttemptsKey),
		TestCommand:      viper.GetString(testCommandKey),
		CIMode:           viper.GetBool(ciModeKey),
		BaseRef:          viper.GetString(baseRefKey),
		AllFiles:         viper.GetBool(allFilesKey),
		Include:          viper.GetStringSlice(includeConfigKey),
		Exclude:          viper.GetStringSlice(excludeConfigKey),
		MinNodeVersion:   viper.GetString(minNodeVersionKey),
	}

	if err := cfg.Validate(); err != nil {
		return m.Config{}, err
	}

	return cfg, nil
}

// secondsKey reads a duration stored as whole seconds. Values carrying a unit
// ("90s", "2m") are accepted as well.
func secondsKey(key string) time.Duration {
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		return 0
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(n) * time.Second
	}

	return viper.GetDuration(key)
}

func clientVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return ""
	}

	return info.Main.Version
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

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
