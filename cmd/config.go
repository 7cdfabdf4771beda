package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"typelint.dev/pkg/typelint/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "typelint"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	formatFlagName      = "format"
	interactiveFlagName = "interactive"
	excludeFlagName     = "exclude"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	rootFlagName           = "root"
	requiredFlagName       = "require"
	aggregatorFlagName     = "aggregator"
	directoryIndexFlagName = "directory-index"
	strictFlagName         = "strict"

	treeAFlagName          = "tree-a"
	treeBFlagName          = "tree-b"
	docsFlagName           = "docs"
	failOnConflictFlagName = "fail-on-conflict"

	dryRunFlagName     = "dry-run"
	packageDirFlagName = "package-dir"
	changelogFlagName  = "changelog"

	formatConfigKey      = "output.format"
	interactiveConfigKey = "output.interactive"
	excludeConfigKey     = "paths.exclude"

	checkRootKey           = "check.root"
	checkRequiredFilesKey  = "check.required_files"
	checkAggregatorKey     = "check.aggregator.name"
	checkDirectoryIndexKey = "check.aggregator.directory_index"
	checkStrictKey         = "check.strict"

	extractARootKey          = "extract.a.root"
	extractALabelKey         = "extract.a.label"
	extractAPatternsKey      = "extract.a.patterns"
	extractBRootKey          = "extract.b.root"
	extractBLabelKey         = "extract.b.label"
	extractBPatternsKey      = "extract.b.patterns"
	extractDocsKey           = "extract.docs"
	extractStrictKey         = "extract.strict"
	extractFailOnConflictKey = "extract.fail_on_conflict"

	releasePackageDirKey = "release.package_dir"
	releaseChangelogKey  = "release.changelog"
	releaseBranchesKey   = "release.branches"
	releaseTimeoutKey    = "release.timeout"
	releaseCommandsKey   = "release.commands"

	defaultFormat         = "text"
	defaultCheckRoot      = "src"
	defaultExtractARoot   = "../backend/src"
	defaultExtractALabel  = "backend"
	defaultExtractBRoot   = "../frontend/src"
	defaultExtractBLabel  = "frontend"
	defaultExtractDocs    = "docs/extracted-types.md"
	defaultPackageDir     = "."
	defaultChangelog      = "CHANGELOG.md"
	defaultReleaseTimeout = 10 * time.Minute

	envPrefix = "TYPELINT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".typelint.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultRequiredFiles = []string{
		"index.ts",
		"core/index.ts",
		"core/entities/index.ts",
		"core/enums/index.ts",
		"core/interfaces/index.ts",
		"modules/index.ts",
		"utils/index.ts",
	}
	defaultExtractAPatterns = []string{"*.dto.ts", "*.entity.ts", "*.interface.ts"}
	defaultExtractBPatterns = []string{"*.types.ts", "*.interface.ts"}
	defaultReleaseBranches  = []string{"main", "master"}
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
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(interactiveConfigKey, false)
	viper.SetDefault(excludeConfigKey, []string{})

	viper.SetDefault(checkRootKey, defaultCheckRoot)
	viper.SetDefault(checkRequiredFilesKey, defaultRequiredFiles)
	viper.SetDefault(checkAggregatorKey, domain.DefaultAggregatorName)
	viper.SetDefault(checkDirectoryIndexKey, false)
	viper.SetDefault(checkStrictKey, false)

	viper.SetDefault(extractARootKey, defaultExtractARoot)
	viper.SetDefault(extractALabelKey, defaultExtractALabel)
	viper.SetDefault(extractAPatternsKey, defaultExtractAPatterns)
	viper.SetDefault(extractBRootKey, defaultExtractBRoot)
	viper.SetDefault(extractBLabelKey, defaultExtractBLabel)
	viper.SetDefault(extractBPatternsKey, defaultExtractBPatterns)
	viper.SetDefault(extractDocsKey, defaultExtractDocs)
	viper.SetDefault(extractStrictKey, false)
	viper.SetDefault(extractFailOnConflictKey, false)

	viper.SetDefault(releasePackageDirKey, defaultPackageDir)
	viper.SetDefault(releaseChangelogKey, defaultChangelog)
	viper.SetDefault(releaseBranchesKey, defaultReleaseBranches)
	viper.SetDefault(releaseTimeoutKey, int64(defaultReleaseTimeout.Seconds()))

	for name, commands := range releaseCommandDefaults() {
		viper.SetDefault(releaseCommandsKey+"."+name, commands)
	}

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
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func releaseCommandDefaults() map[string][]string {
	defaults := domain.DefaultReleaseCommands()

	return map[string][]string{
		"status":  defaults.Status,
		"branch":  defaults.Branch,
		"test":    defaults.Test,
		"clean":   defaults.Clean,
		"build":   defaults.Build,
		"commit":  defaults.Commit,
		"tag":     defaults.Tag,
		"whoami":  defaults.Whoami,
		"publish": defaults.Publish,
		"push":    defaults.Push,
	}
}

// releaseCommandsFromConfig reads release.commands.*. A key set to a plain
// string is treated as a single command line.
func releaseCommandsFromConfig() domain.ReleaseCommands {
	get := func(name string) []string {
		key := releaseCommandsKey + "." + name
		if single, ok := viper.Get(key).(string); ok {
			return []string{single}
		}

		return viper.GetStringSlice(key)
	}

	return domain.ReleaseCommands{
		Status:  get("status"),
		Branch:  get("branch"),
		Test:    get("test"),
		Clean:   get("clean"),
		Build:   get("build"),
		Commit:  get("commit"),
		Tag:     get("tag"),
		Whoami:  get("whoami"),
		Publish: get("publish"),
		Push:    get("push"),
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
