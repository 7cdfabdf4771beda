// Package cmd provides the root command and CLI setup for typelint.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"typelint.dev/pkg/typelint/internal/adapter"
	"typelint.dev/pkg/typelint/internal/controller"
	"typelint.dev/pkg/typelint/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var tsAdapter adapter.TypeScriptAdapter
var commandRunner adapter.CommandRunnerAdapter
var checker domain.Checker
var extractor domain.Extractor
var releaser domain.Releaser
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for every command.
var excludePatterns []string

var formatFlag string
var interactiveFlag bool
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tsAdapter = adapter.NewLocalTypeScriptAdapter()
	commandRunner = adapter.NewLocalCommandRunnerAdapter(time.Duration(viper.GetInt64(releaseTimeoutKey)) * time.Second)
	checker = domain.NewChecker(fsAdapter, tsAdapter)
	extractor = domain.NewExtractor(fsAdapter, tsAdapter)
	releaser = domain.NewReleaser(fsAdapter, checker, extractor, domain.CommandToolchainFactory(fsAdapter, commandRunner))
	workflow = domain.NewWorkflow(
		fsAdapter,
		ui,
		checker,
		extractor,
		releaser,
	)
}

const excludePatternsHelp = `Exclude patterns are globs matched against paths relative to the scanned
root and against base names:
  - generated/**     skip a whole directory
  - *.spec.ts        skip files by name`

const rootLongDescription = `Typelint guards a shared TypeScript types package. It checks the package
for structural consistency, compares the types declared by a backend and a
frontend tree, and drives the package release.

` + excludePatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "typelint",
		Short:         "Consistency checks for shared TypeScript types",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: text, json or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().BoolVarP(&interactiveFlag, interactiveFlagName, "i", viper.GetBool(interactiveConfigKey), "page text output when attached to a terminal")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(interactiveFlagName), interactiveConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func outputArgsFromConfig() (domain.OutputArgs, error) {
	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return domain.OutputArgs{}, err
	}

	return domain.OutputArgs{
		Format:      format,
		Interactive: viper.GetBool(interactiveConfigKey),
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}

// printError reports a command failure followed by the hints attached to it.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
