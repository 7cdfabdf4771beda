package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typelint.dev/pkg/typelint/internal/domain"
	m "typelint.dev/pkg/typelint/internal/model"
)

const checkLongDescription = `Validate the shared types tree (default: src) and print a report.

Checks, in order: required files, brace and parenthesis balance, duplicate
exported names per file, unused named imports (warnings), PascalCase names
and the targets of "export * from" lines in aggregator files.

The command exits with status 1 when any issue is found. Warnings never
fail the run.`

var checkRootFlag string
var checkRequiredFlag []string
var checkAggregatorFlag string
var checkDirectoryIndexFlag bool
var checkStrictFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Validate type consistency of the shared types tree",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), checkArgsFromConfig(args), output)
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&checkRootFlag, rootFlagName, viper.GetString(checkRootKey), "root of the types tree")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), checkRootKey)

	cmd.Flags().StringSliceVar(&checkRequiredFlag, requiredFlagName, viper.GetStringSlice(checkRequiredFilesKey), "required files relative to the root")
	bindFlagToConfig(cmd.Flags().Lookup(requiredFlagName), checkRequiredFilesKey)

	cmd.Flags().StringVar(&checkAggregatorFlag, aggregatorFlagName, viper.GetString(checkAggregatorKey), "name of aggregator files whose re-exports are verified")
	bindFlagToConfig(cmd.Flags().Lookup(aggregatorFlagName), checkAggregatorKey)

	cmd.Flags().BoolVar(&checkDirectoryIndexFlag, directoryIndexFlagName, viper.GetBool(checkDirectoryIndexKey), "accept re-exports of a directory holding an aggregator file")
	bindFlagToConfig(cmd.Flags().Lookup(directoryIndexFlagName), checkDirectoryIndexKey)

	cmd.Flags().BoolVar(&checkStrictFlag, strictFlagName, viper.GetBool(checkStrictKey), "check syntax with a TypeScript parser instead of bracket counting")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), checkStrictKey)
}

func checkArgsFromConfig(args []string) domain.CheckArgs {
	root := viper.GetString(checkRootKey)
	if len(args) > 0 {
		root = args[0]
	}

	return domain.CheckArgs{
		Root:           m.Path(root),
		RequiredFiles:  viper.GetStringSlice(checkRequiredFilesKey),
		AggregatorName: viper.GetString(checkAggregatorKey),
		DirectoryIndex: viper.GetBool(checkDirectoryIndexKey),
		Exclude:        viper.GetStringSlice(excludeConfigKey),
		Strict:         viper.GetBool(checkStrictKey),
	}
}
