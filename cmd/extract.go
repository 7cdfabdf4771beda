package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typelint.dev/pkg/typelint/internal/domain"
	m "typelint.dev/pkg/typelint/internal/model"
)

const extractLongDescription = `Scan tree A (backend) and tree B (frontend) for role files, extract their
exported interfaces, enums, type aliases and classes, and report names
declared in both trees with differing bodies.

Role files are selected by base-name globs (extract.a.patterns and
extract.b.patterns in typelint.yaml). A markdown listing of every extracted
declaration is written to the --docs path; pass --docs "" to skip it.

` + excludePatternsHelp

var extractTreeAFlag string
var extractTreeBFlag string
var extractDocsFlag string
var extractStrictFlag bool
var extractFailOnConflictFlag bool

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract types from two trees and report conflicts",
		Long:  extractLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := outputArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Extract(cmd.Context(), extractArgsFromConfig(), output)
		},
	}

	configureExtractFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func configureExtractFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&extractTreeAFlag, treeAFlagName, viper.GetString(extractARootKey), "root of tree A")
	bindFlagToConfig(cmd.Flags().Lookup(treeAFlagName), extractARootKey)

	cmd.Flags().StringVar(&extractTreeBFlag, treeBFlagName, viper.GetString(extractBRootKey), "root of tree B")
	bindFlagToConfig(cmd.Flags().Lookup(treeBFlagName), extractBRootKey)

	cmd.Flags().StringVar(&extractDocsFlag, docsFlagName, viper.GetString(extractDocsKey), "markdown file listing the extracted types")
	bindFlagToConfig(cmd.Flags().Lookup(docsFlagName), extractDocsKey)

	cmd.Flags().BoolVar(&extractStrictFlag, strictFlagName, viper.GetBool(extractStrictKey), "extract declarations with a TypeScript parser instead of patterns")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), extractStrictKey)

	cmd.Flags().BoolVar(&extractFailOnConflictFlag, failOnConflictFlagName, viper.GetBool(extractFailOnConflictKey), "exit with status 1 when conflicts are found")
	bindFlagToConfig(cmd.Flags().Lookup(failOnConflictFlagName), extractFailOnConflictKey)
}

func extractArgsFromConfig() domain.ExtractArgs {
	return domain.ExtractArgs{
		TreeA: m.Tree{
			Origin:   m.OriginA,
			Label:    viper.GetString(extractALabelKey),
			Root:     m.Path(viper.GetString(extractARootKey)),
			Patterns: viper.GetStringSlice(extractAPatternsKey),
		},
		TreeB: m.Tree{
			Origin:   m.OriginB,
			Label:    viper.GetString(extractBLabelKey),
			Root:     m.Path(viper.GetString(extractBRootKey)),
			Patterns: viper.GetStringSlice(extractBPatternsKey),
		},
		Exclude:        viper.GetStringSlice(excludeConfigKey),
		Strict:         viper.GetBool(extractStrictKey),
		DocsPath:       m.Path(viper.GetString(extractDocsKey)),
		FailOnConflict: viper.GetBool(extractFailOnConflictKey),
	}
}
